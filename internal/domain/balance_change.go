package domain

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/gagliardetto/solana-go"
)

// EntryType represents the direction of a balance change
type EntryType string

const (
	EntryTypeDebit  EntryType = "DEBIT"
	EntryTypeCredit EntryType = "CREDIT"
)

// BalanceChange is one side of a transfer applied to an account
type BalanceChange struct {
	Account solana.PublicKey
	Amount  uint64 // ABSOLUTE VALUE (Always Positive)
	Type    EntryType
	Before  uint64
	After   uint64
}

// ValidateConservation ensures a set of balance changes neither creates nor
// destroys lamports: sum of debits equals sum of credits, and every change
// moves its account's balance by exactly its amount.
func ValidateConservation(changes []BalanceChange) error {
	if len(changes) == 0 {
		return errors.New("transfer must have at least one balance change")
	}

	totalDebits := new(big.Int)
	totalCredits := new(big.Int)
	before := new(big.Int)
	after := new(big.Int)

	for _, c := range changes {
		if c.Amount == 0 {
			return errors.New("balance change amount must be positive")
		}

		amount := new(big.Int).SetUint64(c.Amount)
		switch c.Type {
		case EntryTypeDebit:
			if c.Before < c.Amount || c.Before-c.Amount != c.After {
				return fmt.Errorf("debit on %s does not move balance by %d", c.Account, c.Amount)
			}
			totalDebits.Add(totalDebits, amount)
		case EntryTypeCredit:
			if c.After < c.Before || c.After-c.Before != c.Amount {
				return fmt.Errorf("credit on %s does not move balance by %d", c.Account, c.Amount)
			}
			totalCredits.Add(totalCredits, amount)
		default:
			return errors.New("entry type must be DEBIT or CREDIT")
		}

		before.Add(before, new(big.Int).SetUint64(c.Before))
		after.Add(after, new(big.Int).SetUint64(c.After))
	}

	if totalDebits.Cmp(totalCredits) != 0 {
		return errors.New("sum of debits must equal sum of credits")
	}

	if before.Cmp(after) != 0 {
		return errors.New("total balance must be conserved")
	}

	return nil
}
