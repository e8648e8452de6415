package domain

import (
	"errors"
	"math/big"

	"github.com/gagliardetto/solana-go"
	"github.com/shopspring/decimal"
)

// lamportsPerSOL is the number of lamports in one SOL
const lamportsPerSOL = 1_000_000_000

// Account represents a ledger account supplied by the host for a single request.
// The module never creates or persists accounts; it only reads them and, on the
// direct path, rewrites Lamports in place.
type Account struct {
	Address    solana.PublicKey
	Lamports   uint64           // Balance in the smallest currency unit
	Owner      solana.PublicKey // Program allowed to mutate the account directly
	IsSigner   bool             // Controlling key signed the current request
	IsWritable bool
	Executable bool
}

// IsSystemAccount reports whether the account is a plain balance-holder:
// owned by the system program and carrying no executable code.
func (a *Account) IsSystemAccount() bool {
	return a.Owner.Equals(solana.SystemProgramID) && !a.Executable
}

// SOL renders the balance in SOL, truncated to 9 decimal places
func (a *Account) SOL() decimal.Decimal {
	return LamportsToSOL(a.Lamports)
}

// Validate ensures the account carries an address
func (a *Account) Validate() error {
	if a.Address.IsZero() {
		return errors.New("account address cannot be empty")
	}
	return nil
}

// LamportsToSOL converts a lamport amount into SOL
func LamportsToSOL(lamports uint64) decimal.Decimal {
	return decimal.NewFromBigInt(new(big.Int).SetUint64(lamports), 0).Div(decimal.NewFromInt(lamportsPerSOL)).Truncate(9)
}
