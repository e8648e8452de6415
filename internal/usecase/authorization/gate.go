package authorization

import (
	"fmt"

	"github.com/gagliardetto/solana-go"
	"github.com/simaogato/transfer-sol/internal/domain"
)

// Capability decides whether programID may mutate account directly
type Capability func(account *domain.Account, programID solana.PublicKey) bool

// OwnedBy grants the capability when the account is tagged with programID as owner
func OwnedBy(account *domain.Account, programID solana.PublicKey) bool {
	return account.Owner.Equals(programID)
}

// Gate validates the accounts of a transfer request against the
// preconditions of its path. It never mutates the accounts it inspects.
type Gate struct {
	ProgramID  solana.PublicKey
	Capability Capability
}

// NewGate creates a Gate for the given program identity using ownership as the capability
func NewGate(programID solana.PublicKey) *Gate {
	return &Gate{
		ProgramID:  programID,
		Capability: OwnedBy,
	}
}

// Authorize checks whether req may execute
// Logic:
//  1. Validate request shape (amount, accounts present and distinct)
//  2. Dispatch on path:
//     - Delegated: payer must have signed
//     - Direct: payer must pass the capability check against ProgramID
//  3. Both paths: accounts writable, recipient owned by the system program
//     (direct path: recipient must also not be executable)
func (g *Gate) Authorize(req *domain.TransferRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	switch req.Path {
	case domain.PathDelegated:
		if err := g.authorizeDelegated(req.Payer); err != nil {
			return err
		}
	case domain.PathDirect:
		if err := g.authorizeDirect(req.Payer); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown transfer path %q", req.Path)
	}

	return checkRecipient(req.Path, req.Payer, req.Recipient)
}

// authorizeDelegated establishes authority through signature; ownership of
// the payer is left to the system transfer service.
func (g *Gate) authorizeDelegated(payer *domain.Account) error {
	if !payer.IsSigner {
		return domain.ErrMissingSignature
	}
	return nil
}

func (g *Gate) authorizeDirect(payer *domain.Account) error {
	capability := g.Capability
	if capability == nil {
		capability = OwnedBy
	}

	if !capability(payer, g.ProgramID) {
		return domain.ErrOwnershipMismatch
	}
	return nil
}

// checkRecipient requires writable accounts and a system-owned recipient.
// Only the direct path also refuses an executable recipient; on the delegated
// path the system program decides what it will credit.
func checkRecipient(path domain.TransferPath, payer, recipient *domain.Account) error {
	if !payer.IsWritable || !recipient.IsWritable {
		return domain.ErrAccountNotWritable
	}

	if path == domain.PathDelegated {
		if !recipient.Owner.Equals(solana.SystemProgramID) {
			return domain.ErrInvalidRecipient
		}
		return nil
	}

	if !recipient.IsSystemAccount() {
		return domain.ErrInvalidRecipient
	}

	return nil
}
