package domain

import (
	"fmt"

	"github.com/google/uuid"
)

// TransferPath selects how a transfer is executed
type TransferPath string

const (
	// PathDelegated forwards the transfer to the system transfer service
	PathDelegated TransferPath = "DELEGATED"
	// PathDirect mutates balances of accounts owned by this program
	PathDirect TransferPath = "DIRECT"
)

func (p TransferPath) String() string {
	return string(p)
}

// TransferRequest represents one invocation of a transfer entry point
type TransferRequest struct {
	ID        uuid.UUID
	Path      TransferPath
	Amount    uint64
	Payer     *Account
	Recipient *Account
}

// NewTransferRequest builds a request with a fresh correlation ID
func NewTransferRequest(path TransferPath, amount uint64, payer, recipient *Account) *TransferRequest {
	return &TransferRequest{
		ID:        uuid.New(),
		Path:      path,
		Amount:    amount,
		Payer:     payer,
		Recipient: recipient,
	}
}

// Validate ensures the request is well formed before authorization runs.
// It does not look at signer or ownership flags.
func (r *TransferRequest) Validate() error {
	if r.Path != PathDelegated && r.Path != PathDirect {
		return fmt.Errorf("unknown transfer path %q", r.Path)
	}

	if r.Amount == 0 {
		return ErrInvalidAmount
	}

	if r.Payer == nil || r.Recipient == nil {
		return ErrMissingAccount
	}

	if err := r.Payer.Validate(); err != nil {
		return fmt.Errorf("payer: %w", err)
	}
	if err := r.Recipient.Validate(); err != nil {
		return fmt.Errorf("recipient: %w", err)
	}

	// Writing both balances computed from the same starting value would mint lamports
	if r.Payer == r.Recipient || r.Payer.Address.Equals(r.Recipient.Address) {
		return ErrDuplicateAccount
	}

	return nil
}

// TransferReceipt summarises a finished request
type TransferReceipt struct {
	RequestID         uuid.UUID
	Path              TransferPath
	Amount            uint64
	PayerLamports     uint64
	RecipientLamports uint64
	State             TransferState
}
