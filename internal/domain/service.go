package domain

import (
	"context"

	"github.com/gagliardetto/solana-go"
)

// TransferCPI is the nested invocation handed to the system transfer service
type TransferCPI struct {
	// Authority is the program the invocation is addressed to (the system program)
	Authority   solana.PublicKey
	Instruction solana.Instruction
	From        *Account
	To          *Account
	Amount      uint64
}

// SystemTransferService defines the external balance-transfer collaborator.
// It owns conservation, sufficiency checks and atomicity for delegated transfers.
type SystemTransferService interface {
	// Transfer moves Amount lamports from From to To, or returns why it could not
	Transfer(ctx context.Context, cpi TransferCPI) error
}
