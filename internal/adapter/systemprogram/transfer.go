package systemprogram

import (
	"context"
	"errors"
	"fmt"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/programs/system"
	"go.uber.org/zap"

	"github.com/simaogato/transfer-sol/internal/domain"
)

var (
	ErrWrongProgram       = errors.New("invocation is not addressed to the system program")
	ErrUnsupported        = errors.New("instruction is not a system transfer")
	ErrAccountMismatch    = errors.New("instruction accounts do not match the supplied accounts")
	ErrMissingSigner      = errors.New("Transfer: `from` account must sign")
	ErrFromNotSystemOwned = errors.New("Transfer: `from` account must be owned by the system program")
	ErrArithmeticOverflow = errors.New("Transfer: arithmetic overflow")
)

// Program is an in-process system transfer service. It enforces the checks
// the runtime's system program applies to a lamport transfer before moving funds.
type Program struct {
	logger *zap.Logger
}

// NewProgram creates a new Program instance
func NewProgram(logger *zap.Logger) *Program {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Program{logger: logger}
}

// Transfer decodes cpi.Instruction and applies it to cpi.From and cpi.To
func (p *Program) Transfer(ctx context.Context, cpi domain.TransferCPI) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if !cpi.Authority.Equals(solana.SystemProgramID) || cpi.Instruction == nil ||
		!cpi.Instruction.ProgramID().Equals(solana.SystemProgramID) {
		return ErrWrongProgram
	}

	// Source and destination must be distinct accounts
	if cpi.From == nil || cpi.To == nil || cpi.From == cpi.To || cpi.From.Address.Equals(cpi.To.Address) {
		return ErrAccountMismatch
	}

	lamports, from, to, err := decodeTransfer(cpi.Instruction)
	if err != nil {
		return err
	}

	if lamports != cpi.Amount || !from.PublicKey.Equals(cpi.From.Address) || !to.PublicKey.Equals(cpi.To.Address) {
		return ErrAccountMismatch
	}

	if !cpi.From.IsSigner {
		return ErrMissingSigner
	}

	if !cpi.From.Owner.Equals(solana.SystemProgramID) {
		return ErrFromNotSystemOwned
	}

	fromAfter, err := domain.SubLamports(cpi.From.Lamports, lamports)
	if err != nil {
		return fmt.Errorf("Transfer: insufficient lamports %d, need %d", cpi.From.Lamports, lamports)
	}

	toAfter, err := domain.AddLamports(cpi.To.Lamports, lamports)
	if err != nil {
		return ErrArithmeticOverflow
	}

	cpi.From.Lamports = fromAfter
	cpi.To.Lamports = toAfter

	p.logger.Debug("system transfer applied",
		zap.Stringer("from", cpi.From.Address),
		zap.Stringer("to", cpi.To.Address),
		zap.Uint64("lamports", lamports),
	)
	return nil
}

// decodeTransfer parses a system program instruction and returns its transfer fields
func decodeTransfer(ix solana.Instruction) (uint64, *solana.AccountMeta, *solana.AccountMeta, error) {
	data, err := ix.Data()
	if err != nil {
		return 0, nil, nil, fmt.Errorf("failed to encode instruction: %w", err)
	}

	decoded, err := system.DecodeInstruction(ix.Accounts(), data)
	if err != nil {
		return 0, nil, nil, fmt.Errorf("failed to decode instruction: %w", err)
	}

	transfer, ok := decoded.Impl.(*system.Transfer)
	if !ok || transfer.Lamports == nil {
		return 0, nil, nil, ErrUnsupported
	}

	from := transfer.GetFundingAccount()
	to := transfer.GetRecipientAccount()
	if from == nil || to == nil {
		return 0, nil, nil, ErrAccountMismatch
	}

	return *transfer.Lamports, from, to, nil
}

var _ domain.SystemTransferService = (*Program)(nil)
