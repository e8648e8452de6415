package transfer

import (
	"context"
	"errors"
	"fmt"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/programs/system"
	"go.uber.org/zap"

	"github.com/simaogato/transfer-sol/internal/domain"
	"github.com/simaogato/transfer-sol/internal/usecase/authorization"
)

// Executor moves lamports from a payer to a recipient once the Gate approves
type Executor struct {
	Gate   *authorization.Gate
	Logger *zap.Logger
}

// ErrMissingGate is returned when an Executor has no authorization gate
var ErrMissingGate = errors.New("authorization gate is required")

// NewExecutor creates a new Executor instance.
// A nil logger falls back to a no-op logger; a nil gate is an error.
func NewExecutor(gate *authorization.Gate, logger *zap.Logger) (*Executor, error) {
	if gate == nil {
		return nil, ErrMissingGate
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Executor{
		Gate:   gate,
		Logger: logger,
	}, nil
}

// TransferViaDelegation forwards the transfer to the system transfer service.
// The service is trusted for sufficiency, conservation and atomicity; its
// failure is returned as a *domain.DelegatedTransferError with the service's message.
func (e *Executor) TransferViaDelegation(ctx context.Context, amount uint64, payer, recipient *domain.Account, svc domain.SystemTransferService) (*domain.TransferReceipt, error) {
	req := domain.NewTransferRequest(domain.PathDelegated, amount, payer, recipient)
	return e.Execute(ctx, req, svc)
}

// TransferViaDirectMutation moves lamports between accounts this program owns
func (e *Executor) TransferViaDirectMutation(ctx context.Context, amount uint64, payer, recipient *domain.Account) (*domain.TransferReceipt, error) {
	req := domain.NewTransferRequest(domain.PathDirect, amount, payer, recipient)
	return e.Execute(ctx, req, nil)
}

// Execute runs a request through authorization and then the path it names.
// svc is only consulted on the delegated path.
func (e *Executor) Execute(ctx context.Context, req *domain.TransferRequest, svc domain.SystemTransferService) (*domain.TransferReceipt, error) {
	base := e.Logger
	if base == nil {
		base = zap.NewNop()
	}
	logger := base.With(
		zap.String("request_id", req.ID.String()),
		zap.Stringer("path", req.Path),
		zap.Uint64("amount", req.Amount),
	)
	lc := domain.NewLifecycle()

	if err := e.advance(lc, logger, domain.StateValidating); err != nil {
		return nil, err
	}

	if err := e.authorize(req, svc); err != nil {
		logger.Warn("transfer rejected", zap.Error(err))
		if advErr := e.advance(lc, logger, domain.StateRejected); advErr != nil {
			return nil, advErr
		}
		return nil, err
	}

	if err := e.advance(lc, logger, domain.StateExecuting); err != nil {
		return nil, err
	}

	var err error
	switch req.Path {
	case domain.PathDelegated:
		err = e.delegate(ctx, req, svc)
	case domain.PathDirect:
		err = e.mutate(req)
	}

	if err != nil {
		logger.Warn("transfer failed", zap.Error(err))
		if advErr := e.advance(lc, logger, domain.StateFailed); advErr != nil {
			return nil, advErr
		}
		return nil, err
	}

	if err := e.advance(lc, logger, domain.StateCompleted); err != nil {
		return nil, err
	}

	logger.Info("transfer completed",
		zap.Stringer("payer", req.Payer.Address),
		zap.Stringer("recipient", req.Recipient.Address),
		zap.Uint64("payer_lamports", req.Payer.Lamports),
		zap.Uint64("recipient_lamports", req.Recipient.Lamports),
	)

	return &domain.TransferReceipt{
		RequestID:         req.ID,
		Path:              req.Path,
		Amount:            req.Amount,
		PayerLamports:     req.Payer.Lamports,
		RecipientLamports: req.Recipient.Lamports,
		State:             lc.State(),
	}, nil
}

// authorize runs the gate and checks that the delegated path has a collaborator
func (e *Executor) authorize(req *domain.TransferRequest, svc domain.SystemTransferService) error {
	if e.Gate == nil {
		return ErrMissingGate
	}
	if err := e.Gate.Authorize(req); err != nil {
		return err
	}
	if req.Path == domain.PathDelegated && svc == nil {
		return domain.ErrMissingTransferService
	}
	return nil
}

func (e *Executor) advance(lc *domain.Lifecycle, logger *zap.Logger, to domain.TransferState) error {
	if err := lc.Advance(to); err != nil {
		return err
	}
	logger.Debug("transfer state changed", zap.String("state", string(to)))
	return nil
}

// delegate builds the system transfer CPI and hands it to svc
func (e *Executor) delegate(ctx context.Context, req *domain.TransferRequest, svc domain.SystemTransferService) error {
	cpi := domain.TransferCPI{
		Authority:   solana.SystemProgramID,
		Instruction: system.NewTransferInstruction(req.Amount, req.Payer.Address, req.Recipient.Address).Build(),
		From:        req.Payer,
		To:          req.Recipient,
		Amount:      req.Amount,
	}

	if err := svc.Transfer(ctx, cpi); err != nil {
		return &domain.DelegatedTransferError{Err: err}
	}
	return nil
}

// mutate debits the payer and credits the recipient in place.
// Every check runs before the first write so a failure leaves both accounts untouched.
func (e *Executor) mutate(req *domain.TransferRequest) error {
	payerAfter, err := domain.SubLamports(req.Payer.Lamports, req.Amount)
	if err != nil {
		return fmt.Errorf("%w: balance %d, need %d", err, req.Payer.Lamports, req.Amount)
	}

	recipientAfter, err := domain.AddLamports(req.Recipient.Lamports, req.Amount)
	if err != nil {
		return fmt.Errorf("%w: balance %d, adding %d", err, req.Recipient.Lamports, req.Amount)
	}

	changes := []domain.BalanceChange{
		{
			Account: req.Payer.Address,
			Amount:  req.Amount,
			Type:    domain.EntryTypeDebit,
			Before:  req.Payer.Lamports,
			After:   payerAfter,
		},
		{
			Account: req.Recipient.Address,
			Amount:  req.Amount,
			Type:    domain.EntryTypeCredit,
			Before:  req.Recipient.Lamports,
			After:   recipientAfter,
		},
	}
	if err := domain.ValidateConservation(changes); err != nil {
		return err
	}

	req.Payer.Lamports = payerAfter
	req.Recipient.Lamports = recipientAfter
	return nil
}
