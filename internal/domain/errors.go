package domain

import "errors"

// Authorization failures
var (
	ErrMissingSignature   = errors.New("payer did not sign the transfer")
	ErrOwnershipMismatch  = errors.New("payer account is not owned by this program")
	ErrInvalidRecipient   = errors.New("recipient must be a system-owned, non-executable account")
	ErrAccountNotWritable = errors.New("transfer accounts must be writable")
)

// Execution failures
var (
	ErrInsufficientFunds       = errors.New("insufficient funds for transfer")
	ErrBalanceOverflow         = errors.New("recipient balance would overflow")
	ErrDelegatedTransferFailed = errors.New("delegated transfer failed")
)

// Request shape failures
var (
	ErrInvalidAmount     = errors.New("transfer amount must be positive")
	ErrMissingAccount    = errors.New("payer and recipient accounts are required")
	ErrDuplicateAccount  = errors.New("payer and recipient must be distinct accounts")
	ErrInvalidTransition = errors.New("invalid transfer state transition")

	ErrMissingTransferService = errors.New("system transfer service is required for delegated transfers")
)

// DelegatedTransferError carries the system transfer service's failure.
// Its message is the service's message unchanged, and it unwraps to the
// service error so callers can still match on it.
type DelegatedTransferError struct {
	Err error
}

func (e *DelegatedTransferError) Error() string {
	return e.Err.Error()
}

func (e *DelegatedTransferError) Unwrap() error {
	return e.Err
}

// Is matches ErrDelegatedTransferFailed in addition to the wrapped error
func (e *DelegatedTransferError) Is(target error) bool {
	return target == ErrDelegatedTransferFailed
}
