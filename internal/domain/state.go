package domain

import "fmt"

// TransferState represents where a request is in its lifecycle
type TransferState string

const (
	StateReceived   TransferState = "RECEIVED"
	StateValidating TransferState = "VALIDATING"
	StateExecuting  TransferState = "EXECUTING"
	StateRejected   TransferState = "REJECTED"
	StateCompleted  TransferState = "COMPLETED"
	StateFailed     TransferState = "FAILED"
)

// transitions lists the allowed next states for each state.
// Rejected, Completed and Failed are terminal.
var transitions = map[TransferState][]TransferState{
	StateReceived:   {StateValidating},
	StateValidating: {StateExecuting, StateRejected},
	StateExecuting:  {StateCompleted, StateFailed},
}

// CanTransition reports whether a request may move from one state to another
func CanTransition(from, to TransferState) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// Lifecycle tracks the state of a single request
type Lifecycle struct {
	state TransferState
}

// NewLifecycle starts a lifecycle in StateReceived
func NewLifecycle() *Lifecycle {
	return &Lifecycle{state: StateReceived}
}

// State returns the current state
func (l *Lifecycle) State() TransferState {
	return l.state
}

// Advance moves to the next state, or returns ErrInvalidTransition
func (l *Lifecycle) Advance(to TransferState) error {
	if !CanTransition(l.state, to) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, l.state, to)
	}
	l.state = to
	return nil
}
