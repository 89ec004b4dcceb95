package wrap

import "errors"

var (
	// ErrSuspendingDisabled indicates a suspending function (one returning `<-chan T`) wrapped by the
	// direct strategy. Generation has to run in suspending mode to handle it.
	ErrSuspendingDisabled = errors.New("suspending functions require suspending mode")

	// ErrUnknownMode indicates an execution mode other than "direct" and "suspending".
	ErrUnknownMode = errors.New("unknown execution mode")

	// ErrNoBody indicates a function declaration without a body, e.g. one implemented in assembly.
	ErrNoBody = errors.New("function has no body")
)
