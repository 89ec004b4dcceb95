package synth

import "errors"

var (
	// ErrBranchOnPlain indicates ok/err options on a function whose results carry no
	// success/failure distinction.
	ErrBranchOnPlain = errors.New("ok/err options require a result list ending with error or a Result type")

	// ErrReservedName indicates a receiver, parameter or result name that collides with an
	// identifier used by the generated code.
	ErrReservedName = errors.New("reserved name")
)
