// Package wrap turns a function body into a zero-argument invocable unit.
//
// The generated wrapper lives in a new scope, so the original body is embedded in a function
// literal that is invoked immediately. Closures invoked in place see exactly the bindings the
// original body saw, and named results are redeclared on the literal so bare returns keep working.
//
// Two strategies exist and one of them is picked per generation run:
//
//   - Direct invokes the literal synchronously: `func() R { ... }()`.
//   - Suspending additionally supports functions returning a receive-only channel. The literal
//     still runs synchronously on the caller's goroutine, `func() <-chan T { ... }()`, and only the
//     receive from its channel is deferred, so the suspension point stays the original one. For
//     any other function it behaves exactly like Direct.
//
// Direct rejects suspending functions with ErrSuspendingDisabled instead of silently changing
// their behavior.
package wrap

import (
	"fmt"
	"strings"
)

// Mode is the execution model of a wrapped body.
type Mode int

const (
	// Immediate bodies produce their value when invoked.
	Immediate Mode = iota
	// Suspending bodies produce a channel that yields the value once.
	Suspending
)

func (m Mode) String() string {
	if m == Suspending {
		return "suspending"
	}

	return "immediate"
}

// Mode names accepted by New.
const (
	ModeDirect     = "direct"
	ModeSuspending = "suspending"
)

// Body is a wrapped function body.
type Body struct {
	Mode Mode
	// Invoke is the Go expression invoking the body. For Suspending bodies it evaluates to the
	// channel of the original body, which the caller awaits.
	Invoke string
	// Elem is the channel element type of a Suspending body.
	Elem string
}

// Strategy produces a Body from a function.
type Strategy interface {
	// Name returns the mode name of the strategy.
	Name() string
	// Wrap wraps the body of fn. fn.Shape must be set.
	Wrap(fn *Func) (Body, error)
}

// New returns the strategy for the named mode. An empty mode selects direct.
func New(mode string) (Strategy, error) {
	switch strings.ToLower(mode) {
	case "", ModeDirect:
		return Direct{}, nil
	case ModeSuspending:
		return Suspend{}, nil
	}

	return nil, fmt.Errorf("%w %q, expected %q or %q", ErrUnknownMode, mode, ModeDirect, ModeSuspending)
}

// Direct wraps bodies for synchronous invocation.
type Direct struct{}

var _ Strategy = Direct{}

func (Direct) Name() string {
	return ModeDirect
}

func (Direct) Wrap(fn *Func) (Body, error) {
	if fn.Shape.Suspending {
		return Body{}, ErrSuspendingDisabled
	}

	return Body{Mode: Immediate, Invoke: literal(fn) + "()"}, nil
}

// Suspend wraps suspending bodies so that their value is awaited, and delegates everything else to Direct.
type Suspend struct{}

var _ Strategy = Suspend{}

func (Suspend) Name() string {
	return ModeSuspending
}

func (Suspend) Wrap(fn *Func) (Body, error) {
	if !fn.Shape.Suspending {
		return Direct{}.Wrap(fn)
	}

	return Body{Mode: Suspending, Invoke: literal(fn) + "()", Elem: fn.Elem}, nil
}

// literal renders the function literal carrying the original results and body.
func literal(fn *Func) string {
	if fn.Results == "" {
		return "func() " + fn.Body
	}

	return "func() " + fn.Results + " " + fn.Body
}
