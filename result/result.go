// Package result provides Result, a value-or-error type.
//
// Functions returning a Result are treated as outcome-carrying by logfn: the generated code
// unwraps them with Get and logs the value on success or the error on failure. Any type whose
// name is Result and that has a `Get() (T, error)` method is handled the same way.
package result

import "fmt"

// Result holds either a value or an error.
type Result[T any] struct {
	val T
	err error
}

// Ok returns a successful Result holding v.
func Ok[T any](v T) Result[T] {
	return Result[T]{val: v}
}

// Err returns a failed Result holding err. A nil err yields a successful Result with the zero value.
func Err[T any](err error) Result[T] {
	return Result[T]{err: err}
}

// Of builds a Result from the conventional (value, error) pair.
func Of[T any](v T, err error) Result[T] {
	if err != nil {
		return Result[T]{err: err}
	}

	return Result[T]{val: v}
}

// Get returns the value and the error.
func (r Result[T]) Get() (T, error) {
	return r.val, r.err
}

// IsOk reports whether r holds a value.
func (r Result[T]) IsOk() bool {
	return r.err == nil
}

// Err returns the error, nil on success.
func (r Result[T]) Err() error {
	return r.err
}

// ValueOr returns the value on success, def otherwise.
func (r Result[T]) ValueOr(def T) T {
	if r.err != nil {
		return def
	}

	return r.val
}

func (r Result[T]) String() string {
	if r.err != nil {
		return fmt.Sprintf("Err(%v)", r.err)
	}

	return fmt.Sprintf("Ok(%v)", r.val)
}
