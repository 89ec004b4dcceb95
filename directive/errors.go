package directive

import "errors"

var (
	// ErrSyntax indicates that the directive arguments could not be tokenized or parsed.
	ErrSyntax = errors.New("syntax error")

	// ErrTooFewArgs indicates an output directive without any argument.
	ErrTooFewArgs = errors.New("expected at least one argument")

	// ErrTooManyArgs indicates an inputs directive with more than a level and a format string.
	ErrTooManyArgs = errors.New("too many arguments")
)

var (
	// ErrMissingLevel indicates that a required leading log level is absent or is not an identifier.
	ErrMissingLevel = errors.New("missing log level")

	// ErrInvalidLevel indicates a level name outside of Error, Warn, Info, Debug and Trace.
	ErrInvalidLevel = errors.New("invalid log level")

	// ErrUnknownOption indicates a named option that is not recognized.
	ErrUnknownOption = errors.New("unknown option")

	// ErrDuplicateOption indicates a named option given more than once.
	ErrDuplicateOption = errors.New("duplicate option")

	// ErrWrongShape indicates a nested list where a scalar value is expected.
	ErrWrongShape = errors.New("wrong shape")

	// ErrUnexpectedType indicates a scalar value of the wrong kind, e.g. a string for log_ts.
	ErrUnexpectedType = errors.New("unexpected value type")
)
