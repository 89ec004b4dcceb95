package signature

import "errors"

var (
	// ErrUnsupportedParam indicates a parameter or receiver without a usable name, e.g. `_` or an
	// unnamed parameter. Such parameters cannot be logged by name.
	ErrUnsupportedParam = errors.New("unsupported parameter")
)
