package generator

import "errors"

var (
	ErrInvalidOption      = errors.New("invalid option")
	ErrMissingTag         = errors.New("missing source build constraint")
	ErrUnknownDirective   = errors.New("unknown directive")
	ErrDuplicateDirective = errors.New("duplicate directive")
	ErrMisplacedDirective = errors.New("directive is not attached to a function")
	ErrGeneratedInput     = errors.New("input is a generated file")
	ErrStale              = errors.New("generated files are out of date")
)
