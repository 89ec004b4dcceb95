package suspend

import "errors"

var ErrNotFound = errors.New("not found")
