package directory

import "errors"

var (
	ErrValidation = errors.New("validation error")
	ErrDuplicate  = errors.New("already exists")
)
