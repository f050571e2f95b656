package usecase

import "errors"

var (
	ErrInvalidInput          = errors.New("invalid input")
	ErrNotFound              = errors.New("resource not found")
	ErrInvalidReference      = errors.New("invalid reference")
	ErrConfiguration         = errors.New("invalid configuration")
	ErrDependencyUnavailable = errors.New("dependency unavailable")
)
