package domain

import "errors"

var (
	ErrDuplicateUsername  = errors.New("username already taken")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrNotFound           = errors.New("job not found")
	ErrForbidden          = errors.New("access forbidden")
	ErrInvalidReference   = errors.New("referenced record does not exist")
	ErrValidation         = errors.New("validation failed")
)
