package apperrors

import "errors"

var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrNotFound           = errors.New("not found")
	ErrDuplicateID        = errors.New("duplicate id")
	ErrMalformedJSON      = errors.New("malformed json")
	ErrContentUnavailable = errors.New("content unavailable")
)
