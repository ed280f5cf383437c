package entities

import "errors"

var (
	ErrContaNotFound       = errors.New("conta not found")
	ErrConstraintViolation = errors.New("constraint violation")
	ErrStorage             = errors.New("storage error")
)
