package domain

import (
	"errors"
	"strings"
)

var (
	ErrNotFound       = errors.New("not found")
	ErrDuplicateEmail = errors.New("email already exists")
	ErrUnauthorized   = errors.New("unauthorized")
	ErrInvalidInput   = errors.New("invalid input")
)

// ValidationErrors carries the full list of field-level validation messages
// for a rejected payload, so callers can report every problem at once.
// errors.Is(v, ErrInvalidInput) holds for any non-empty value.
type ValidationErrors []string

func (v ValidationErrors) Error() string {
	return strings.Join(v, "; ")
}

func (v ValidationErrors) Is(target error) bool {
	return target == ErrInvalidInput
}
