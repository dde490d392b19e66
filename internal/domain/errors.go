package domain

import (
	"errors"
	"strings"
)

var (
	ErrEventNotFound  = errors.New("event not found")
	ErrMemberNotFound = errors.New("member not found")
)

var (
	ErrValidation   = errors.New("validation error")
	ErrSearchFailed = errors.New("event search failed")
)

// ValidationError carries every violated rule so callers can show the
// whole list at once. errors.Is(err, ErrValidation) holds.
type ValidationError struct {
	Violations []string
}

func (e *ValidationError) Error() string {
	return "validation error: " + strings.Join(e.Violations, "; ")
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}
