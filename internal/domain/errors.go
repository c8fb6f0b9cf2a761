package domain

import (
	"errors"
	"fmt"
)

var (
	ErrReservationNotFound = errors.New("reservation not found")
	ErrStaffNotFound       = errors.New("staff not found")
)

var (
	ErrNoCapacity         = errors.New("no capacity left for this slot")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

var (
	ErrValidation = errors.New("validation error")
)

// ValidationError carries the first field that failed validation so the form
// can attach the message to it.
type ValidationError struct {
	Field   string
	Message string
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}
