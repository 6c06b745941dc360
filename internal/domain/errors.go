package domain

import "errors"

// Sentinel errors for the failure kinds the handlers know how to report.
// Anything else that escapes a service is a server error.
var (
	ErrNotFound          = errors.New("resource not found")
	ErrConflict          = errors.New("resource already exists")
	ErrForbidden         = errors.New("forbidden")
	ErrInvalidCredential = errors.New("invalid credentials")
)

// ValidationError reports missing or malformed input detected before any
// domain entity is constructed.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidationError(msg string) *ValidationError {
	return &ValidationError{Message: msg}
}
