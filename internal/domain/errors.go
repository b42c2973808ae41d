package domain

import (
	"errors"
	"fmt"
)

// Error kinds shared by the use cases and adapters.
// Adapters map them to exit codes or status codes with errors.Is.
var (
	ErrValidation    = errors.New("validation failed")
	ErrNotFound      = errors.New("not found")
	ErrPersistence   = errors.New("persistence failed")
	ErrImportFailure = errors.New("import failed")
	ErrCancelled     = errors.New("operation cancelled")
)

// ValidationError describes a missing or malformed field
type ValidationError struct {
	Field  string
	Reason string
}

// NewValidationError creates a ValidationError for the given field
func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// Is makes every ValidationError match ErrValidation
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}
