package config

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingRequiredSetting indicates a setting with no default
	// was left unset.
	ErrMissingRequiredSetting = errors.New("missing required setting")

	// ErrInvalidValue indicates a setting has an invalid value.
	ErrInvalidValue = errors.New("invalid setting value")
)

// ValidationError wraps configuration validation errors with context.
type ValidationError struct {
	Section string // Config section being validated (pipeline, broker, ...)
	Field   string // Field name
	Err     error  // Underlying error
}

// Error returns formatted error message
func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: field '%s': %v", e.Section, e.Field, e.Err)
}

// Unwrap returns the underlying error
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// NewValidationError creates a new validation error
func NewValidationError(section, field string, err error) *ValidationError {
	return &ValidationError{
		Section: section,
		Field:   field,
		Err:     err,
	}
}
