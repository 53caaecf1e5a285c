// Package entity defines the core domain entities and validation error
// taxonomy for the application. It contains the fundamental business objects
// such as User, Source, and Expense, along with the structured error type
// every validator in the request boundary reports through.
package entity

import (
	"errors"
	"fmt"
)

// Sentinel errors for the validation error taxonomy.
// Every ValidationError wraps exactly one of these so handlers can branch
// with errors.Is without inspecting message strings.
var (
	// ErrNotFound indicates that a requested entity was not found
	ErrNotFound = errors.New("entity not found")

	// ErrInvalidInput indicates missing or required input
	ErrInvalidInput = errors.New("invalid input")

	// ErrInputTooLong indicates input exceeding its length bound
	ErrInputTooLong = errors.New("input too long")

	// ErrInvalidFormat indicates a malformed value (non-numeric string,
	// bad content type, malformed JSON)
	ErrInvalidFormat = errors.New("invalid format")

	// ErrInvalidRange indicates a numeric value outside its inclusive bounds
	ErrInvalidRange = errors.New("value out of range")

	// ErrSQLInjectionDetected indicates input matching a SQL injection pattern
	ErrSQLInjectionDetected = errors.New("sql injection detected")

	// ErrXSSDetected indicates input matching an XSS pattern
	ErrXSSDetected = errors.New("xss detected")

	// ErrInvalidCharacters indicates input failing an allow-list pattern
	ErrInvalidCharacters = errors.New("invalid characters")
)

// RedactedValue replaces passwords and other secrets in ValidationError.Value.
// The raw value of a secret field must never be stored or echoed.
const RedactedValue = "[REDACTED]"

// ValidationError represents a validation failure with detailed field
// information. It is immutable once constructed: validators create it at the
// point of failure and handlers consume it to build a response.
type ValidationError struct {
	// Field is the name of the offending input (e.g. "username",
	// "items[2].amount_cents").
	Field string

	// Value is the original input, or RedactedValue for secret fields.
	Value string

	// Message is a human-readable description safe to log.
	Message string

	// Err is the sentinel cause, one of the taxonomy errors above.
	Err error
}

// NewValidationError creates a ValidationError wrapping the given sentinel kind.
func NewValidationError(field, value, message string, kind error) *ValidationError {
	return &ValidationError{Field: field, Value: value, Message: message, Err: kind}
}

// Error returns a formatted error message for the validation error.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// Unwrap returns the sentinel cause, enabling errors.Is checks against the taxonomy.
func (e *ValidationError) Unwrap() error {
	return e.Err
}
