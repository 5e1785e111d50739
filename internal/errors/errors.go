// Package errors provides error handling utilities.
package errors

import (
	"errors"
	"fmt"
)

// Type identifies the category of error
type Type string

const (
	// TypeValidation indicates an input validation error
	TypeValidation Type = "VALIDATION_ERROR"

	// TypeUnknownTier indicates a tier outside the closed enumeration
	TypeUnknownTier Type = "UNKNOWN_TIER"

	// TypeNotFound indicates a missing catalog or store entry
	TypeNotFound Type = "NOT_FOUND"

	// TypeConfig indicates a configuration error
	TypeConfig Type = "CONFIG_ERROR"

	// TypeInternal indicates an internal error
	TypeInternal Type = "INTERNAL_ERROR"
)

// Error represents a domain error with context
type Error struct {
	Type    Type           `json:"type"`
	Message string         `json:"message"`
	Cause   error          `json:"-"`
	Context map[string]any `json:"context,omitempty"`
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Type, e.Message)
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is checks if the error is of a specific type
func (e *Error) Is(t Type) bool {
	return e.Type == t
}

// WithContext adds context to the error
func (e *Error) WithContext(key string, value any) *Error {
	if e.Context == nil {
		e.Context = make(map[string]any)
	}
	e.Context[key] = value
	return e
}

// New creates a new domain error
func New(t Type, message string) *Error {
	return &Error{Type: t, Message: message}
}

// Newf creates a new domain error with a formatted message
func Newf(t Type, format string, args ...any) *Error {
	return &Error{Type: t, Message: fmt.Sprintf(format, args...)}
}

// Wrap wraps a cause in a domain error
func Wrap(t Type, message string, cause error) *Error {
	return &Error{Type: t, Message: message, Cause: cause}
}

// UnknownTier creates the fatal error for a tier outside the closed
// enumeration
func UnknownTier(tier string) *Error {
	return Newf(TypeUnknownTier, "unknown service tier %q", tier).
		WithContext("tier", tier)
}

// Validation creates an input validation error
func Validation(format string, args ...any) *Error {
	return Newf(TypeValidation, format, args...)
}

// TypeOf returns the domain error type of err, or TypeInternal when err
// is not a domain error
func TypeOf(err error) Type {
	var e *Error
	if errors.As(err, &e) {
		return e.Type
	}
	return TypeInternal
}

// IsType reports whether err is a domain error of the given type
func IsType(err error, t Type) bool {
	var e *Error
	return errors.As(err, &e) && e.Type == t
}
