// Package errors provides structured error types for steprepeat.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across the CLI, the editor and the HTTP host
//   - Machine-readable error codes for programmatic handling
//   - User-friendly error messages
//   - Error wrapping with context preservation
//
// # Error Codes
//
// Layout errors are produced by pkg/layout and are always fatal to the
// optimization call that raised them:
//   - MISSING_FIELD: a required request field was absent
//   - MARGIN_EXCEEDS_DIMENSION: the margin consumed an entire axis
//   - INVALID_ITEM_SIZE: an item dimension was zero
//
// TOO_MANY_ITEMS is raised when a count is too large to report exactly.
//
// The remaining INVALID_* codes come from collaborators that turn user text
// into numbers (expressions, units, presets, config).
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidUnit, "unknown unit %q", name)
//	if errors.Is(err, errors.ErrCodeInvalidUnit) {
//	    // Handle validation error
//	}
//
//	// Attach the offending field or axis
//	err := errors.NewField(errors.ErrCodeMissingField, "itemWidth", "itemWidth is required")
//	errors.Field(err) // "itemWidth"
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Layout errors
	ErrCodeMissingField           Code = "MISSING_FIELD"
	ErrCodeMarginExceedsDimension Code = "MARGIN_EXCEEDS_DIMENSION"
	ErrCodeInvalidItemSize        Code = "INVALID_ITEM_SIZE"

	// Input validation errors
	ErrCodeInvalidInput      Code = "INVALID_INPUT"
	ErrCodeInvalidUnit       Code = "INVALID_UNIT"
	ErrCodeInvalidExpression Code = "INVALID_EXPRESSION"
	ErrCodeInvalidFormat     Code = "INVALID_FORMAT"
	ErrCodeInvalidConfig     Code = "INVALID_CONFIG"

	// Resource limit errors
	ErrCodeTooManyItems Code = "TOO_MANY_ITEMS"

	// Resource not found errors
	ErrCodePresetNotFound Code = "PRESET_NOT_FOUND"

	// Internal errors
	ErrCodeInternal Code = "INTERNAL_ERROR"
)

// Error is a structured error with a code and optional cause.
type Error struct {
	Code    Code   // Machine-readable error code
	Message string // Human-readable message
	Field   string // Offending field or axis (optional)
	Cause   error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates a new Error with the given code and formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// NewField creates a new Error that names the field or axis it concerns.
func NewField(code Code, field, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Field:   field,
	}
}

// Wrap creates a new Error wrapping an existing error.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// Is reports whether err has the given error code.
// It unwraps the error chain looking for an *Error with a matching code.
func Is(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// GetCode extracts the error code from an error, if available.
// Returns empty string if the error is not an *Error.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// Field returns the field or axis attached to err, or "" if there is none.
func Field(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Field
	}
	return ""
}

// UserMessage returns a user-friendly message for the error.
// For *Error types, returns the message without the code prefix.
// For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}

// IsLayout reports whether err is one of the layout error kinds.
func IsLayout(err error) bool {
	switch GetCode(err) {
	case ErrCodeMissingField, ErrCodeMarginExceedsDimension, ErrCodeInvalidItemSize:
		return true
	}
	return false
}
