// Package errors provides structured error types for plax.
//
// Every failure a library call can report belongs to a small closed set of
// codes, so callers can branch on the kind of failure without matching on
// message text:
//   - NOT_FOUND: a selector, identifier, or position matched no element
//   - AMBIGUOUS_SELECTOR: a selector named zero or several criteria
//   - MALFORMED_DOCUMENT: the save file or one of its nested JSON strings
//     could not be decoded
//
// The CLI adds INVALID_INPUT and FILE_NOT_FOUND for argument and path
// problems.
//
// # Usage
//
//	err := errors.New(errors.ErrCodeNotFound, "no element with identifier %s", id)
//	if errors.Is(err, errors.ErrCodeNotFound) {
//	    // Handle missing element
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeMalformedDocument, origErr, "decode %s", field)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes.
const (
	// Document and selection errors
	ErrCodeNotFound          Code = "NOT_FOUND"
	ErrCodeAmbiguousSelector Code = "AMBIGUOUS_SELECTOR"
	ErrCodeMalformedDocument Code = "MALFORMED_DOCUMENT"

	// Caller input errors
	ErrCodeInvalidInput Code = "INVALID_INPUT"
	ErrCodeFileNotFound Code = "FILE_NOT_FOUND"
)

// Error is a structured error with a code and optional cause.
type Error struct {
	Code    Code   // Machine-readable error code
	Message string // Human-readable message
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

// Wrap creates a new Error wrapping an existing error.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// Is reports whether err carries the given error code.
// Only the outermost *Error in the chain is consulted, so wrapping a
// NOT_FOUND inside MALFORMED_DOCUMENT reports MALFORMED_DOCUMENT.
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

// UserMessage returns the message without the code prefix.
// For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		if e.Cause != nil {
			return fmt.Sprintf("%s: %v", e.Message, e.Cause)
		}
		return e.Message
	}
	return err.Error()
}

// NotFound is shorthand for New(ErrCodeNotFound, ...).
func NotFound(format string, args ...any) *Error {
	return New(ErrCodeNotFound, format, args...)
}

// Malformed is shorthand for Wrap(ErrCodeMalformedDocument, ...).
func Malformed(cause error, format string, args ...any) *Error {
	return Wrap(ErrCodeMalformedDocument, cause, format, args...)
}
