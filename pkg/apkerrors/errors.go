// Package apkerrors provides structured error types for the apkgraph application.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across all components
//   - Machine-readable error codes for programmatic handling
//   - User-friendly error messages
//   - Error wrapping with context preservation
//
// # Error Codes
//
// Error codes follow a hierarchical naming convention:
//   - CONFIG_*: Configuration loading and validation failures
//   - LOOKUP_*: Failures acquiring or reading the backing package index
//   - RENDER_*: External layout tool failures
//   - INVALID_*: Input validation failures
//
// # Usage
//
//	err := apkerrors.New(apkerrors.ErrCodeInvalidPackage, "invalid package name: %s", name)
//	if apkerrors.Is(err, apkerrors.ErrCodeInvalidPackage) {
//	    // Handle validation error
//	}
//
//	// Wrap existing errors
//	err := apkerrors.Wrap(apkerrors.ErrCodeLookupUnreachable, origErr, "failed to fetch %s", url)
package apkerrors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Configuration errors
	ErrCodeConfigNotFound     Code = "CONFIG_NOT_FOUND"
	ErrCodeConfigParse        Code = "CONFIG_PARSE"
	ErrCodeConfigMissingField Code = "CONFIG_MISSING_FIELD"
	ErrCodeConfigInvalidField Code = "CONFIG_INVALID_FIELD"

	// Index lookup errors
	ErrCodeLookupUnreachable Code = "LOOKUP_UNREACHABLE"
	ErrCodeLookupUnreadable  Code = "LOOKUP_UNREADABLE"
	ErrCodeLookupMalformed   Code = "LOOKUP_MALFORMED"

	// Layout tool errors
	ErrCodeRenderToolMissing Code = "RENDER_TOOL_MISSING"
	ErrCodeRenderFailed      Code = "RENDER_FAILED"

	// Input validation errors
	ErrCodeInvalidInput   Code = "INVALID_INPUT"
	ErrCodeInvalidPackage Code = "INVALID_PACKAGE"

	// Internal errors
	ErrCodeInternal Code = "INTERNAL_ERROR"
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
