// Package apperr carries the typed error taxonomy shared by all services.
// Expected conditions (missing rows, denied access, duplicate names) travel
// as values with a code; only genuine persistence faults wrap a cause.
package apperr

import (
	"errors"
	"fmt"
)

type Error struct {
	Code    Code   `json:"code"`
	Message string `json:"message"`
	Cause   error  `json:"-"`
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Cause }

func New(code Code, message string) error {
	return &Error{Code: code, Message: message}
}

func NotFound(msg string) error {
	return New(CodeNotFound, msg)
}

func AccessDenied(msg string) error {
	return New(CodeAccessDenied, msg)
}

func DuplicateUsername(msg string) error {
	return New(CodeDuplicateUsername, msg)
}

func InvalidInput(msg string) error {
	return New(CodeInvalidInput, msg)
}

func Unauthenticated(msg string) error {
	return New(CodeUnauthenticated, msg)
}

// Storage wraps an unexpected persistence failure.
func Storage(msg string, cause error) error {
	return &Error{Code: CodeStorageFailure, Message: msg, Cause: cause}
}

// CodeOf extracts the taxonomy code from err, or CodeUnknown for foreign
// errors.
func CodeOf(err error) Code {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Code
	}
	return CodeUnknown
}

// Is reports whether err carries the given code.
func Is(err error, code Code) bool {
	return CodeOf(err) == code
}
