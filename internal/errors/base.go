package errors

import (
	stderrors "errors"
	"fmt"
)

// EditorError is the base error type for all application errors
type EditorError struct {
	Message  string        // Human-readable error message
	Code     Code          // Machine-readable error kind
	Context  *ErrorContext // Rich error context
	Cause    error         // Underlying error (for wrapping)
	ExitCode ExitCode      // Exit code for CLI
}

// Error returns the error message with cause if present
func (e *EditorError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying cause
func (e *EditorError) Unwrap() error {
	return e.Cause
}

// Base returns the error itself. Kind-specific errors embed *EditorError and
// inherit this method, which lets AsEditorError find them.
func (e *EditorError) Base() *EditorError {
	return e
}

// GetUserMessage returns a user-friendly error message with context
func (e *EditorError) GetUserMessage() string {
	msg := fmt.Sprintf("ERROR: %s", e.Message)

	if e.Cause != nil {
		msg += fmt.Sprintf("\nCause: %v", e.Cause)
	}

	if e.Context != nil {
		msg += e.Context.Format()
	}

	return msg
}

// NewError creates a new EditorError with the given message and exit code
func NewError(message string, exitCode ExitCode) *EditorError {
	return &EditorError{
		Message:  message,
		Code:     CodeGeneral,
		ExitCode: exitCode,
	}
}

// WrapError wraps an existing error with additional context
func WrapError(cause error, message string, exitCode ExitCode) *EditorError {
	return &EditorError{
		Message:  message,
		Code:     CodeGeneral,
		Cause:    cause,
		ExitCode: exitCode,
	}
}

type baser interface {
	Base() *EditorError
}

// AsEditorError finds the first EditorError in err's chain, including
// kind-specific errors that embed one.
func AsEditorError(err error) (*EditorError, bool) {
	var b baser
	if stderrors.As(err, &b) {
		return b.Base(), true
	}
	return nil, false
}

// Is reports whether err carries the given code.
func Is(err error, code Code) bool {
	e, ok := AsEditorError(err)
	return ok && e.Code == code
}

// ExitCodeOf returns the exit code for err, defaulting to ExitGeneralError.
func ExitCodeOf(err error) ExitCode {
	if err == nil {
		return ExitSuccess
	}
	if e, ok := AsEditorError(err); ok {
		return e.ExitCode
	}
	return ExitGeneralError
}
