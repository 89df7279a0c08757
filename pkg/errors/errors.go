package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

// Error codes for different error categories
const (
	// General errors
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInternal     ErrorCode = "INTERNAL"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"

	// Alias errors
	ErrAliasNotFound ErrorCode = "ALIAS_NOT_FOUND"
	ErrAliasInvalid  ErrorCode = "ALIAS_INVALID"
	ErrNoAlias       ErrorCode = "NO_ALIAS"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
	ErrConfigWrite ErrorCode = "CONFIG_WRITE"

	// Completion errors
	ErrUnsupportedShell ErrorCode = "UNSUPPORTED_SHELL"

	// Browser errors
	ErrBrowserLaunch ErrorCode = "BROWSER_LAUNCH"

	// Import errors
	ErrImport ErrorCode = "IMPORT"
)

// WebError represents a structured error with code and details.
// The code is kept out of Error() so messages can be shown to users as-is.
type WebError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *WebError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Wrapped)
	}
	return e.Message
}

// Unwrap implements the errors.Unwrap interface
func (e *WebError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *WebError) Is(target error) bool {
	var targetErr *WebError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new WebError with the given code and message
func New(code ErrorCode, message string) *WebError {
	return &WebError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new WebError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *WebError {
	return &WebError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a WebError
func Wrap(err error, code ErrorCode, message string) *WebError {
	if err == nil {
		return nil
	}
	return &WebError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *WebError {
	if err == nil {
		return nil
	}
	return &WebError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *WebError) WithDetail(key string, value interface{}) *WebError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var webErr *WebError
	if errors.As(err, &webErr) {
		return webErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a WebError
func GetErrorCode(err error) ErrorCode {
	var webErr *WebError
	if errors.As(err, &webErr) {
		return webErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a WebError
func GetErrorDetails(err error) map[string]interface{} {
	var webErr *WebError
	if errors.As(err, &webErr) {
		return webErr.Details
	}
	return nil
}
