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
	ErrNotFound     ErrorCode = "NOT_FOUND"
	ErrPermission   ErrorCode = "PERMISSION"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"

	// Library errors
	ErrReadOnly     ErrorCode = "READ_ONLY"
	ErrDecode       ErrorCode = "DECODE"
	ErrEncode       ErrorCode = "ENCODE"
	ErrUnknownCodec ErrorCode = "UNKNOWN_CODEC"
	ErrEntryInvalid ErrorCode = "ENTRY_INVALID"

	// FileSystem errors
	ErrFileNotFound ErrorCode = "FILE_NOT_FOUND"
	ErrFileAccess   ErrorCode = "FILE_ACCESS"
	ErrFileWrite    ErrorCode = "FILE_WRITE"
	ErrDirCreate    ErrorCode = "DIR_CREATE"
)

// GestureError represents a structured error with code and details
type GestureError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *GestureError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *GestureError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *GestureError) Is(target error) bool {
	var targetErr *GestureError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new GestureError with the given code and message
func New(code ErrorCode, message string) *GestureError {
	return &GestureError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new GestureError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *GestureError {
	return &GestureError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a GestureError
func Wrap(err error, code ErrorCode, message string) *GestureError {
	if err == nil {
		return nil
	}
	return &GestureError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *GestureError {
	if err == nil {
		return nil
	}
	return &GestureError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *GestureError) WithDetail(key string, value interface{}) *GestureError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// WithDetails adds multiple details to the error
func (e *GestureError) WithDetails(details map[string]interface{}) *GestureError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	for k, v := range details {
		e.Details[k] = v
	}
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var gestureErr *GestureError
	if errors.As(err, &gestureErr) {
		return gestureErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a GestureError
func GetErrorCode(err error) ErrorCode {
	var gestureErr *GestureError
	if errors.As(err, &gestureErr) {
		return gestureErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a GestureError
func GetErrorDetails(err error) map[string]interface{} {
	var gestureErr *GestureError
	if errors.As(err, &gestureErr) {
		return gestureErr.Details
	}
	return nil
}
