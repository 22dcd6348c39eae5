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

	// Metadata errors
	ErrMetadataVersion ErrorCode = "METADATA_VERSION"
	ErrMetadataCorrupt ErrorCode = "METADATA_CORRUPT"
	ErrMetadataParse   ErrorCode = "METADATA_PARSE"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"

	// Environment errors
	ErrVenvNotFound ErrorCode = "VENV_NOT_FOUND"

	// FileSystem errors
	ErrFileNotFound ErrorCode = "FILE_NOT_FOUND"
	ErrFileAccess   ErrorCode = "FILE_ACCESS"
	ErrFileWrite    ErrorCode = "FILE_WRITE"
)

// VenvxError represents a structured error with code and details
type VenvxError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *VenvxError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *VenvxError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *VenvxError) Is(target error) bool {
	var targetErr *VenvxError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new VenvxError with the given code and message
func New(code ErrorCode, message string) *VenvxError {
	return &VenvxError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new VenvxError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *VenvxError {
	return &VenvxError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a VenvxError
func Wrap(err error, code ErrorCode, message string) *VenvxError {
	if err == nil {
		return nil
	}
	return &VenvxError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *VenvxError {
	if err == nil {
		return nil
	}
	return &VenvxError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *VenvxError) WithDetail(key string, value interface{}) *VenvxError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var venvxErr *VenvxError
	if errors.As(err, &venvxErr) {
		return venvxErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a VenvxError
func GetErrorCode(err error) ErrorCode {
	var venvxErr *VenvxError
	if errors.As(err, &venvxErr) {
		return venvxErr.Code
	}
	return ErrUnknown
}
