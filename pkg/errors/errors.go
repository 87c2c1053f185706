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

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"

	// Installer errors
	ErrInstallerMissing ErrorCode = "INSTALLER_MISSING"
	ErrInstallFailed    ErrorCode = "INSTALL_FAILED"
	ErrCommandParse     ErrorCode = "COMMAND_PARSE"

	// Resolution errors
	ErrPackageNotFound ErrorCode = "PACKAGE_NOT_FOUND"
	ErrNoLibraries     ErrorCode = "NO_LIBRARIES"
	ErrNoMatch         ErrorCode = "NO_MATCH"
	ErrEnumeration     ErrorCode = "ENUMERATION"
	ErrCopyFailed      ErrorCode = "COPY_FAILED"

	// FileSystem errors
	ErrFileAccess ErrorCode = "FILE_ACCESS"
	ErrFileWrite  ErrorCode = "FILE_WRITE"
	ErrDirCreate  ErrorCode = "DIR_CREATE"
	ErrDirDelete  ErrorCode = "DIR_DELETE"
)

// NueError represents a structured error with code and details
type NueError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *NueError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *NueError) Unwrap() error {
	return e.Wrapped
}

// Is reports whether target is a NueError with the same code
func (e *NueError) Is(target error) bool {
	var targetErr *NueError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new NueError with the given code and message
func New(code ErrorCode, message string) *NueError {
	return &NueError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new NueError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *NueError {
	return &NueError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a NueError
func Wrap(err error, code ErrorCode, message string) *NueError {
	if err == nil {
		return nil
	}
	return &NueError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *NueError {
	if err == nil {
		return nil
	}
	return &NueError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *NueError) WithDetail(key string, value interface{}) *NueError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var nueErr *NueError
	if errors.As(err, &nueErr) {
		return nueErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a NueError
func GetErrorCode(err error) ErrorCode {
	var nueErr *NueError
	if errors.As(err, &nueErr) {
		return nueErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a NueError
func GetErrorDetails(err error) map[string]interface{} {
	var nueErr *NueError
	if errors.As(err, &nueErr) {
		return nueErr.Details
	}
	return nil
}
