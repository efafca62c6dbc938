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

	// Workspace errors
	ErrWorkspaceCreate ErrorCode = "WORKSPACE_CREATE"
	ErrWorkspaceRemove ErrorCode = "WORKSPACE_REMOVE"

	// Materialization errors
	ErrDirCreate  ErrorCode = "DIR_CREATE"
	ErrFileWrite  ErrorCode = "FILE_WRITE"
	ErrEntryClash ErrorCode = "ENTRY_CLASH"

	// Inspection errors
	ErrFileRead ErrorCode = "FILE_READ"
	ErrNotText  ErrorCode = "NOT_TEXT"
	ErrTreeWalk ErrorCode = "TREE_WALK"

	// Launcher errors
	ErrBinaryResolve ErrorCode = "BINARY_RESOLVE"

	// Permission errors
	ErrPermission ErrorCode = "PERMISSION"
)

// HarnessError represents a structured error with code and details
type HarnessError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *HarnessError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *HarnessError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *HarnessError) Is(target error) bool {
	var targetErr *HarnessError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new HarnessError with the given code and message
func New(code ErrorCode, message string) *HarnessError {
	return &HarnessError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new HarnessError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *HarnessError {
	return &HarnessError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a HarnessError
func Wrap(err error, code ErrorCode, message string) *HarnessError {
	if err == nil {
		return nil
	}
	return &HarnessError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *HarnessError {
	if err == nil {
		return nil
	}
	return &HarnessError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *HarnessError) WithDetail(key string, value interface{}) *HarnessError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// WithPath records the filesystem path that triggered the error. Every
// materialization and inspection failure carries one so the resulting
// test failure message names the offending path.
func (e *HarnessError) WithPath(path string) *HarnessError {
	return e.WithDetail("path", path)
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var harnessErr *HarnessError
	if errors.As(err, &harnessErr) {
		return harnessErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a HarnessError
func GetErrorCode(err error) ErrorCode {
	var harnessErr *HarnessError
	if errors.As(err, &harnessErr) {
		return harnessErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a HarnessError
func GetErrorDetails(err error) map[string]interface{} {
	var harnessErr *HarnessError
	if errors.As(err, &harnessErr) {
		return harnessErr.Details
	}
	return nil
}
