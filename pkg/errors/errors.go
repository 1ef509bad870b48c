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
	ErrConfigParse ErrorCode = "CONFIG_PARSE"

	// Shell config errors
	ErrConfigRead   ErrorCode = "SHELL_CONFIG_READ"
	ErrConfigWrite  ErrorCode = "SHELL_CONFIG_WRITE"
	ErrConfigBackup ErrorCode = "SHELL_CONFIG_BACKUP"

	// PATH backup errors
	ErrBackupCreate   ErrorCode = "BACKUP_CREATE"
	ErrBackupRead     ErrorCode = "BACKUP_READ"
	ErrBackupNotFound ErrorCode = "BACKUP_NOT_FOUND"
	ErrRestore        ErrorCode = "RESTORE"

	// FileSystem errors
	ErrFileNotFound ErrorCode = "FILE_NOT_FOUND"
	ErrFileAccess   ErrorCode = "FILE_ACCESS"
	ErrFileWrite    ErrorCode = "FILE_WRITE"
	ErrDirCreate    ErrorCode = "DIR_CREATE"
)

// PathmasterError represents a structured error with code and details
type PathmasterError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *PathmasterError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *PathmasterError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *PathmasterError) Is(target error) bool {
	var targetErr *PathmasterError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new PathmasterError with the given code and message
func New(code ErrorCode, message string) *PathmasterError {
	return &PathmasterError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new PathmasterError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *PathmasterError {
	return &PathmasterError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a PathmasterError
func Wrap(err error, code ErrorCode, message string) *PathmasterError {
	if err == nil {
		return nil
	}
	return &PathmasterError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *PathmasterError {
	if err == nil {
		return nil
	}
	return &PathmasterError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *PathmasterError) WithDetail(key string, value interface{}) *PathmasterError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var pmErr *PathmasterError
	if errors.As(err, &pmErr) {
		return pmErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a PathmasterError
func GetErrorCode(err error) ErrorCode {
	var pmErr *PathmasterError
	if errors.As(err, &pmErr) {
		return pmErr.Code
	}
	return ErrUnknown
}
