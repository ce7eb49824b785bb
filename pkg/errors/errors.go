package errors

import (
	"errors"
	"fmt"
	"maps"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

// Error codes for different error categories
const (
	// General errors
	ErrUnknown       ErrorCode = "UNKNOWN"
	ErrInternal      ErrorCode = "INTERNAL"
	ErrInvalidInput  ErrorCode = "INVALID_INPUT"
	ErrNotFound      ErrorCode = "NOT_FOUND"
	ErrAlreadyExists ErrorCode = "ALREADY_EXISTS"

	// DSL evaluation errors
	ErrUsage       ErrorCode = "USAGE"
	ErrParse       ErrorCode = "PARSE"
	ErrUnknownFlag ErrorCode = "UNKNOWN_FLAG"

	// Rule file errors
	ErrRuleFileLoad  ErrorCode = "RULEFILE_LOAD"
	ErrRuleFileParse ErrorCode = "RULEFILE_PARSE"

	// Tool configuration errors
	ErrConfigLoad ErrorCode = "CONFIG_LOAD"

	// Output errors
	ErrRender ErrorCode = "RENDER"
)

// KeepError is a failure with a stable code, a message for people and
// optional details for tooling. Details is never nil on values built by
// this package.
type KeepError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error renders "[CODE] message", followed by ": cause" when wrapping
func (e *KeepError) Error() string {
	text := "[" + string(e.Code) + "] " + e.Message
	if e.Wrapped == nil {
		return text
	}
	return text + ": " + e.Wrapped.Error()
}

func (e *KeepError) Unwrap() error {
	return e.Wrapped
}

// Is matches any KeepError carrying the same code, so a bare New(code, "")
// works as a sentinel for errors.Is
func (e *KeepError) Is(target error) bool {
	other, ok := target.(*KeepError)
	return ok && other.Code == e.Code
}

func build(code ErrorCode, message string, cause error) *KeepError {
	return &KeepError{
		Code:    code,
		Message: message,
		Details: map[string]interface{}{},
		Wrapped: cause,
	}
}

// New creates a KeepError
func New(code ErrorCode, message string) *KeepError {
	return build(code, message, nil)
}

// Newf creates a KeepError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *KeepError {
	return build(code, fmt.Sprintf(format, args...), nil)
}

// Wrap attaches a code and message to err. A nil err stays nil.
func Wrap(err error, code ErrorCode, message string) *KeepError {
	if err == nil {
		return nil
	}
	return build(code, message, err)
}

// Wrapf is Wrap with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *KeepError {
	if err == nil {
		return nil
	}
	return build(code, fmt.Sprintf(format, args...), err)
}

// WithDetail sets one detail and returns e for chaining
func (e *KeepError) WithDetail(key string, value interface{}) *KeepError {
	return e.WithDetails(map[string]interface{}{key: value})
}

// WithDetails copies details into e, overwriting existing keys
func (e *KeepError) WithDetails(details map[string]interface{}) *KeepError {
	if e.Details == nil {
		e.Details = make(map[string]interface{}, len(details))
	}
	maps.Copy(e.Details, details)
	return e
}

// IsErrorCode checks if an error has a specific error code.
// Wrapped KeepErrors are searched too, so a rule-file error wrapping a
// parse error answers true for both codes.
func IsErrorCode(err error, code ErrorCode) bool {
	for err != nil {
		var keepErr *KeepError
		if !errors.As(err, &keepErr) {
			return false
		}
		if keepErr.Code == code {
			return true
		}
		err = keepErr.Wrapped
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a KeepError
func GetErrorCode(err error) ErrorCode {
	var keepErr *KeepError
	if errors.As(err, &keepErr) {
		return keepErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a KeepError
func GetErrorDetails(err error) map[string]interface{} {
	var keepErr *KeepError
	if errors.As(err, &keepErr) {
		return keepErr.Details
	}
	return nil
}

// AddDetail sets a detail on the outermost KeepError in err's chain, unless
// that key is already present. Other errors are returned unchanged.
func AddDetail(err error, key string, value interface{}) error {
	var keepErr *KeepError
	if !errors.As(err, &keepErr) {
		return err
	}
	if _, exists := keepErr.Details[key]; !exists {
		keepErr.WithDetail(key, value)
	}
	return err
}
