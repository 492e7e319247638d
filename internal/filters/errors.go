package filters

import (
	"errors"
	"fmt"
)

// Common filter errors
var (
	ErrUnknownFilter   = errors.New("unknown filter")
	ErrDuplicateFilter = errors.New("duplicate filter")
	ErrInvalidFilter   = errors.New("invalid filter")
	ErrUnknownFormat   = errors.New("unknown output format")
)

// ErrorCode represents a specific error condition
type ErrorCode string

const (
	ErrCodeNotFound   ErrorCode = "NOT_FOUND"
	ErrCodeValidation ErrorCode = "VALIDATION"
	ErrCodeRender     ErrorCode = "RENDER"
	ErrCodeScript     ErrorCode = "SCRIPT"
	ErrCodeSource     ErrorCode = "SOURCE"
	ErrCodeOutput     ErrorCode = "OUTPUT"
)

// FilterError wraps errors raised by filter hosts with additional context
type FilterError struct {
	Code       ErrorCode
	Message    string
	Underlying error
	Details    map[string]interface{}
}

// Error implements the error interface
func (e *FilterError) Error() string {
	if e.Underlying != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Underlying)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying error
func (e *FilterError) Unwrap() error {
	return e.Underlying
}

// Is checks if the error matches the target
func (e *FilterError) Is(target error) bool {
	if t, ok := target.(*FilterError); ok {
		return e.Code == t.Code
	}
	return errors.Is(e.Underlying, target)
}

// NewFilterError creates a new FilterError
func NewFilterError(code ErrorCode, message string, err error) *FilterError {
	return &FilterError{
		Code:       code,
		Message:    message,
		Underlying: err,
		Details:    make(map[string]interface{}),
	}
}

// WithDetail adds a detail to the error
func (e *FilterError) WithDetail(key string, value interface{}) *FilterError {
	e.Details[key] = value
	return e
}
