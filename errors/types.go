package errors

import (
	"encoding/json"
	"fmt"
)

// ErrorCode represents a specific error condition
type ErrorCode string

const (
	// Configuration errors
	ErrCodeConfigNotFound   ErrorCode = "CONFIG_NOT_FOUND"
	ErrCodeConfigInvalid    ErrorCode = "CONFIG_INVALID"
	ErrCodeConfigValidation ErrorCode = "CONFIG_VALIDATION"

	// API errors
	ErrCodeAPIUnavailable ErrorCode = "API_UNAVAILABLE"
	ErrCodeAPIError       ErrorCode = "API_ERROR"
	ErrCodeUnauthorized   ErrorCode = "UNAUTHORIZED"
	ErrCodeDecodeFailed   ErrorCode = "DECODE_FAILED"

	// Session errors
	ErrCodeSessionNotFound ErrorCode = "SESSION_NOT_FOUND"
	ErrCodeSessionInvalid  ErrorCode = "SESSION_INVALID"
	ErrCodeForbidden       ErrorCode = "FORBIDDEN"

	// Cart and sale errors
	ErrCodeInvalidQuantity   ErrorCode = "INVALID_QUANTITY"
	ErrCodeOutOfStock        ErrorCode = "OUT_OF_STOCK"
	ErrCodeInsufficientStock ErrorCode = "INSUFFICIENT_STOCK"
	ErrCodeNoCustomer        ErrorCode = "NO_CUSTOMER"
	ErrCodeEmptyCart         ErrorCode = "EMPTY_CART"

	// General errors
	ErrCodeInternal     ErrorCode = "INTERNAL_ERROR"
	ErrCodeInvalidInput ErrorCode = "INVALID_INPUT"
	ErrCodeNotFound     ErrorCode = "NOT_FOUND"
)

// MapoError represents a structured error with context
type MapoError struct {
	Code    ErrorCode              `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
	Cause   error                  `json:"-"`
}

// Error implements the error interface
func (e *MapoError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *MapoError) Unwrap() error {
	return e.Cause
}

// WithDetail adds a detail to the error
func (e *MapoError) WithDetail(key string, value interface{}) *MapoError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// ToJSON converts the error to JSON
func (e *MapoError) ToJSON() string {
	data, _ := json.MarshalIndent(e, "", "  ")
	return string(data)
}

// New creates a new MapoError
func New(code ErrorCode, message string) *MapoError {
	return &MapoError{
		Code:    code,
		Message: message,
	}
}

// Wrap wraps an existing error with a MapoError
func Wrap(err error, code ErrorCode, message string) *MapoError {
	return &MapoError{
		Code:    code,
		Message: message,
		Cause:   err,
	}
}

// Is checks if an error is a specific MapoError code
func Is(err error, code ErrorCode) bool {
	if err == nil {
		return false
	}

	mapoErr, ok := err.(*MapoError)
	if !ok {
		// Try to unwrap
		if unwrapper, ok := err.(interface{ Unwrap() error }); ok {
			return Is(unwrapper.Unwrap(), code)
		}
		return false
	}

	return mapoErr.Code == code
}

// GetCode extracts the error code from an error
func GetCode(err error) ErrorCode {
	if err == nil {
		return ""
	}

	mapoErr, ok := err.(*MapoError)
	if !ok {
		// Try to unwrap
		if unwrapper, ok := err.(interface{ Unwrap() error }); ok {
			return GetCode(unwrapper.Unwrap())
		}
		return ""
	}

	return mapoErr.Code
}
