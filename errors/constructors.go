package errors

import (
	"fmt"
)

// ConfigNotFound creates a configuration not found error
func ConfigNotFound(path string) *MapoError {
	return New(ErrCodeConfigNotFound, fmt.Sprintf("configuration file not found: %s", path)).
		WithDetail("path", path)
}

// ConfigInvalid creates an invalid configuration error
func ConfigInvalid(reason string) *MapoError {
	return New(ErrCodeConfigInvalid, fmt.Sprintf("invalid configuration: %s", reason))
}

// APIError creates an error for a non-2xx backend response. The detail string
// is the backend's own message when it sent one, and is surfaced verbatim to
// the user.
func APIError(status int, detail string) *MapoError {
	msg := detail
	if msg == "" {
		msg = fmt.Sprintf("request failed with status %d", status)
	}
	return New(ErrCodeAPIError, msg).
		WithDetail("status", status).
		WithDetail("detail", detail)
}

// Unauthorized creates a 401 error. The HTTP client clears the persisted
// session before returning this.
func Unauthorized() *MapoError {
	return New(ErrCodeUnauthorized, "session expired, please log in again").
		WithDetail("status", 401)
}

// Forbidden creates an error for an action the session's role may not
// perform. The backend enforces the same rule; this only spares the
// round-trip.
func Forbidden(role, action string) *MapoError {
	return New(ErrCodeForbidden, fmt.Sprintf("role '%s' may not %s", role, action)).
		WithDetail("role", role)
}

// APIUnavailable creates an error for a failed network round-trip
func APIUnavailable(err error) *MapoError {
	return Wrap(err, ErrCodeAPIUnavailable, "could not reach the MAPO backend")
}

// DecodeFailed creates an error for an unexpected response shape
func DecodeFailed(endpoint string, err error) *MapoError {
	return Wrap(err, ErrCodeDecodeFailed, fmt.Sprintf("unexpected response from %s", endpoint)).
		WithDetail("endpoint", endpoint)
}

// InvalidQuantity creates an error for a non-positive requested quantity
func InvalidQuantity(quantity string) *MapoError {
	return New(ErrCodeInvalidQuantity, "quantity must be greater than zero").
		WithDetail("quantity", quantity)
}

// OutOfStock creates an error for a presentation with no available stock
func OutOfStock(presentation string) *MapoError {
	return New(ErrCodeOutOfStock, fmt.Sprintf("'%s' has no available stock", presentation)).
		WithDetail("presentation", presentation)
}

// InsufficientStock creates an error for a request exceeding available stock
func InsufficientStock(presentation string, requested, available string) *MapoError {
	return New(ErrCodeInsufficientStock,
		fmt.Sprintf("only %s of '%s' available, %s requested", available, presentation, requested)).
		WithDetail("presentation", presentation).
		WithDetail("requested", requested).
		WithDetail("available", available)
}

// StatusCode extracts the HTTP status carried by an API error, or 0
func StatusCode(err error) int {
	mapoErr, ok := err.(*MapoError)
	if !ok {
		return 0
	}
	if status, ok := mapoErr.Details["status"].(int); ok {
		return status
	}
	return 0
}

// Detail extracts the backend-provided detail message, or ""
func Detail(err error) string {
	mapoErr, ok := err.(*MapoError)
	if !ok {
		return ""
	}
	if detail, ok := mapoErr.Details["detail"].(string); ok {
		return detail
	}
	return ""
}
