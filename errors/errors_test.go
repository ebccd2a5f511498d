package errors

import (
	"fmt"
	"testing"
)

func TestMapoError(t *testing.T) {
	// Test basic error creation
	err := New(ErrCodeOutOfStock, "no stock")
	if err.Code != ErrCodeOutOfStock {
		t.Errorf("expected code %s, got %s", ErrCodeOutOfStock, err.Code)
	}

	// Test error wrapping
	cause := fmt.Errorf("underlying error")
	wrapped := Wrap(cause, ErrCodeAPIUnavailable, "backend unreachable")

	if wrapped.Unwrap() != cause {
		t.Error("Unwrap should return the cause")
	}

	// Test Is function
	if !Is(wrapped, ErrCodeAPIUnavailable) {
		t.Error("Is should return true for matching code")
	}

	if Is(wrapped, ErrCodeOutOfStock) {
		t.Error("Is should return false for non-matching code")
	}

	// Test WithDetail
	detailed := err.WithDetail("presentation", "Bolsa 25kg").WithDetail("requested", 3)
	if detailed.Details["presentation"] != "Bolsa 25kg" {
		t.Error("WithDetail should add details")
	}
}

func TestErrorConstructors(t *testing.T) {
	// Test APIError with a backend detail message
	err := APIError(409, "insufficient stock for presentation 12")
	if err.Code != ErrCodeAPIError {
		t.Errorf("expected code %s, got %s", ErrCodeAPIError, err.Code)
	}
	if err.Message != "insufficient stock for presentation 12" {
		t.Errorf("backend detail should be surfaced verbatim, got %q", err.Message)
	}
	if StatusCode(err) != 409 {
		t.Errorf("expected status 409, got %d", StatusCode(err))
	}
	if Detail(err) != "insufficient stock for presentation 12" {
		t.Error("Detail should return the backend message")
	}

	// Test APIError without a detail message
	err = APIError(500, "")
	if err.Message != "request failed with status 500" {
		t.Errorf("expected generic message, got %q", err.Message)
	}

	// Test Unauthorized
	err = Unauthorized()
	if err.Code != ErrCodeUnauthorized {
		t.Errorf("expected code %s, got %s", ErrCodeUnauthorized, err.Code)
	}
	if StatusCode(err) != 401 {
		t.Error("Unauthorized should carry status 401")
	}

	// Test InsufficientStock
	err = InsufficientStock("Alimento Granel", "8", "5")
	if err.Code != ErrCodeInsufficientStock {
		t.Errorf("expected code %s, got %s", ErrCodeInsufficientStock, err.Code)
	}
	if err.Details["available"] != "5" {
		t.Error("InsufficientStock should include available detail")
	}
}

func TestStatusCodeNonAPIError(t *testing.T) {
	if StatusCode(fmt.Errorf("plain error")) != 0 {
		t.Error("StatusCode should be 0 for non-Mapo errors")
	}
	if Detail(New(ErrCodeInternal, "x")) != "" {
		t.Error("Detail should be empty when no detail was set")
	}
}
