package cli

import (
	"fmt"
	"os"

	"github.com/MAPO-UPTC/mapo-cli/errors"
)

// ErrorHandler provides user-friendly error messages
type ErrorHandler struct {
	Verbose bool
}

// NewErrorHandler creates a new error handler
func NewErrorHandler(verbose bool) *ErrorHandler {
	return &ErrorHandler{
		Verbose: verbose,
	}
}

// Handle provides user-friendly error messages based on error type
func (h *ErrorHandler) Handle(err error) error {
	switch errors.GetCode(err) {
	case errors.ErrCodeConfigNotFound:
		fmt.Fprintf(os.Stderr, "❌ Configuration not found. Create a mapo.yml with your backend URL, or set MAPO_API_URL.\n")
		return err

	case errors.ErrCodeUnauthorized:
		fmt.Fprintf(os.Stderr, "❌ Your session expired. Run 'mapo login' to sign in again.\n")
		return err

	case errors.ErrCodeAPIUnavailable:
		fmt.Fprintf(os.Stderr, "❌ Could not reach the MAPO backend. Check your connection and the configured base URL.\n")
		return err

	case errors.ErrCodeAPIError:
		if detail := errors.Detail(err); detail != "" {
			fmt.Fprintf(os.Stderr, "❌ The backend rejected the request: %s\n", detail)
		} else {
			fmt.Fprintf(os.Stderr, "❌ The backend rejected the request (status %d)\n", errors.StatusCode(err))
		}
		return err

	case errors.ErrCodeDecodeFailed:
		fmt.Fprintf(os.Stderr, "❌ The backend sent an unexpected response. It may be running an incompatible version.\n")
		return err

	default:
		fmt.Fprintf(os.Stderr, "❌ Error: %v\n", err)

		if h.Verbose {
			if mapoErr, ok := err.(*errors.MapoError); ok {
				fmt.Fprintf(os.Stderr, "\nDetails:\n%s\n", mapoErr.ToJSON())
			}
		}
		return err
	}
}
