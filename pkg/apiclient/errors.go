package apiclient

import (
	"errors"
	"fmt"
	"net/http"
)

// Sentinel errors for transport outcomes.
var (
	// ErrUnauthorized is returned (wrapped around the *APIError) when
	// the server answers 401. By the time the caller sees it, the
	// configured invalidation hook has already fired.
	ErrUnauthorized = errors.New("apiclient: unauthorized")

	// ErrDecodeFailed is returned when a success response body cannot
	// be decoded into the caller's output value.
	ErrDecodeFailed = errors.New("apiclient: decode response failed")
)

// APIError is a non-2xx response from the remote API.
type APIError struct {
	Status  int    `json:"-"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("apiclient: %d %s: %s", e.Status, e.Code, e.Message)
	}
	return fmt.Sprintf("apiclient: %d %s", e.Status, http.StatusText(e.Status))
}
