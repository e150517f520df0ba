package client

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrNetworkUnavailable wraps transport-level failures so callers
	// can show an "is the server running" message instead of a raw
	// dial error.
	ErrNetworkUnavailable = errors.New("network unavailable")

	// ErrServer matches any non-2xx response from the API.
	ErrServer = errors.New("server error")

	// ErrInvalidCredentials matches 401 responses.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrNotFound matches 404 responses.
	ErrNotFound = errors.New("not found")
)

// APIError carries the status code and server-provided message of a
// failed request.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api error (%d): %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("api error (%d)", e.StatusCode)
}

// Is lets errors.Is match an APIError against the package sentinels.
func (e *APIError) Is(target error) bool {
	switch target {
	case ErrServer:
		return true
	case ErrInvalidCredentials:
		return e.StatusCode == http.StatusUnauthorized
	case ErrNotFound:
		return e.StatusCode == http.StatusNotFound
	}
	return false
}
