package inventsdk

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// Sentinel errors for the failure modes callers branch on. Transport-level
// failures (no response at all) map to ErrServiceUnavailable, which drives
// different user guidance than an application error response.
var (
	ErrServiceUnavailable = errors.New("service unavailable")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidCode        = errors.New("invalid code")
	ErrAlreadyEnabled     = errors.New("2FA already enabled")
	ErrNotFound           = errors.New("not found")
)

// APIError is a non-2xx response that doesn't map to one of the sentinels.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error (status %d): %s", e.StatusCode, e.Message)
}

// parseErrorResponse converts an error response body into a typed error.
func parseErrorResponse(statusCode int, body []byte) error {
	var er ErrorResponse
	_ = json.Unmarshal(body, &er)

	switch statusCode {
	case http.StatusUnauthorized:
		return ErrInvalidCredentials
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusConflict:
		return ErrAlreadyEnabled
	case http.StatusServiceUnavailable:
		return ErrServiceUnavailable
	case http.StatusBadRequest:
		if er.Error == "invalid code" {
			return ErrInvalidCode
		}
	}

	msg := er.Error
	if msg == "" {
		msg = http.StatusText(statusCode)
	}
	return &APIError{StatusCode: statusCode, Message: msg}
}
