package api

import (
	"errors"
	"fmt"
)

// APIError is a failed request to the platform API. Message carries the
// server's own error text when the response body contained one, so it can
// be surfaced to the user verbatim.
type APIError struct {
	StatusCode int
	Message    string
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("request failed with status %d", e.StatusCode)
}

// UserMessage returns the text to show the user for any creation-call
// failure: the server's message when available, a generic fallback otherwise.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Error()
	}
	if msg := err.Error(); msg != "" {
		return msg
	}
	return "the request could not be completed"
}
