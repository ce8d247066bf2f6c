package httpapi

import (
	"encoding/json"
	"fmt"
)

// StatusError is a non-2xx engine response. When the body carried an
// explicit error string it takes precedence verbatim; otherwise the message
// falls back to the numeric status.
type StatusError struct {
	Code    int
	Message string
}

// Error implements the error interface.
func (e *StatusError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("HTTP error: status %d", e.Code)
}

// newStatusError builds a StatusError from a response, extracting the
// {error} body when one is present.
func newStatusError(code int, body []byte) *StatusError {
	var payload struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && payload.Error != "" {
		return &StatusError{Code: code, Message: payload.Error}
	}
	return &StatusError{Code: code}
}
