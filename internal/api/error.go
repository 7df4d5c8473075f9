package api

import (
	"encoding/json"
	"errors"
	"fmt"
)

// BackendError is a non-2xx response from the course backend. Message is
// the backend's own detail message when the body carries one, otherwise a
// status-derived fallback.
type BackendError struct {
	Status  int
	Message string
}

func (e *BackendError) Error() string { return e.Message }

// IsBackendError reports whether err is a backend-reported failure, as
// opposed to a transport or decoding failure.
func IsBackendError(err error) bool {
	var be *BackendError
	return errors.As(err, &be)
}

func errorFromResponse(status int, body []byte) *BackendError {
	var payload struct {
		Detail any `json:"detail"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		if msg, ok := payload.Detail.(string); ok && msg != "" {
			return &BackendError{Status: status, Message: msg}
		}
	}
	return &BackendError{Status: status, Message: fmt.Sprintf("backend returned status %d", status)}
}
