package planapi

import (
	"fmt"
	"net/http"
)

// StatusError is returned when the service answers with a non-2xx status.
type StatusError struct {
	StatusCode int
	Status     string
}

func (e *StatusError) Error() string {
	status := e.Status
	if status == "" {
		status = fmt.Sprintf("%d %s", e.StatusCode, http.StatusText(e.StatusCode))
	}
	return "API error: " + status
}

// NetworkError wraps failures to reach the service at all.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return "NetworkError when attempting to fetch resource: " + e.Err.Error()
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// DecodeError is returned when a 2xx body cannot be decoded.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return "invalid plan response: " + e.Err.Error()
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
