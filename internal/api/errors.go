package api

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// ServerError is a non-2xx response from the backend. Detail carries the
// backend's "detail" message when the body had one.
type ServerError struct {
	Status int
	Detail string
	Body   []byte
}

func (e *ServerError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("api error %d: %s", e.Status, e.Detail)
	}
	return fmt.Sprintf("api error %d: %s", e.Status, http.StatusText(e.Status))
}

// IsRetryable returns true if the error should trigger a retry.
func (e *ServerError) IsRetryable() bool {
	return e.Status >= 500 || e.Status == http.StatusTooManyRequests
}

// NetworkError is a transport-level failure: the request never produced an
// HTTP response.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error: %v", e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// newServerError builds a ServerError, extracting the backend's detail
// message when the body is the usual {"detail": "..."} shape.
func newServerError(status int, body []byte) *ServerError {
	e := &ServerError{Status: status, Body: body}

	var payload struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		e.Detail = payload.Detail
	}

	return e
}
