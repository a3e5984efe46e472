package models

import (
	"errors"
	"fmt"
	"net/http"
)

// APIError is the wire-level error body. Every non-2xx response from
// the backend carries a human-readable Detail string.
type APIError struct {
	Detail string `json:"detail"`
}

// NewAPIError creates a wire error body with the given detail message
func NewAPIError(detail string) APIError {
	return APIError{Detail: detail}
}

// ValidationError reports a client-side validation failure. It is
// raised before any network call, so no state has changed when the
// caller sees it.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ConflictError reports a guarded delete blocked by dependent records.
// Count is the number of blocking dependents.
type ConflictError struct {
	Message string
	Count   int
}

func (e *ConflictError) Error() string {
	return e.Message
}

// RemoteError is the single failure type for remote calls: a non-2xx
// response (StatusCode set) or a transport failure (StatusCode zero,
// Err holds the underlying error).
type RemoteError struct {
	StatusCode int
	Message    string
	Err        error
}

func (e *RemoteError) Error() string {
	return e.Message
}

func (e *RemoteError) Unwrap() error {
	return e.Err
}

// IsNotFound reports whether err is a RemoteError for a 404 response.
// Callers use it to tell "record absent" apart from other failures.
func IsNotFound(err error) bool {
	var re *RemoteError
	return errors.As(err, &re) && re.StatusCode == http.StatusNotFound
}
