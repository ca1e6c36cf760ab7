package remote

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrUnreachable = errors.New("remote store unreachable")
	ErrNotFound    = errors.New("remote resource not found")
	ErrValidation  = errors.New("remote store rejected the input")

	// ErrUnexpectedResponse covers other failing statuses and undecodable
	// bodies.
	ErrUnexpectedResponse = errors.New("unexpected remote response")
)

// Error is returned by every Client call that fails. Extractable via
// errors.As; Unwrap exposes one of the sentinels above.
type Error struct {
	Op         string
	StatusCode int
	Message    string
	Err        error
}

func (e *Error) Error() string {
	switch {
	case e.StatusCode == 0:
		return fmt.Sprintf("remote: %s: %v", e.Op, e.Err)
	case e.Message != "":
		return fmt.Sprintf("remote: %s failed (status %d): %s", e.Op, e.StatusCode, e.Message)
	default:
		return fmt.Sprintf("remote: %s failed (status %d): %v", e.Op, e.StatusCode, e.Err)
	}
}

func (e *Error) Unwrap() error { return e.Err }

func statusError(status int) error {
	switch status {
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return ErrValidation
	default:
		return ErrUnexpectedResponse
	}
}
