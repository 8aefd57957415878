package client

import (
	"errors"
	"fmt"
)

var (
	// ErrBackendUnreachable wraps transport-level failures: the request never
	// produced an HTTP response.
	ErrBackendUnreachable = errors.New("backend unreachable")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNotFound           = errors.New("resource not found")
	ErrUsernameTaken      = errors.New("username already exists")
)

// ServerError is a non-2xx response that carried an application-level message.
// The message is surfaced verbatim to the user.
type ServerError struct {
	StatusCode int
	Message    string
}

func (e *ServerError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("server error (status %d)", e.StatusCode)
	}
	return fmt.Sprintf("server error (status %d): %s", e.StatusCode, e.Message)
}
