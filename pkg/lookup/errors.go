package lookup

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingCredential signals that no API key was configured.
	ErrMissingCredential = errors.New("lookup: api key is not set")
	// ErrEmptyTerm is returned when Search is called with a blank term.
	ErrEmptyTerm = errors.New("lookup: search term is required")
)

// ConfigurationError reports invalid client configuration. It is always
// returned before any request is attempted.
type ConfigurationError struct {
	Field string
	Err   error
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("lookup: invalid configuration %s: %v", e.Field, e.Err)
}

func (e *ConfigurationError) Unwrap() error {
	return e.Err
}

// RequestFailure reports a non-success response status.
type RequestFailure struct {
	StatusCode int
	Status     string
	URL        string
}

func (e *RequestFailure) Error() string {
	status := e.Status
	if status == "" {
		status = fmt.Sprintf("%d", e.StatusCode)
	}
	return fmt.Sprintf("lookup: unexpected status %s", status)
}
