package backend

import (
	"errors"
	"fmt"
)

// ErrDebounced is returned when a request is suppressed by the transport's
// duplicate-request guard. Callers treat it as a no-op, not a failure.
var ErrDebounced = errors.New("request debounced")

// ErrNoBackendID is returned when an operation needs a backend identity that
// the drill or group does not have yet. Treated as a soft no-op upstream.
var ErrNoBackendID = errors.New("no backend identity")

// APIError describes a non-2xx backend response.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("backend returned status %d", e.StatusCode)
	}
	return fmt.Sprintf("backend returned status %d: %s", e.StatusCode, e.Message)
}

// IsNotFound reports whether the error is a backend 404.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == 404
}
