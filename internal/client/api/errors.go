package api

import (
	"errors"
	"fmt"
)

var (
	// ErrUnavailable marks transport-level failures (connection refused,
	// DNS, timeouts) as opposed to HTTP-level error statuses.
	ErrUnavailable = errors.New("server unavailable")
)

// StatusError is returned by services when a non-success HTTP status must
// surface as an error to the caller.
type StatusError struct {
	Status int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status %d", e.Status)
}

// IsSuccess reports whether status is a 2xx code.
func IsSuccess(status int) bool {
	return status >= 200 && status < 300
}
