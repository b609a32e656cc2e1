package upstream

import (
	"fmt"
	"time"

	"numroute/internal/domain/entity"
)

// FetchError is a failed single attempt. Status is 0 when no HTTP status was
// received (timeout, transport error, malformed body).
type FetchError struct {
	Status  int
	Message string
	Elapsed time.Duration
	cause   error
}

func (e *FetchError) Error() string {
	return e.Message
}

func (e *FetchError) Unwrap() error {
	return e.cause
}

func statusError(status int, elapsed time.Duration) *FetchError {
	return &FetchError{
		Status:  status,
		Message: fmt.Sprintf("HTTP %d", status),
		Elapsed: elapsed,
	}
}

func transportError(err error, elapsed time.Duration) *FetchError {
	return &FetchError{
		Message: err.Error(),
		Elapsed: elapsed,
		cause:   err,
	}
}

// ExhaustedError is returned once every attempt failed. Its message is the
// last attempt's message.
type ExhaustedError struct {
	Call entity.UpstreamCall
	last error
}

func (e *ExhaustedError) Error() string {
	return e.Call.LastError
}

func (e *ExhaustedError) Unwrap() error {
	return e.last
}
