package api

import "fmt"

// genericErrorMessage is shown when the backend gives us nothing usable.
const genericErrorMessage = "Something went wrong. Please try again."

// APIError is a non-2xx response from the backend. Detail carries the
// backend's "detail" string when the error body was parseable.
type APIError struct {
	Status int
	Detail string
}

func (e *APIError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("backend returned %d: %s", e.Status, e.Detail)
	}
	return fmt.Sprintf("backend returned %d", e.Status)
}

// Message returns the user-facing text for this error: the backend detail
// verbatim when present, a generic fallback otherwise.
func (e *APIError) Message() string {
	if e.Detail != "" {
		return e.Detail
	}
	return genericErrorMessage
}

// ErrUnreachable wraps a transport-level failure (connection refused, DNS,
// timeout) so screens can distinguish "backend down" from a bad response.
type ErrUnreachable struct {
	Err error
}

func (e *ErrUnreachable) Error() string {
	return fmt.Sprintf("backend unreachable: %v", e.Err)
}

func (e *ErrUnreachable) Unwrap() error { return e.Err }
