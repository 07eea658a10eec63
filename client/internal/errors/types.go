// Package errors provides the failure types returned by the notes client.
// All failures belong to one category; the types only carry detail for
// callers that want to inspect it.
package errors

import "fmt"

// HTTPError is returned when the service answers with a non-2xx status.
type HTTPError struct {
	Operation  string
	StatusCode int
	Body       string // Response body, verbatim
}

// Error implements the error interface.
func (e *HTTPError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("%s: status %d", e.Operation, e.StatusCode)
	}
	return fmt.Sprintf("%s: status %d: %s", e.Operation, e.StatusCode, e.Body)
}

// NetworkError wraps a transport-level failure (dial, TLS, timeout, context).
type NetworkError struct {
	Operation  string
	Underlying error
}

// Error implements the error interface.
func (e *NetworkError) Error() string {
	return fmt.Sprintf("%s network error: %v", e.Operation, e.Underlying)
}

// Unwrap returns the underlying transport error for errors.Is/As.
func (e *NetworkError) Unwrap() error {
	return e.Underlying
}
