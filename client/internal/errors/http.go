package errors

import stderrors "errors"

// NewHTTPError creates the error for a non-success HTTP status.
func NewHTTPError(statusCode int, body string, operation string) *HTTPError {
	return &HTTPError{Operation: operation, StatusCode: statusCode, Body: body}
}

// NewNetworkError creates the error for a request that never produced a response.
func NewNetworkError(operation string, err error) *NetworkError {
	return &NetworkError{Operation: operation, Underlying: err}
}

// StatusCode returns the HTTP status carried by err, or 0 when err is not
// (and does not wrap) an *HTTPError.
func StatusCode(err error) int {
	var he *HTTPError
	if stderrors.As(err, &he) {
		return he.StatusCode
	}
	return 0
}
