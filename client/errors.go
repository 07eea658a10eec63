package client

import (
	"errors"

	clienterrors "github.com/notasrust/notes-client/client/internal/errors"
	"github.com/notasrust/notes-client/client/internal/types"
)

// ErrEmptyBaseURL is returned by New when Config.BaseURL is empty.
var ErrEmptyBaseURL = errors.New("base url cannot be empty")

// Re-export shared SDK errors so callers compare against a single symbol.
var ErrMissingID = types.ErrMissingID

type (
	// HTTPError is returned when the service answers with a non-2xx status.
	HTTPError = clienterrors.HTTPError
	// NetworkError wraps a failure that produced no response at all.
	NetworkError = clienterrors.NetworkError
)

// StatusCode returns the HTTP status carried by err, or 0 if there is none.
func StatusCode(err error) int { return clienterrors.StatusCode(err) }

// IsHTTPStatus reports whether err is an HTTPError with the given status.
func IsHTTPStatus(err error, code int) bool { return StatusCode(err) == code }
