package api

import (
	"net/http"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog/log"
)

// Operation names used in errors and metrics.
const (
	OpListNotes  = "list notes"
	OpCreateNote = "create note"
	OpDeleteNote = "delete note"
	OpUpdateNote = "update note"
)

// NewRestClient builds the request client shared by every notes call. All
// requests are resolved against baseURL and carry headers. Retries stay
// disabled: each call issues exactly one HTTP request.
func NewRestClient(httpClient *http.Client, baseURL string, headers map[string]string) *resty.Client {
	rc := resty.NewWithClient(httpClient).
		SetBaseURL(baseURL).
		SetHeaders(headers).
		SetRetryCount(0).
		SetLogger(zerologAdapter{})
	return rc
}

// zerologAdapter routes resty's internal warnings through the global zerolog logger.
type zerologAdapter struct{}

func (zerologAdapter) Errorf(format string, v ...interface{}) { log.Error().Msgf(format, v...) }
func (zerologAdapter) Warnf(format string, v ...interface{})  { log.Warn().Msgf(format, v...) }
func (zerologAdapter) Debugf(format string, v ...interface{}) { log.Debug().Msgf(format, v...) }
