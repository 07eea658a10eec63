package client

import (
	"fmt"
	"net/http"
	"net/url"
	"sort"
)

// DefaultBaseURL is the endpoint of the hosted notes service.
const DefaultBaseURL = "https://api-notasrust.testingpage.store"

// Config is the explicit construction-time configuration of a Client.
type Config struct {
	// BaseURL is the root every operation is issued against.
	BaseURL string
	// Headers are sent on every request. Content-Type defaults to
	// application/json unless set here.
	Headers map[string]string
}

// DefaultConfig returns the configuration for the hosted service.
func DefaultConfig() Config {
	return Config{
		BaseURL: DefaultBaseURL,
		Headers: map[string]string{"Content-Type": "application/json"},
	}
}

func (cfg Config) validate() error {
	if cfg.BaseURL == "" {
		return ErrEmptyBaseURL
	}
	u, err := url.Parse(cfg.BaseURL)
	if err != nil {
		return fmt.Errorf("invalid base url %q: %w", cfg.BaseURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("invalid base url %q: scheme must be http or https", cfg.BaseURL)
	}
	if u.Host == "" {
		return fmt.Errorf("invalid base url %q: missing host", cfg.BaseURL)
	}
	return nil
}

// headerSet merges the configured headers over the JSON defaults into a fresh
// map keyed by canonical header name. Keys that canonicalise to the same name
// are applied in sorted order, so the last one wins deterministically.
func (cfg Config) headerSet() map[string]string {
	h := map[string]string{"Content-Type": "application/json"}
	keys := make([]string, 0, len(cfg.Headers))
	for k := range cfg.Headers {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		h[http.CanonicalHeaderKey(k)] = cfg.Headers[k]
	}
	return h
}
