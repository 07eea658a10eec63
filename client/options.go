package client

// This file defines functional options that configure the Client during
// construction. Keeping them in a standalone file avoids cluttering
// client.go and makes it easy to discover all available knobs at a glance.

import (
	"fmt"
	"net/http"
	"strings"
	"time"
)

// Option configures a Client during construction in New.
//
// Options run in order after the Config has been applied. Debug logging is
// installed once all options have run, so it wraps whichever transport the
// options left in place.
type Option func(*Client) error

// WithHTTPClient replaces the underlying http.Client. The client is copied;
// the caller's value is never mutated.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) error {
		if hc == nil {
			return fmt.Errorf("http client cannot be nil")
		}
		cp := *hc
		c.http = &cp
		return nil
	}
}

// WithHTTPTimeout sets the underlying http.Client Timeout used by the SDK.
//
// Prefer per-request context deadlines where possible; this timeout is a
// coarse bound on a single HTTP request. The value must be greater than zero.
func WithHTTPTimeout(d time.Duration) Option {
	return func(c *Client) error {
		if d <= 0 {
			return fmt.Errorf("http timeout must be > 0")
		}
		c.http.Timeout = d
		return nil
	}
}

// WithHeader adds a default header sent on every request, overriding any
// value from Config.Headers.
func WithHeader(key, value string) Option {
	return func(c *Client) error {
		if strings.TrimSpace(key) == "" {
			return fmt.Errorf("header name cannot be empty")
		}
		c.headers[http.CanonicalHeaderKey(key)] = value
		return nil
	}
}

// WithBearerToken sends "Authorization: Bearer <token>" on every request.
func WithBearerToken(token string) Option {
	return func(c *Client) error {
		if token == "" {
			return fmt.Errorf("bearer token cannot be empty")
		}
		c.headers["Authorization"] = "Bearer " + token
		return nil
	}
}

// WithDebugLogging logs each request/response through zerolog when enabled
// is true. Do not enable it in production: dumps include headers and bodies.
func WithDebugLogging(enabled bool) Option {
	return func(c *Client) error {
		c.debug = c.debug || enabled
		return nil
	}
}
