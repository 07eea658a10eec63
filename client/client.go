package client

import (
	"context"
	"encoding/json"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/notasrust/notes-client/client/internal/api"
)

// Metric label values, one per operation.
const (
	metricList   = "list"
	metricCreate = "create"
	metricDelete = "delete"
	metricUpdate = "update"
)

// --------------------------------------------------------------------
// Client core
// --------------------------------------------------------------------

// Client is a stateless wrapper over the notes service. Each method issues
// exactly one HTTP request; nothing is cached or retried. A Client is safe
// for concurrent use.
type Client struct {
	baseURL string
	headers map[string]string
	http    *http.Client
	rest    *resty.Client
	debug   bool

	closedOnce uint32 // ensures Close is idempotent
}

// New constructs a Client from cfg. Additional options can be provided via
// functional arguments.
func New(cfg Config, opts ...Option) (*Client, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	c := &Client{
		baseURL: cfg.BaseURL,
		headers: cfg.headerSet(),
		http:    &http.Client{Timeout: 30 * time.Second},
	}

	// Auto-enable debug via env variable without changing code.
	if debugLoggingRequested() {
		opts = append(opts, WithDebugLogging(true))
	}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}
	if c.debug {
		c.http.Transport = &debugTransport{base: c.http.Transport}
	}

	c.rest = api.NewRestClient(c.http, c.baseURL, c.headers)
	return c, nil
}

// NewDefault constructs a Client for the hosted service.
func NewDefault(opts ...Option) (*Client, error) {
	return New(DefaultConfig(), opts...)
}

// BaseURL returns the root the client issues requests against.
func (c *Client) BaseURL() string { return c.baseURL }

// Close releases idle transport connections. Safe to call multiple times.
func (c *Client) Close() error {
	if !atomic.CompareAndSwapUint32(&c.closedOnce, 0, 1) {
		return nil
	}
	if c.http != nil {
		c.http.CloseIdleConnections()
	}
	return nil
}

// --------------------------------------------------------------------
// Note operations - delegated to internal/api
// --------------------------------------------------------------------

// ListNotes returns every note held by the service (GET /).
func (c *Client) ListNotes(ctx context.Context) ([]Note, error) {
	start := time.Now()
	notes, err := api.ListNotes(ctx, c.rest)
	observe(metricList, start, err)
	return notes, err
}

// CreateNote creates a note (POST /). The result carries the response body
// unmodified and, when the body is a note, its decoded copy with the id the
// service assigned. Calling it twice creates two notes.
func (c *Client) CreateNote(ctx context.Context, req CreateNoteRequest) (*CreateNoteResult, error) {
	start := time.Now()
	res, err := api.CreateNote(ctx, c.rest, req)
	observe(metricCreate, start, err)
	return res, err
}

// DeleteNote deletes the note with the given id (DELETE /?id=<id>) and
// returns the response body as sent by the service.
func (c *Client) DeleteNote(ctx context.Context, id string) (json.RawMessage, error) {
	start := time.Now()
	raw, err := api.DeleteNote(ctx, c.rest, id)
	observe(metricDelete, start, err)
	return raw, err
}

// UpdateNote replaces the title and content of note.ID (PUT /) and returns
// the response body as sent by the service.
func (c *Client) UpdateNote(ctx context.Context, note Note) (json.RawMessage, error) {
	start := time.Now()
	raw, err := api.UpdateNote(ctx, c.rest, note)
	observe(metricUpdate, start, err)
	return raw, err
}
