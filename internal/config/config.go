// Package config loads the environment configuration of the notes binaries.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/notasrust/notes-client/client"
)

// Config holds the client configuration shared by notesctl and the MCP server.
// Environment variables are parsed with the NOTES_ prefix, e.g. NOTES_BASE_URL.
type Config struct {
	BaseURL     string            `envconfig:"BASE_URL" default:"https://api-notasrust.testingpage.store"`
	Timeout     time.Duration     `envconfig:"TIMEOUT" default:"30s"`
	LogLevel    string            `envconfig:"LOG_LEVEL" default:"info"`
	Debug       bool              `envconfig:"DEBUG" default:"false"`
	Headers     map[string]string `envconfig:"HEADERS"`
	BearerToken string            `envconfig:"BEARER_TOKEN"`
}

// Load parses NOTES_* environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("NOTES", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment variables: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	log.Debug().
		Str("base_url", cfg.BaseURL).
		Dur("timeout", cfg.Timeout).
		Str("log_level", cfg.LogLevel).
		Bool("debug", cfg.Debug).
		Int("headers", len(cfg.Headers)).
		Bool("bearer_token_present", cfg.BearerToken != "").
		Msg("Configuration loaded")

	return &cfg, nil
}

// Validate checks values envconfig cannot check on its own.
func (c *Config) Validate() error {
	if c.BaseURL == "" {
		return fmt.Errorf("NOTES_BASE_URL cannot be empty")
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("NOTES_TIMEOUT must be > 0, got %s", c.Timeout)
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// Level returns the configured log level, falling back to info.
func (c *Config) Level() zerolog.Level {
	lvl, err := ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.InfoLevel
	}
	return lvl
}

// ClientConfig returns the client.Config described by c.
func (c *Config) ClientConfig() client.Config {
	headers := make(map[string]string, len(c.Headers))
	for k, v := range c.Headers {
		headers[k] = v
	}
	return client.Config{BaseURL: c.BaseURL, Headers: headers}
}

// ClientOptions returns the client options described by c.
func (c *Config) ClientOptions() []client.Option {
	opts := []client.Option{client.WithHTTPTimeout(c.Timeout)}
	if c.Debug {
		opts = append(opts, client.WithDebugLogging(true))
	}
	if c.BearerToken != "" {
		opts = append(opts, client.WithBearerToken(c.BearerToken))
	}
	return opts
}

// NewClient builds a notes client from c.
func (c *Config) NewClient(extra ...client.Option) (*client.Client, error) {
	return client.New(c.ClientConfig(), append(c.ClientOptions(), extra...)...)
}

// Store kinds served by the dev server.
const (
	StoreMemory = "memory"
	StoreSQLite = "sqlite"
	StoreBolt   = "bolt"
)

// DevServerConfig configures the local notes service (NOTES_DEVSERVER_ prefix).
type DevServerConfig struct {
	Addr            string        `envconfig:"ADDR" default:":8088"`
	Store           string        `envconfig:"STORE" default:"memory"`
	StorePath       string        `envconfig:"STORE_PATH" default:""`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"10s"`
	LogLevel        string        `envconfig:"LOG_LEVEL" default:"info"`
}

// LoadDevServer parses NOTES_DEVSERVER_* environment variables.
func LoadDevServer() (*DevServerConfig, error) {
	var cfg DevServerConfig
	if err := envconfig.Process("NOTES_DEVSERVER", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment variables: %w", err)
	}
	if err := cfg.ResolveDefaults(); err != nil {
		return nil, err
	}

	log.Debug().
		Str("addr", cfg.Addr).
		Str("store", cfg.Store).
		Str("store_path", cfg.StorePath).
		Dur("shutdown_timeout", cfg.ShutdownTimeout).
		Msg("Dev server configuration loaded")

	return &cfg, nil
}

// ResolveDefaults validates Store and derives StorePath for file-backed stores.
func (c *DevServerConfig) ResolveDefaults() error {
	c.Store = strings.ToLower(strings.TrimSpace(c.Store))
	switch c.Store {
	case StoreMemory:
	case StoreSQLite:
		if c.StorePath == "" {
			c.StorePath = "./data/notes.db"
		}
	case StoreBolt:
		if c.StorePath == "" {
			c.StorePath = "./data/notes.bolt"
		}
	default:
		return fmt.Errorf("unsupported NOTES_DEVSERVER_STORE: %q", c.Store)
	}
	if c.ShutdownTimeout <= 0 {
		return fmt.Errorf("NOTES_DEVSERVER_SHUTDOWN_TIMEOUT must be > 0")
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// Level returns the configured log level, falling back to info.
func (c *DevServerConfig) Level() zerolog.Level {
	lvl, err := ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.InfoLevel
	}
	return lvl
}

// MCPConfig configures the MCP tool server (NOTES_MCP_ prefix).
type MCPConfig struct {
	ServerName      string        `envconfig:"SERVER_NAME" default:"notes-mcp-server"`
	ServerVersion   string        `envconfig:"SERVER_VERSION" default:"0.1.0"`
	Addr            string        `envconfig:"ADDR" default:":8089"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"10s"`
	HTTPReadTimeout time.Duration `envconfig:"HTTP_READ_TIMEOUT" default:"5s"`
	HTTPIdleTimeout time.Duration `envconfig:"HTTP_IDLE_TIMEOUT" default:"120s"`
}

// LoadMCP parses NOTES_MCP_* environment variables.
func LoadMCP() (*MCPConfig, error) {
	var cfg MCPConfig
	if err := envconfig.Process("NOTES_MCP", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment variables: %w", err)
	}
	return &cfg, nil
}

// ParseLevel maps debug|info|warn|error (any case) to a zerolog level.
// An empty string means info.
func ParseLevel(s string) (zerolog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return zerolog.DebugLevel, nil
	case "", "info":
		return zerolog.InfoLevel, nil
	case "warn", "warning":
		return zerolog.WarnLevel, nil
	case "error":
		return zerolog.ErrorLevel, nil
	default:
		return zerolog.InfoLevel, fmt.Errorf("unsupported log level %q", s)
	}
}
