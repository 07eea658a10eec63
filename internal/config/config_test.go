package config

import (
	"os"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notasrust/notes-client/client"
)

// clearEnv unsets keys for the duration of the test, including the
// unprefixed names envconfig falls back to.
func clearEnv(t *testing.T, keys ...string) {
	t.Helper()
	for _, k := range keys {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}

func clearClientEnv(t *testing.T) {
	clearEnv(t,
		"NOTES_BASE_URL", "NOTES_TIMEOUT", "NOTES_LOG_LEVEL", "NOTES_DEBUG", "NOTES_HEADERS", "NOTES_BEARER_TOKEN",
		"BASE_URL", "TIMEOUT", "LOG_LEVEL", "DEBUG", "HEADERS", "BEARER_TOKEN",
	)
}

func TestLoad_Defaults(t *testing.T) {
	clearClientEnv(t)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, client.DefaultBaseURL, cfg.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.Timeout)
	assert.Equal(t, zerolog.InfoLevel, cfg.Level())
	assert.False(t, cfg.Debug)
	assert.Empty(t, cfg.Headers)
}

func TestLoad_EnvOverride(t *testing.T) {
	clearClientEnv(t)
	t.Setenv("NOTES_BASE_URL", "http://localhost:8088")
	t.Setenv("NOTES_TIMEOUT", "2s")
	t.Setenv("NOTES_LOG_LEVEL", "DEBUG")
	t.Setenv("NOTES_HEADERS", "X-Env:staging,X-Team:notes")
	t.Setenv("NOTES_BEARER_TOKEN", "tok")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8088", cfg.BaseURL)
	assert.Equal(t, 2*time.Second, cfg.Timeout)
	assert.Equal(t, zerolog.DebugLevel, cfg.Level())
	assert.Equal(t, map[string]string{"X-Env": "staging", "X-Team": "notes"}, cfg.Headers)

	cc := cfg.ClientConfig()
	assert.Equal(t, cfg.BaseURL, cc.BaseURL)
	assert.Equal(t, "staging", cc.Headers["X-Env"])

	c, err := cfg.NewClient()
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8088", c.BaseURL())
	assert.Len(t, cfg.ClientOptions(), 2)
}

func TestLoad_Invalid(t *testing.T) {
	clearClientEnv(t)
	t.Setenv("NOTES_TIMEOUT", "0s")
	_, err := Load()
	require.Error(t, err)

	clearClientEnv(t)
	t.Setenv("NOTES_LOG_LEVEL", "chatty")
	_, err = Load()
	require.Error(t, err)

	clearClientEnv(t)
	t.Setenv("NOTES_TIMEOUT", "soon")
	_, err = Load()
	require.Error(t, err)
}

func clearDevServerEnv(t *testing.T) {
	clearEnv(t,
		"NOTES_DEVSERVER_ADDR", "NOTES_DEVSERVER_STORE", "NOTES_DEVSERVER_STORE_PATH",
		"NOTES_DEVSERVER_SHUTDOWN_TIMEOUT", "NOTES_DEVSERVER_LOG_LEVEL",
		"ADDR", "STORE", "STORE_PATH", "SHUTDOWN_TIMEOUT", "LOG_LEVEL",
	)
}

func TestLoadDevServer(t *testing.T) {
	clearDevServerEnv(t)
	cfg, err := LoadDevServer()
	require.NoError(t, err)
	assert.Equal(t, ":8088", cfg.Addr)
	assert.Equal(t, StoreMemory, cfg.Store)
	assert.Empty(t, cfg.StorePath)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)

	t.Setenv("NOTES_DEVSERVER_STORE", "SQLite")
	cfg, err = LoadDevServer()
	require.NoError(t, err)
	assert.Equal(t, StoreSQLite, cfg.Store)
	assert.Equal(t, "./data/notes.db", cfg.StorePath)

	t.Setenv("NOTES_DEVSERVER_STORE", "bolt")
	t.Setenv("NOTES_DEVSERVER_STORE_PATH", "/tmp/n.bolt")
	cfg, err = LoadDevServer()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/n.bolt", cfg.StorePath)

	t.Setenv("NOTES_DEVSERVER_STORE", "postgres")
	_, err = LoadDevServer()
	require.Error(t, err)
}

func TestLoadMCP(t *testing.T) {
	clearEnv(t, "NOTES_MCP_SERVER_NAME", "NOTES_MCP_ADDR", "SERVER_NAME", "ADDR")
	cfg, err := LoadMCP()
	require.NoError(t, err)
	assert.Equal(t, "notes-mcp-server", cfg.ServerName)
	assert.Equal(t, ":8089", cfg.Addr)

	t.Setenv("NOTES_MCP_SERVER_NAME", "custom")
	cfg, err = LoadMCP()
	require.NoError(t, err)
	assert.Equal(t, "custom", cfg.ServerName)
}

func TestParseLevel(t *testing.T) {
	cases := map[string]zerolog.Level{
		"debug": zerolog.DebugLevel, "INFO": zerolog.InfoLevel, "": zerolog.InfoLevel,
		"warn": zerolog.WarnLevel, "Error": zerolog.ErrorLevel,
	}
	for in, want := range cases {
		got, err := ParseLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := ParseLevel("trace-ish")
	assert.Error(t, err)
}
