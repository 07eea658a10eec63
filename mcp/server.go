// Package mcp serves the notes operations as MCP tools over stdio or
// streamable HTTP.
package mcp

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mark3labs/mcp-go/server"
	"github.com/rs/zerolog/log"

	"github.com/notasrust/notes-client/internal/config"
	"github.com/notasrust/notes-client/mcp/internal/handlers"
)

type toolRegisterer interface {
	RegisterTools(s *server.MCPServer) error
}

// NewServer builds an MCP server exposing the note tools backed by api.
func NewServer(cfg *config.MCPConfig, api handlers.NotesAPI) (*server.MCPServer, error) {
	s := server.NewMCPServer(
		cfg.ServerName,
		cfg.ServerVersion,
		server.WithToolCapabilities(true),
	)
	var h toolRegisterer = handlers.NewNotesHandler(api)
	if err := h.RegisterTools(s); err != nil {
		return nil, err
	}
	return s, nil
}

// RunMCPServer loads configuration from the environment and serves until
// SIGINT/SIGTERM (HTTP) or until stdin closes (stdio).
func RunMCPServer() error {
	clientCfg, err := config.Load()
	if err != nil {
		return err
	}
	mcpCfg, err := config.LoadMCP()
	if err != nil {
		return err
	}
	config.InitLogger()
	config.SetLogLevel(clientCfg.Level())

	log.Info().Str("base_url", clientCfg.BaseURL).Msg("Creating notes client")
	notesClient, err := clientCfg.NewClient()
	if err != nil {
		log.Error().Stack().Err(err).Msg("Failed to create client")
		return err
	}
	defer func() {
		if err := notesClient.Close(); err != nil {
			log.Error().Err(err).Msg("Error closing notes client")
		}
	}()

	s, err := NewServer(mcpCfg, notesClient)
	if err != nil {
		return err
	}

	if shouldUseStdio() {
		// Stdio transport (launched by a host process)
		log.Info().Msg("Starting notes MCP server (stdio transport)")
		return server.ServeStdio(s)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	ln, err := net.Listen("tcp", mcpCfg.Addr)
	if err != nil {
		return err
	}
	return ServeHTTP(ctx, ln, s, mcpCfg)
}

// ServeHTTP serves s as streamable HTTP at /mcp on ln until ctx is done,
// then shuts down within cfg.ShutdownTimeout.
func ServeHTTP(ctx context.Context, ln net.Listener, s *server.MCPServer, cfg *config.MCPConfig) error {
	streamSrv := server.NewStreamableHTTPServer(
		s,
		server.WithEndpointPath("/mcp"),
		server.WithHeartbeatInterval(30*time.Second),
	)

	srv := &http.Server{
		Handler:     streamSrv,
		ReadTimeout: cfg.HTTPReadTimeout,
		// No write deadline: SSE streams stay open.
		WriteTimeout: 0,
		IdleTimeout:  cfg.HTTPIdleTimeout,
	}

	log.Info().Str("addr", ln.Addr().String()).Msg("Starting notes MCP server (Streamable HTTP)")

	errCh := make(chan error, 1)
	go func() {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("Shutting down MCP server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Error during HTTP server shutdown")
		return err
	}
	if err := streamSrv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Error during MCP server shutdown")
		return err
	}
	log.Info().Msg("MCP server shutdown complete")
	return <-errCh
}

// shouldUseStdio determines whether to use stdio transport based on environment
func shouldUseStdio() bool {
	if os.Getenv("MCP_STDIO") == "true" {
		return true
	}
	if os.Getenv("MCP_HTTP") == "true" {
		return false
	}

	// Use stdio if stdin is not a terminal (launched by another process)
	if fileInfo, err := os.Stdin.Stat(); err == nil {
		return (fileInfo.Mode() & os.ModeCharDevice) == 0
	}
	return false
}
