package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"

	"github.com/notasrust/notes-client/internal/config"
	"github.com/notasrust/notes-client/internal/devserver"
)

func main() {
	config.InitLogger()

	cfg, err := config.LoadDevServer()
	if err != nil {
		log.Error().Err(err).Msg("invalid dev server configuration")
		os.Exit(1)
	}
	config.SetLogLevel(cfg.Level())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := devserver.Run(ctx, cfg); err != nil {
		log.Error().Err(err).Msg("notes-devserver exited with error")
		stop()
		os.Exit(1)
	}
}
