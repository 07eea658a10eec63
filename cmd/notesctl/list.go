package main

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func newListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all notes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), a.timeout)
			defer cancel()

			start := time.Now()
			notes, err := a.client.ListNotes(ctx)
			elapsed := time.Since(start)
			if err != nil {
				log.Error().Err(err).Dur("elapsed", elapsed).Msg("list notes failed")
				return err
			}

			log.Debug().Int("count", len(notes)).Dur("elapsed", elapsed).Msg("list notes completed")
			return printNotes(cmd.OutOrStdout(), a.output, notes)
		},
	}
}
