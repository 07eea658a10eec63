package main

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func newDeleteCmd(a *app) *cobra.Command {
	var id string

	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete a note by ID",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), a.timeout)
			defer cancel()

			start := time.Now()
			raw, err := a.client.DeleteNote(ctx, id)
			elapsed := time.Since(start)
			if err != nil {
				log.Error().Err(err).Str("note_id", id).Dur("elapsed", elapsed).Msg("delete note failed")
				return err
			}

			log.Debug().Str("note_id", id).Dur("elapsed", elapsed).Msg("delete note completed")
			return printRaw(cmd.OutOrStdout(), a.output, raw)
		},
	}

	cmd.Flags().StringVar(&id, "id", "", "Note ID (required)")
	_ = cmd.MarkFlagRequired("id")

	return cmd
}
