package main

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/notasrust/notes-client/client"
)

func newUpdateCmd(a *app) *cobra.Command {
	var id, title, content, file string

	cmd := &cobra.Command{
		Use:   "update",
		Short: "Replace the title and content of a note",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			note := client.Note{ID: id, Title: title, Content: content}
			if file != "" {
				nf, err := readNoteFile(file)
				if err != nil {
					return err
				}
				note.Title, note.Content = nf.Title, nf.Content
				if !cmd.Flags().Changed("id") {
					note.ID = nf.ID
				}
				if cmd.Flags().Changed("title") {
					note.Title = title
				}
				if cmd.Flags().Changed("content") {
					note.Content = content
				}
			}

			log.Debug().
				Str("note_id", note.ID).
				Str("title", note.Title).
				Int("content_len", len(note.Content)).
				Msg("updating note")

			ctx, cancel := context.WithTimeout(cmd.Context(), a.timeout)
			defer cancel()

			start := time.Now()
			raw, err := a.client.UpdateNote(ctx, note)
			elapsed := time.Since(start)
			if err != nil {
				log.Error().Err(err).Str("note_id", note.ID).Dur("elapsed", elapsed).Msg("update note failed")
				return err
			}

			log.Debug().Str("note_id", note.ID).Dur("elapsed", elapsed).Msg("update note completed")
			return printRaw(cmd.OutOrStdout(), a.output, raw)
		},
	}

	cmd.Flags().StringVar(&id, "id", "", "Note ID (required unless set in --file front matter)")
	cmd.Flags().StringVar(&title, "title", "", "New title")
	cmd.Flags().StringVar(&content, "content", "", "New content")
	cmd.Flags().StringVarP(&file, "file", "f", "", "Markdown file with front matter id/title; the body after the front matter is the content, unmodified")

	return cmd
}
