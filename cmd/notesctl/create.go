package main

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/notasrust/notes-client/client"
)

func newCreateCmd(a *app) *cobra.Command {
	var title, content, file string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a note from flags or a markdown file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			req := client.CreateNoteRequest{Title: title, Content: content}
			if file != "" {
				nf, err := readNoteFile(file)
				if err != nil {
					return err
				}
				req.Title, req.Content = nf.Title, nf.Content
				// Explicit flags win over the file.
				if cmd.Flags().Changed("title") {
					req.Title = title
				}
				if cmd.Flags().Changed("content") {
					req.Content = content
				}
			} else if !cmd.Flags().Changed("title") && !cmd.Flags().Changed("content") {
				return fmt.Errorf("one of --title, --content or --file is required")
			}

			log.Debug().
				Str("title", req.Title).
				Int("content_len", len(req.Content)).
				Str("base_url", a.client.BaseURL()).
				Msg("creating note")

			ctx, cancel := context.WithTimeout(cmd.Context(), a.timeout)
			defer cancel()

			start := time.Now()
			res, err := a.client.CreateNote(ctx, req)
			elapsed := time.Since(start)
			if err != nil {
				log.Error().Err(err).Str("title", req.Title).Dur("elapsed", elapsed).Msg("create note failed")
				return err
			}

			if res.Note == nil {
				log.Debug().Dur("elapsed", elapsed).Msg("create note completed; response is not a note")
				return printRaw(cmd.OutOrStdout(), a.output, res.Raw)
			}
			log.Debug().Str("note_id", res.Note.ID).Dur("elapsed", elapsed).Msg("create note completed")
			return printNote(cmd.OutOrStdout(), a.output, *res.Note)
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Note title")
	cmd.Flags().StringVar(&content, "content", "", "Note content")
	cmd.Flags().StringVarP(&file, "file", "f", "", "Markdown file with a front matter title; the body after the front matter is the content, unmodified")

	return cmd
}
