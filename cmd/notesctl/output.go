package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"gopkg.in/yaml.v3"

	"github.com/notasrust/notes-client/client"
)

const (
	outputTable = "table"
	outputJSON  = "json"
	outputYAML  = "yaml"
)

func validateOutput(format string) error {
	switch format {
	case outputTable, outputJSON, outputYAML:
		return nil
	default:
		return fmt.Errorf("unsupported --output %q (want table, json or yaml)", format)
	}
}

// noteView is the printed form of a note, keyed like the wire format.
type noteView struct {
	ID      string `json:"id,omitempty" yaml:"id,omitempty"`
	Title   string `json:"titulo" yaml:"titulo"`
	Content string `json:"contenido" yaml:"contenido"`
}

func viewOf(n client.Note) noteView {
	return noteView{ID: n.ID, Title: n.Title, Content: n.Content}
}

// printNotes writes notes in the requested format.
func printNotes(w io.Writer, format string, notes []client.Note) error {
	views := make([]noteView, len(notes))
	for i, n := range notes {
		views[i] = viewOf(n)
	}
	switch format {
	case outputJSON:
		return writeJSON(w, views)
	case outputYAML:
		return yaml.NewEncoder(w).Encode(views)
	default:
		tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "ID\tTITULO\tCONTENIDO")
		for _, v := range views {
			fmt.Fprintf(tw, "%s\t%s\t%s\n", v.ID, oneLine(v.Title), oneLine(v.Content))
		}
		return tw.Flush()
	}
}

// printNote writes a single note in the requested format.
func printNote(w io.Writer, format string, n client.Note) error {
	switch format {
	case outputJSON:
		return writeJSON(w, viewOf(n))
	case outputYAML:
		return yaml.NewEncoder(w).Encode(viewOf(n))
	default:
		return printNotes(w, format, []client.Note{n})
	}
}

// printRaw writes an uninterpreted service response. JSON bodies are
// re-encoded for yaml output; anything else is printed verbatim.
func printRaw(w io.Writer, format string, raw json.RawMessage) error {
	if len(raw) == 0 {
		return nil
	}
	if format == outputYAML {
		var v any
		if err := json.Unmarshal(raw, &v); err == nil {
			return yaml.NewEncoder(w).Encode(v)
		}
	}
	_, err := fmt.Fprintln(w, strings.TrimSpace(string(raw)))
	return err
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// oneLine keeps multi-line content on a single table row.
func oneLine(s string) string {
	s = strings.ReplaceAll(s, "\r\n", " ")
	return strings.ReplaceAll(s, "\n", " ")
}
