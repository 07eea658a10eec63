package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/frontmatter"
)

// noteFile is a note read from a markdown file. The front matter carries the
// title (and, for updates, the id); the body is the content.
type noteFile struct {
	ID      string `yaml:"id" toml:"id" json:"id"`
	Title   string `yaml:"title" toml:"title" json:"title"`
	Content string `yaml:"-" toml:"-" json:"-"`
}

// readNoteFile parses path. The body is kept as written, except for the one
// line break separating it from the front matter. A missing title falls back
// to the file name without extension.
func readNoteFile(path string) (*noteFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var nf noteFile
	body, err := frontmatter.Parse(bytes.NewReader(data), &nf)
	if err != nil {
		return nil, fmt.Errorf("parse front matter in %s: %w", path, err)
	}
	if len(body) < len(data) {
		body = trimSeparator(body)
	}
	nf.Content = string(body)
	if nf.Title == "" {
		nf.Title = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return &nf, nil
}

func trimSeparator(body []byte) []byte {
	if bytes.HasPrefix(body, []byte("\r\n")) {
		return body[2:]
	}
	return bytes.TrimPrefix(body, []byte("\n"))
}
