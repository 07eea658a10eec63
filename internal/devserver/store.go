// Package devserver is a local implementation of the notes service wire
// contract, used for development and as the client's integration test double.
package devserver

import (
	"context"
	"errors"
	"fmt"

	"github.com/notasrust/notes-client/internal/config"
)

// ErrNotFound is returned when no note has the requested id.
var ErrNotFound = errors.New("note not found")

// Note is the stored form of a note. JSON tags match the service wire format.
type Note struct {
	ID      string `json:"id,omitempty"`
	Title   string `json:"titulo"`
	Content string `json:"contenido"`
}

// Store persists notes. List returns notes in creation order.
type Store interface {
	List(ctx context.Context) ([]Note, error)
	Create(ctx context.Context, title, content string) (Note, error)
	Update(ctx context.Context, n Note) (Note, error)
	Delete(ctx context.Context, id string) error
	Close() error
}

// OpenStore opens the store kind named by cfg.
func OpenStore(cfg *config.DevServerConfig) (Store, error) {
	switch cfg.Store {
	case config.StoreMemory:
		return NewMemoryStore(), nil
	case config.StoreSQLite:
		return NewSQLiteStore(cfg.StorePath)
	case config.StoreBolt:
		return NewBoltStore(cfg.StorePath)
	default:
		return nil, fmt.Errorf("unsupported store %q", cfg.Store)
	}
}
