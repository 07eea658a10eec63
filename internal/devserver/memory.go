package devserver

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// MemoryStore keeps notes in process memory.
type MemoryStore struct {
	mu    sync.RWMutex
	order []string
	notes map[string]Note
}

// NewMemoryStore returns an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{notes: make(map[string]Note)}
}

func (s *MemoryStore) List(ctx context.Context) ([]Note, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Note, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.notes[id])
	}
	return out, nil
}

func (s *MemoryStore) Create(ctx context.Context, title, content string) (Note, error) {
	if err := ctx.Err(); err != nil {
		return Note{}, err
	}
	n := Note{ID: uuid.NewString(), Title: title, Content: content}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notes[n.ID] = n
	s.order = append(s.order, n.ID)
	return n, nil
}

func (s *MemoryStore) Update(ctx context.Context, n Note) (Note, error) {
	if err := ctx.Err(); err != nil {
		return Note{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.notes[n.ID]; !ok {
		return Note{}, ErrNotFound
	}
	s.notes[n.ID] = n
	return n, nil
}

func (s *MemoryStore) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.notes[id]; !ok {
		return ErrNotFound
	}
	delete(s.notes, id)
	for i, v := range s.order {
		if v == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}

func (s *MemoryStore) Close() error { return nil }
