// Package storetest is a compliance suite shared by every devserver.Store.
package storetest

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notasrust/notes-client/internal/devserver"
)

// Run exercises the Store contract. makeStore must return a clean, isolated store.
func Run(t *testing.T, makeStore func(t *testing.T) devserver.Store) {
	t.Helper()

	t.Run("EmptyList", func(t *testing.T) {
		s := makeStore(t)
		notes, err := s.List(context.Background())
		require.NoError(t, err)
		assert.NotNil(t, notes)
		assert.Empty(t, notes)
	})

	t.Run("CRUD", func(t *testing.T) {
		s := makeStore(t)
		ctx := context.Background()

		a, err := s.Create(ctx, "first", "one")
		require.NoError(t, err)
		require.NotEmpty(t, a.ID)
		b, err := s.Create(ctx, "second", "")
		require.NoError(t, err)
		assert.NotEqual(t, a.ID, b.ID)

		notes, err := s.List(ctx)
		require.NoError(t, err)
		require.Len(t, notes, 2)
		assert.Equal(t, a, notes[0], "creation order")
		assert.Equal(t, b, notes[1])

		updated, err := s.Update(ctx, devserver.Note{ID: a.ID, Title: "first*", Content: "uno"})
		require.NoError(t, err)
		assert.Equal(t, "first*", updated.Title)

		notes, err = s.List(ctx)
		require.NoError(t, err)
		require.Len(t, notes, 2)
		assert.Equal(t, updated, notes[0], "update keeps position")

		require.NoError(t, s.Delete(ctx, a.ID))
		notes, err = s.List(ctx)
		require.NoError(t, err)
		require.Len(t, notes, 1)
		assert.Equal(t, b.ID, notes[0].ID)
	})

	t.Run("DuplicateCreate", func(t *testing.T) {
		s := makeStore(t)
		ctx := context.Background()
		x, err := s.Create(ctx, "same", "same")
		require.NoError(t, err)
		y, err := s.Create(ctx, "same", "same")
		require.NoError(t, err)
		assert.NotEqual(t, x.ID, y.ID)
	})

	t.Run("NotFound", func(t *testing.T) {
		s := makeStore(t)
		ctx := context.Background()
		_, err := s.Update(ctx, devserver.Note{ID: "missing", Title: "x"})
		assert.True(t, errors.Is(err, devserver.ErrNotFound), "update: %v", err)
		err = s.Delete(ctx, "missing")
		assert.True(t, errors.Is(err, devserver.ErrNotFound), "delete: %v", err)

		n, err := s.Create(ctx, "t", "c")
		require.NoError(t, err)
		require.NoError(t, s.Delete(ctx, n.ID))
		err = s.Delete(ctx, n.ID)
		assert.True(t, errors.Is(err, devserver.ErrNotFound), "second delete: %v", err)
	})
}
