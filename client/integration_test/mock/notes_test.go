package mock

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	client "github.com/notasrust/notes-client/client"
	"github.com/notasrust/notes-client/internal/devserver"
)

func newClient(t *testing.T, store devserver.Store) *client.Client {
	t.Helper()
	srv := httptest.NewServer(devserver.NewHandler(store).Router())
	t.Cleanup(srv.Close)
	c, err := client.New(client.Config{BaseURL: srv.URL})
	if err != nil {
		t.Fatalf("client.New: %v", err)
	}
	t.Cleanup(func() { _ = c.Close() })
	return c
}

func runNoteLifecycle(t *testing.T, c *client.Client) {
	ctx := context.Background()

	notes, err := c.ListNotes(ctx)
	if err != nil {
		t.Fatalf("ListNotes: %v", err)
	}
	if len(notes) != 0 {
		t.Fatalf("expected empty store, got %+v", notes)
	}

	res, err := c.CreateNote(ctx, client.CreateNoteRequest{Title: "compras", Content: "pan, leche"})
	if err != nil {
		t.Fatalf("CreateNote: %v", err)
	}
	created := res.Note
	if created == nil || created.ID == "" || created.Title != "compras" || created.Content != "pan, leche" {
		t.Fatalf("unexpected created note: %+v", created)
	}

	// duplicate create produces a second record
	res, err = c.CreateNote(ctx, client.CreateNoteRequest{Title: "compras", Content: "pan, leche"})
	if err != nil {
		t.Fatalf("CreateNote duplicate: %v", err)
	}
	dup := res.Note
	if dup == nil || dup.ID == created.ID {
		t.Fatalf("duplicate create reused id %s", dup.ID)
	}

	first, err := c.ListNotes(ctx)
	if err != nil {
		t.Fatalf("ListNotes: %v", err)
	}
	second, err := c.ListNotes(ctx)
	if err != nil {
		t.Fatalf("ListNotes: %v", err)
	}
	if len(first) != 2 || len(second) != 2 || first[0] != second[0] || first[1] != second[1] {
		t.Fatalf("list not stable: %+v vs %+v", first, second)
	}

	raw, err := c.UpdateNote(ctx, client.Note{ID: created.ID, Title: "compras", Content: "pan"})
	if err != nil {
		t.Fatalf("UpdateNote: %v", err)
	}
	var updated client.Note
	if err := json.Unmarshal(raw, &updated); err != nil || updated.Content != "pan" {
		t.Fatalf("unexpected update body %s (err=%v)", raw, err)
	}

	if _, err := c.DeleteNote(ctx, dup.ID); err != nil {
		t.Fatalf("DeleteNote: %v", err)
	}
	notes, err = c.ListNotes(ctx)
	if err != nil {
		t.Fatalf("ListNotes: %v", err)
	}
	if len(notes) != 1 || notes[0].ID != created.ID || notes[0].Content != "pan" {
		t.Fatalf("unexpected notes after delete: %+v", notes)
	}

	// deleting again is left to the service, which rejects it
	if _, err := c.DeleteNote(ctx, dup.ID); !client.IsHTTPStatus(err, http.StatusNotFound) {
		t.Fatalf("expected 404 on repeated delete, got %v", err)
	}
	if _, err := c.UpdateNote(ctx, client.Note{ID: "missing"}); !client.IsHTTPStatus(err, http.StatusNotFound) {
		t.Fatalf("expected 404 on unknown update, got %v", err)
	}
	if _, err := c.DeleteNote(ctx, ""); !errors.Is(err, client.ErrMissingID) {
		t.Fatalf("expected ErrMissingID, got %v", err)
	}
}

func TestNotes_Lifecycle_Memory(t *testing.T) {
	t.Parallel()
	runNoteLifecycle(t, newClient(t, devserver.NewMemoryStore()))
}

func TestNotes_Lifecycle_SQLite(t *testing.T) {
	t.Parallel()
	s, err := devserver.NewSQLiteStore(filepath.Join(t.TempDir(), "notes.db"))
	if err != nil {
		t.Fatalf("sqlite store: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	runNoteLifecycle(t, newClient(t, s))
}

func TestNotes_Lifecycle_Bolt(t *testing.T) {
	t.Parallel()
	s, err := devserver.NewBoltStore(filepath.Join(t.TempDir(), "notes.bolt"))
	if err != nil {
		t.Fatalf("bolt store: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	runNoteLifecycle(t, newClient(t, s))
}

func TestNotes_ServiceUnavailable(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(devserver.NewHandler(devserver.NewMemoryStore()).Router())
	url := srv.URL
	srv.Close()

	c, err := client.New(client.Config{BaseURL: url})
	if err != nil {
		t.Fatalf("client.New: %v", err)
	}
	var ne *client.NetworkError
	if _, err := c.ListNotes(context.Background()); !errors.As(err, &ne) {
		t.Fatalf("expected NetworkError against closed server, got %v", err)
	}
}
