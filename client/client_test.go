package client

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestClient_NoteOperations(t *testing.T) {
	var (
		mu   sync.Mutex
		seen []string
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		mu.Lock()
		seen = append(seen, r.Method+" "+r.URL.RequestURI()+" "+string(body))
		mu.Unlock()

		if r.Header.Get("Content-Type") != "application/json" {
			t.Errorf("%s without json content type", r.Method)
		}
		if r.Header.Get("Authorization") != "Bearer secret" {
			t.Errorf("%s without bearer token", r.Method)
		}
		w.Header().Set("Content-Type", "application/json")
		switch r.Method {
		case http.MethodGet:
			_ = json.NewEncoder(w).Encode([]Note{{ID: "42", Title: "t", Content: "c"}})
		case http.MethodPost:
			w.WriteHeader(http.StatusCreated)
			_, _ = w.Write([]byte(`{"id":"42","titulo":"t","contenido":"c"}`))
		case http.MethodPut:
			_, _ = w.Write([]byte(`{"id":"42","titulo":"x","contenido":"y"}`))
		case http.MethodDelete:
			_, _ = w.Write([]byte(`{"deleted":true}`))
		}
	}))
	defer srv.Close()

	c, err := New(Config{BaseURL: srv.URL}, WithBearerToken("secret"))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	t.Cleanup(func() { _ = c.Close() })
	ctx := context.Background()

	res, err := c.CreateNote(ctx, CreateNoteRequest{Title: "t", Content: "c"})
	if err != nil || res.Note == nil || res.Note.ID != "42" {
		t.Fatalf("CreateNote: got=%+v err=%v", res, err)
	}
	notes, err := c.ListNotes(ctx)
	if err != nil || len(notes) != 1 || notes[0] != *res.Note {
		t.Fatalf("ListNotes: got=%+v err=%v", notes, err)
	}
	raw, err := c.UpdateNote(ctx, Note{ID: "42", Title: "x", Content: "y"})
	if err != nil || string(raw) != `{"id":"42","titulo":"x","contenido":"y"}` {
		t.Fatalf("UpdateNote: got=%s err=%v", raw, err)
	}
	raw, err = c.DeleteNote(ctx, "42")
	if err != nil || string(raw) != `{"deleted":true}` {
		t.Fatalf("DeleteNote: got=%s err=%v", raw, err)
	}

	want := []string{
		`POST / {"titulo":"t","contenido":"c"}`,
		`GET / `,
		`PUT / {"id":"42","titulo":"x","contenido":"y"}`,
		`DELETE /?id=42 `,
	}
	mu.Lock()
	defer mu.Unlock()
	if len(seen) != len(want) {
		t.Fatalf("expected %d requests, got %d: %v", len(want), len(seen), seen)
	}
	for i := range want {
		if seen[i] != want[i] {
			t.Fatalf("request %d: want %q got %q", i, want[i], seen[i])
		}
	}
}

func TestClient_ConcurrentCalls(t *testing.T) {
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	c, err := New(Config{BaseURL: srv.URL})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	const n = 16
	var wg sync.WaitGroup
	errs := make(chan error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := c.ListNotes(context.Background()); err != nil {
				errs <- err
			}
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Fatalf("concurrent list: %v", err)
	}
	if got := atomic.LoadInt32(&hits); got != n {
		t.Fatalf("expected %d requests, got %d", n, got)
	}
}

func TestClient_ServerErrorSurfaces(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c, err := New(Config{BaseURL: srv.URL})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	ctx := context.Background()
	if _, err := c.ListNotes(ctx); !IsHTTPStatus(err, http.StatusInternalServerError) {
		t.Fatalf("ListNotes: expected 500, got %v", err)
	}
	if _, err := c.CreateNote(ctx, CreateNoteRequest{}); !IsHTTPStatus(err, http.StatusInternalServerError) {
		t.Fatalf("CreateNote: expected 500, got %v", err)
	}
	if _, err := c.DeleteNote(ctx, "1"); !IsHTTPStatus(err, http.StatusInternalServerError) {
		t.Fatalf("DeleteNote: expected 500, got %v", err)
	}
	if _, err := c.UpdateNote(ctx, Note{ID: "1"}); !IsHTTPStatus(err, http.StatusInternalServerError) {
		t.Fatalf("UpdateNote: expected 500, got %v", err)
	}
}

func TestClient_RecordsMetrics(t *testing.T) {
	var status atomic.Int32
	status.Store(http.StatusOK)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(int(status.Load()))
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	c, err := New(Config{BaseURL: srv.URL})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	okBefore := testutil.ToFloat64(requestsTotal.WithLabelValues(metricList, "ok"))
	errBefore := testutil.ToFloat64(requestsTotal.WithLabelValues(metricList, "error"))

	if _, err := c.ListNotes(context.Background()); err != nil {
		t.Fatalf("ListNotes: %v", err)
	}
	status.Store(http.StatusBadGateway)
	if _, err := c.ListNotes(context.Background()); err == nil {
		t.Fatalf("expected error on 502")
	}

	if got := testutil.ToFloat64(requestsTotal.WithLabelValues(metricList, "ok")) - okBefore; got != 1 {
		t.Fatalf("expected one ok list, got %v", got)
	}
	if got := testutil.ToFloat64(requestsTotal.WithLabelValues(metricList, "error")) - errBefore; got != 1 {
		t.Fatalf("expected one failed list, got %v", got)
	}
}
