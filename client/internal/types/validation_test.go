package types

import (
	"errors"
	"testing"
)

func TestValidateIDPresent(t *testing.T) {
	t.Parallel()
	cases := []struct {
		in string
		ok bool
	}{
		{"42", true}, {"3ea7a8b3-93b4-44d1-b18e-f0a5b76ae31c", true}, {"", false}, {"   ", false},
	}
	for _, c := range cases {
		err := ValidateIDPresent(c.in, "id")
		if c.ok && err != nil {
			t.Fatalf("expected ok for %q, got %v", c.in, err)
		}
		if !c.ok {
			if err == nil {
				t.Fatalf("expected error for %q", c.in)
			}
			if !errors.Is(err, ErrMissingID) {
				t.Fatalf("expected ErrMissingID for %q, got %v", c.in, err)
			}
		}
	}
}

func TestCreateNoteRequest_AsNote(t *testing.T) {
	t.Parallel()
	n := CreateNoteRequest{Title: "t", Content: "c"}.AsNote()
	if n.ID != "" || n.Title != "t" || n.Content != "c" {
		t.Fatalf("unexpected note: %+v", n)
	}
}
