package types

import (
	"bytes"
	"encoding/json"
)

// CreateNoteResult is the answer to a create call. Raw is the response body
// exactly as the service sent it. Note is Raw decoded as a note, or nil when
// the body is not a note object.
type CreateNoteResult struct {
	Note *Note
	Raw  json.RawMessage
}

// NoteFromBody decodes raw as a note. It returns nil when raw is empty or is
// not a JSON object with note fields.
func NoteFromBody(raw json.RawMessage) *Note {
	if !bytes.HasPrefix(bytes.TrimSpace(raw), []byte("{")) {
		return nil
	}
	var n Note
	if err := json.Unmarshal(raw, &n); err != nil {
		return nil
	}
	return &n
}
