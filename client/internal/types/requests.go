package types

// ------------------------------
// Request Types
// ------------------------------

// CreateNoteRequest holds the fields of a note that does not exist yet.
// It has no ID; the service assigns one.
type CreateNoteRequest struct {
	Title   string `json:"titulo"`
	Content string `json:"contenido"`
}

// AsNote returns the request as an unsaved Note.
func (r CreateNoteRequest) AsNote() Note {
	return Note{Title: r.Title, Content: r.Content}
}
