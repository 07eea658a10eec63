package types

// ------------------------------
// Core Domain Entities
// ------------------------------

// Note is a single note as stored by the remote service. ID is assigned by
// the service and is empty for notes that have not been created yet.
type Note struct {
	ID      string `json:"id,omitempty"`
	Title   string `json:"titulo"`
	Content string `json:"contenido"`
}
