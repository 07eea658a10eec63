package client

import "github.com/notasrust/notes-client/client/internal/types"

// Public type aliases so SDK consumers can import only the client package.
type (
	// Requests
	CreateNoteRequest = types.CreateNoteRequest

	// Responses
	CreateNoteResult = types.CreateNoteResult

	// Domain entities
	Note = types.Note
)
