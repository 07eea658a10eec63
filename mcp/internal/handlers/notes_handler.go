package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/rs/zerolog/log"

	"github.com/notasrust/notes-client/client"
)

// NotesAPI is the subset of *client.Client the tools call.
type NotesAPI interface {
	ListNotes(ctx context.Context) ([]client.Note, error)
	CreateNote(ctx context.Context, req client.CreateNoteRequest) (*client.CreateNoteResult, error)
	DeleteNote(ctx context.Context, id string) (json.RawMessage, error)
	UpdateNote(ctx context.Context, note client.Note) (json.RawMessage, error)
}

// NotesHandler exposes list_notes, create_note, update_note and delete_note.
type NotesHandler struct {
	client NotesAPI
}

// NewNotesHandler returns a new handler.
func NewNotesHandler(c NotesAPI) *NotesHandler {
	return &NotesHandler{client: c}
}

// RegisterTools registers the note tools with the MCP server.
func (nh *NotesHandler) RegisterTools(s *server.MCPServer) error {
	listTool := mcp.NewTool("list_notes",
		mcp.WithDescription("List every note stored by the notes service"),
	)
	s.AddTool(listTool, nh.handleListNotes)

	createTool := mcp.NewTool("create_note",
		mcp.WithDescription("Create a note; the service assigns its id"),
		mcp.WithString("title", mcp.Required(), mcp.Description("Note title")),
		mcp.WithString("content", mcp.Required(), mcp.Description("Note content")),
	)
	s.AddTool(createTool, nh.handleCreateNote)

	updateTool := mcp.NewTool("update_note",
		mcp.WithDescription("Replace the title and content of an existing note"),
		mcp.WithString("id", mcp.Required(), mcp.Description("Note id")),
		mcp.WithString("title", mcp.Required(), mcp.Description("New title")),
		mcp.WithString("content", mcp.Required(), mcp.Description("New content")),
	)
	s.AddTool(updateTool, nh.handleUpdateNote)

	deleteTool := mcp.NewTool("delete_note",
		mcp.WithDescription("Delete a note by id"),
		mcp.WithString("id", mcp.Required(), mcp.Description("Note id")),
	)
	s.AddTool(deleteTool, nh.handleDeleteNote)

	return nil
}

func (nh *NotesHandler) handleListNotes(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	start := time.Now()
	notes, err := nh.client.ListNotes(ctx)
	elapsed := time.Since(start)
	if err != nil {
		log.Error().Err(err).Dur("elapsed", elapsed).Msg("list_notes failed")
		return mcp.NewToolResultError(fmt.Sprintf("failed to list notes: %v", err)), nil
	}

	log.Debug().Int("count", len(notes)).Dur("elapsed", elapsed).Msg("list_notes completed")

	if notes == nil {
		notes = []client.Note{}
	}
	payload := map[string]interface{}{
		"notes": notes,
		"count": len(notes),
	}
	b, _ := json.MarshalIndent(payload, "", "  ")
	return mcp.NewToolResultText(string(b)), nil
}

func (nh *NotesHandler) handleCreateNote(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	title, err := req.RequireString("title")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	content, err := req.RequireString("content")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	log.Debug().Str("title", title).Int("content_len", len(content)).Msg("handling create_note request")

	start := time.Now()
	res, err := nh.client.CreateNote(ctx, client.CreateNoteRequest{Title: title, Content: content})
	elapsed := time.Since(start)
	if err != nil {
		log.Error().Err(err).Str("title", title).Dur("elapsed", elapsed).Msg("create_note failed")
		return mcp.NewToolResultError(fmt.Sprintf("failed to create note: %v", err)), nil
	}

	log.Debug().Bool("note_decoded", res.Note != nil).Dur("elapsed", elapsed).Msg("create_note completed")
	return rawResult(res.Raw, "created"), nil
}

func (nh *NotesHandler) handleUpdateNote(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := req.RequireString("id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	title, err := req.RequireString("title")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	content, err := req.RequireString("content")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	start := time.Now()
	raw, err := nh.client.UpdateNote(ctx, client.Note{ID: id, Title: title, Content: content})
	elapsed := time.Since(start)
	if err != nil {
		log.Error().Err(err).Str("note_id", id).Dur("elapsed", elapsed).Msg("update_note failed")
		return mcp.NewToolResultError(fmt.Sprintf("failed to update note: %v", err)), nil
	}

	log.Debug().Str("note_id", id).Dur("elapsed", elapsed).Msg("update_note completed")
	return rawResult(raw, "updated"), nil
}

func (nh *NotesHandler) handleDeleteNote(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := req.RequireString("id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	start := time.Now()
	raw, err := nh.client.DeleteNote(ctx, id)
	elapsed := time.Since(start)
	if err != nil {
		log.Error().Err(err).Str("note_id", id).Dur("elapsed", elapsed).Msg("delete_note failed")
		return mcp.NewToolResultError(fmt.Sprintf("failed to delete note: %v", err)), nil
	}

	log.Debug().Str("note_id", id).Dur("elapsed", elapsed).Msg("delete_note completed")
	return rawResult(raw, "deleted"), nil
}

// rawResult returns the service body as text, or fallback when it is empty.
func rawResult(raw json.RawMessage, fallback string) *mcp.CallToolResult {
	if len(raw) == 0 {
		return mcp.NewToolResultText(fallback)
	}
	return mcp.NewToolResultText(string(raw))
}
