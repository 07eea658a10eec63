package api

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-resty/resty/v2"

	clienterrors "github.com/notasrust/notes-client/client/internal/errors"
	"github.com/notasrust/notes-client/client/internal/types"
)

// Every notes operation targets the collection root; the service has no
// per-note paths.
const collectionPath = "/"

// ListNotes returns every note the service currently stores, in the order
// the service returns them.
func ListNotes(ctx context.Context, rc *resty.Client) ([]types.Note, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	resp, err := rc.R().SetContext(ctx).Get(collectionPath)
	if err != nil {
		return nil, clienterrors.NewNetworkError(OpListNotes, err)
	}
	if !resp.IsSuccess() {
		return nil, clienterrors.NewHTTPError(resp.StatusCode(), resp.String(), OpListNotes)
	}

	var notes []types.Note
	if err := json.Unmarshal(resp.Body(), &notes); err != nil {
		return nil, fmt.Errorf("%s: decode response: %w", OpListNotes, err)
	}
	return notes, nil
}

// CreateNote posts a new note. Title and content are sent as given. The
// response body is returned unmodified in Raw; Note is filled only when the
// body decodes as a note, and a body that does not is not an error.
func CreateNote(ctx context.Context, rc *resty.Client, req types.CreateNoteRequest) (*types.CreateNoteResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	body, err := json.Marshal(req)
	if err != nil {
		return nil, err
	}
	resp, err := rc.R().SetContext(ctx).SetBody(body).Post(collectionPath)
	if err != nil {
		return nil, clienterrors.NewNetworkError(OpCreateNote, err)
	}
	if !resp.IsSuccess() {
		return nil, clienterrors.NewHTTPError(resp.StatusCode(), resp.String(), OpCreateNote)
	}

	raw := rawBody(resp)
	return &types.CreateNoteResult{Note: types.NoteFromBody(raw), Raw: raw}, nil
}

// DeleteNote removes the note with the given id. The id travels as the "id"
// query parameter on the collection root. The response body is returned
// without interpretation.
func DeleteNote(ctx context.Context, rc *resty.Client, id string) (json.RawMessage, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := types.ValidateIDPresent(id, "id"); err != nil {
		return nil, err
	}
	resp, err := rc.R().SetContext(ctx).SetQueryParam("id", id).Delete(collectionPath)
	if err != nil {
		return nil, clienterrors.NewNetworkError(OpDeleteNote, err)
	}
	if !resp.IsSuccess() {
		return nil, clienterrors.NewHTTPError(resp.StatusCode(), resp.String(), OpDeleteNote)
	}
	return rawBody(resp), nil
}

// UpdateNote replaces title and content of the note identified by note.ID.
// The response body is returned without interpretation.
func UpdateNote(ctx context.Context, rc *resty.Client, note types.Note) (json.RawMessage, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := types.ValidateIDPresent(note.ID, "id"); err != nil {
		return nil, err
	}
	body, err := json.Marshal(note)
	if err != nil {
		return nil, err
	}
	resp, err := rc.R().SetContext(ctx).SetBody(body).Put(collectionPath)
	if err != nil {
		return nil, clienterrors.NewNetworkError(OpUpdateNote, err)
	}
	if !resp.IsSuccess() {
		return nil, clienterrors.NewHTTPError(resp.StatusCode(), resp.String(), OpUpdateNote)
	}
	return rawBody(resp), nil
}

// rawBody copies the response body so callers never alias resty's buffer.
func rawBody(resp *resty.Response) json.RawMessage {
	b := resp.Body()
	out := make(json.RawMessage, len(b))
	copy(out, b)
	return out
}
