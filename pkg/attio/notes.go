package attio

import (
	"context"
	"fmt"
	"net/url"
)

// ListNotesParams are the optional query parameters for ListNotes.
type ListNotesParams struct {
	Limit          *int
	Offset         *int
	ParentObject   *string
	ParentRecordID *string
}

func (p *ListNotesParams) values() url.Values {
	if p == nil {
		return nil
	}
	v := url.Values{}
	setInt(v, "limit", p.Limit)
	setInt(v, "offset", p.Offset)
	setString(v, "parent_object", p.ParentObject)
	setString(v, "parent_record_id", p.ParentRecordID)
	return v
}

// ListNotes lists notes for all records or, filtered, for a specific record.
func (c *Client) ListNotes(ctx context.Context, params *ListNotesParams) (map[string]any, error) {
	return c.get(ctx, "notes", params.values())
}

// CreateNote creates a new note for a given record.
func (c *Client) CreateNote(ctx context.Context, payload any) (map[string]any, error) {
	return c.post(ctx, "notes", payload)
}

// GetNote gets a single note by its note id.
func (c *Client) GetNote(ctx context.Context, noteID string) (map[string]any, error) {
	if err := requireID("note id", noteID); err != nil {
		return nil, err
	}
	return c.get(ctx, fmt.Sprintf("notes/%s", url.PathEscape(noteID)), nil)
}

// UpdateNote updates a single note by its note id.
func (c *Client) UpdateNote(ctx context.Context, noteID string, payload any) (map[string]any, error) {
	if err := requireID("note id", noteID); err != nil {
		return nil, err
	}
	return c.patch(ctx, fmt.Sprintf("notes/%s", url.PathEscape(noteID)), payload)
}

// DeleteNote deletes a single note by its note id.
func (c *Client) DeleteNote(ctx context.Context, noteID string) (map[string]any, error) {
	if err := requireID("note id", noteID); err != nil {
		return nil, err
	}
	return c.delete(ctx, fmt.Sprintf("notes/%s", url.PathEscape(noteID)), nil)
}
