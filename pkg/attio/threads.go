package attio

import (
	"context"
	"fmt"
	"net/url"
)

// ListThreadsParams are the optional query parameters for ListThreads. The
// API expects either a record scope (Object + RecordID) or an entry scope
// (List + EntryID); it rejects anything else, and that rejection is passed
// through as an APIError.
type ListThreadsParams struct {
	RecordID *string
	Object   *string
	EntryID  *string
	List     *string
	Limit    *int
	Offset   *int
}

func (p *ListThreadsParams) values() url.Values {
	if p == nil {
		return nil
	}
	v := url.Values{}
	setString(v, "record_id", p.RecordID)
	setString(v, "object", p.Object)
	setString(v, "entry_id", p.EntryID)
	setString(v, "list", p.List)
	setInt(v, "limit", p.Limit)
	setInt(v, "offset", p.Offset)
	return v
}

// ListThreads lists threads of comments on a record or list entry.
func (c *Client) ListThreads(ctx context.Context, params *ListThreadsParams) (map[string]any, error) {
	return c.get(ctx, "threads", params.values())
}

// GetThread gets all comments in a thread.
func (c *Client) GetThread(ctx context.Context, threadID string) (map[string]any, error) {
	if err := requireID("thread id", threadID); err != nil {
		return nil, err
	}
	return c.get(ctx, fmt.Sprintf("threads/%s", url.PathEscape(threadID)), nil)
}

// CreateThread creates a new thread.
func (c *Client) CreateThread(ctx context.Context, payload any) (map[string]any, error) {
	return c.post(ctx, "threads", payload)
}

// UpdateThread updates an existing thread by its thread id.
func (c *Client) UpdateThread(ctx context.Context, threadID string, payload any) (map[string]any, error) {
	if err := requireID("thread id", threadID); err != nil {
		return nil, err
	}
	return c.patch(ctx, fmt.Sprintf("threads/%s", url.PathEscape(threadID)), payload)
}

// DeleteThread deletes a thread by its thread id.
func (c *Client) DeleteThread(ctx context.Context, threadID string) (map[string]any, error) {
	if err := requireID("thread id", threadID); err != nil {
		return nil, err
	}
	return c.delete(ctx, fmt.Sprintf("threads/%s", url.PathEscape(threadID)), nil)
}
