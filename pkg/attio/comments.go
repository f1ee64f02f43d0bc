package attio

import (
	"context"
	"fmt"
	"net/url"
)

// CreateComment creates a new comment on an existing thread, record or entry.
func (c *Client) CreateComment(ctx context.Context, payload any) (map[string]any, error) {
	return c.post(ctx, "comments", payload)
}

// GetComment gets a single comment by its comment id.
func (c *Client) GetComment(ctx context.Context, commentID string) (map[string]any, error) {
	if err := requireID("comment id", commentID); err != nil {
		return nil, err
	}
	return c.get(ctx, fmt.Sprintf("comments/%s", url.PathEscape(commentID)), nil)
}

// UpdateComment updates a single comment by its comment id.
func (c *Client) UpdateComment(ctx context.Context, commentID string, payload any) (map[string]any, error) {
	if err := requireID("comment id", commentID); err != nil {
		return nil, err
	}
	return c.patch(ctx, fmt.Sprintf("comments/%s", url.PathEscape(commentID)), payload)
}

// DeleteComment deletes a comment by its comment id. Deleting the head of a
// thread deletes the rest of the thread as well.
func (c *Client) DeleteComment(ctx context.Context, commentID string) (map[string]any, error) {
	if err := requireID("comment id", commentID); err != nil {
		return nil, err
	}
	return c.delete(ctx, fmt.Sprintf("comments/%s", url.PathEscape(commentID)), nil)
}
