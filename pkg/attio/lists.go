package attio

import (
	"context"
	"fmt"
	"net/url"
)

// ListLists lists all lists the access token can reach.
func (c *Client) ListLists(ctx context.Context) (map[string]any, error) {
	return c.get(ctx, "lists", nil)
}

// CreateList creates a new list.
func (c *Client) CreateList(ctx context.Context, payload any) (map[string]any, error) {
	return c.post(ctx, "lists", payload)
}

// GetList gets a single list by its list id or slug.
func (c *Client) GetList(ctx context.Context, listID string) (map[string]any, error) {
	if err := requireID("list id", listID); err != nil {
		return nil, err
	}
	return c.get(ctx, fmt.Sprintf("lists/%s", url.PathEscape(listID)), nil)
}

// UpdateList updates an existing list.
func (c *Client) UpdateList(ctx context.Context, listID string, payload any) (map[string]any, error) {
	if err := requireID("list id", listID); err != nil {
		return nil, err
	}
	return c.patch(ctx, fmt.Sprintf("lists/%s", url.PathEscape(listID)), payload)
}

// DeleteList deletes a single list by its list id.
func (c *Client) DeleteList(ctx context.Context, listID string) (map[string]any, error) {
	if err := requireID("list id", listID); err != nil {
		return nil, err
	}
	return c.delete(ctx, fmt.Sprintf("lists/%s", url.PathEscape(listID)), nil)
}
