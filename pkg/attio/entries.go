package attio

import (
	"context"
	"fmt"
	"net/url"
)

// ListEntries lists entries in a given list with optional filtering and
// sorting. Like record listing this is a POST query endpoint; query may be
// nil for an unfiltered listing.
func (c *Client) ListEntries(ctx context.Context, listID string, query any) (map[string]any, error) {
	if err := requireID("list id", listID); err != nil {
		return nil, err
	}
	if query == nil {
		query = map[string]any{}
	}
	return c.post(ctx, fmt.Sprintf("lists/%s/entries/query", url.PathEscape(listID)), query)
}

// CreateEntry adds a record to a list as a new list entry.
func (c *Client) CreateEntry(ctx context.Context, listID string, payload any) (map[string]any, error) {
	if err := requireID("list id", listID); err != nil {
		return nil, err
	}
	return c.post(ctx, fmt.Sprintf("lists/%s/entries", url.PathEscape(listID)), payload)
}

// AssertEntry creates or updates the list entry for a given parent record.
func (c *Client) AssertEntry(ctx context.Context, listID string, payload any) (map[string]any, error) {
	if err := requireID("list id", listID); err != nil {
		return nil, err
	}
	return c.put(ctx, fmt.Sprintf("lists/%s/entries", url.PathEscape(listID)), payload)
}

// GetEntry gets a single list entry by its entry id.
func (c *Client) GetEntry(ctx context.Context, listID, entryID string) (map[string]any, error) {
	if err := requireID("list id", listID); err != nil {
		return nil, err
	}
	if err := requireID("entry id", entryID); err != nil {
		return nil, err
	}
	return c.get(ctx, entryPath(listID, entryID), nil)
}

// DeleteEntry deletes a single list entry by its entry id.
func (c *Client) DeleteEntry(ctx context.Context, listID, entryID string) (map[string]any, error) {
	if err := requireID("list id", listID); err != nil {
		return nil, err
	}
	if err := requireID("entry id", entryID); err != nil {
		return nil, err
	}
	return c.delete(ctx, entryPath(listID, entryID), nil)
}

func entryPath(listID, entryID string) string {
	return fmt.Sprintf("lists/%s/entries/%s", url.PathEscape(listID), url.PathEscape(entryID))
}
