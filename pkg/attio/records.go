package attio

import (
	"context"
	"fmt"
	"net/url"
)

// ListRecords lists records of an object with optional filtering and sorting.
// The API models this as a POST to a query endpoint; query is passed through
// as the request body and may be nil for an unfiltered listing.
func (c *Client) ListRecords(ctx context.Context, objectID string, query any) (map[string]any, error) {
	if err := requireID("object id", objectID); err != nil {
		return nil, err
	}
	if query == nil {
		query = map[string]any{}
	}
	return c.post(ctx, fmt.Sprintf("objects/%s/records/query", url.PathEscape(objectID)), query)
}

// GetRecord gets a single record by its record id.
func (c *Client) GetRecord(ctx context.Context, objectID, recordID string) (map[string]any, error) {
	if err := requireID("object id", objectID); err != nil {
		return nil, err
	}
	if err := requireID("record id", recordID); err != nil {
		return nil, err
	}
	return c.get(ctx, recordPath(objectID, recordID), nil)
}

// CreateRecord creates a new person, company or other record.
func (c *Client) CreateRecord(ctx context.Context, objectID string, payload any) (map[string]any, error) {
	if err := requireID("object id", objectID); err != nil {
		return nil, err
	}
	return c.post(ctx, fmt.Sprintf("objects/%s/records", url.PathEscape(objectID)), payload)
}

// AssertRecord creates or updates a record matched by its unique attribute.
func (c *Client) AssertRecord(ctx context.Context, objectID string, payload any) (map[string]any, error) {
	if err := requireID("object id", objectID); err != nil {
		return nil, err
	}
	return c.put(ctx, fmt.Sprintf("objects/%s/records", url.PathEscape(objectID)), payload)
}

// UpdateRecord updates a single record by its record id.
func (c *Client) UpdateRecord(ctx context.Context, objectID, recordID string, payload any) (map[string]any, error) {
	if err := requireID("object id", objectID); err != nil {
		return nil, err
	}
	if err := requireID("record id", recordID); err != nil {
		return nil, err
	}
	return c.patch(ctx, recordPath(objectID, recordID), payload)
}

// DeleteRecord deletes a single record by its record id.
func (c *Client) DeleteRecord(ctx context.Context, objectID, recordID string) (map[string]any, error) {
	if err := requireID("object id", objectID); err != nil {
		return nil, err
	}
	if err := requireID("record id", recordID); err != nil {
		return nil, err
	}
	return c.delete(ctx, recordPath(objectID, recordID), nil)
}

func recordPath(objectID, recordID string) string {
	return fmt.Sprintf("objects/%s/records/%s", url.PathEscape(objectID), url.PathEscape(recordID))
}
