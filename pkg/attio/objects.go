package attio

import (
	"context"
	"fmt"
	"net/url"
)

// ListObjects lists all system-defined and user-defined objects in the workspace.
func (c *Client) ListObjects(ctx context.Context) (map[string]any, error) {
	return c.get(ctx, "objects", nil)
}

// GetObject gets a single object by its object id or slug.
func (c *Client) GetObject(ctx context.Context, objectID string) (map[string]any, error) {
	if err := requireID("object id", objectID); err != nil {
		return nil, err
	}
	return c.get(ctx, fmt.Sprintf("objects/%s", url.PathEscape(objectID)), nil)
}

// CreateObject creates a new custom object in the workspace.
func (c *Client) CreateObject(ctx context.Context, payload any) (map[string]any, error) {
	return c.post(ctx, "objects", payload)
}

// UpdateObject updates a single object.
func (c *Client) UpdateObject(ctx context.Context, objectID string, payload any) (map[string]any, error) {
	if err := requireID("object id", objectID); err != nil {
		return nil, err
	}
	return c.patch(ctx, fmt.Sprintf("objects/%s", url.PathEscape(objectID)), payload)
}

// DeleteObject deletes a single object by its object id or slug.
func (c *Client) DeleteObject(ctx context.Context, objectID string) (map[string]any, error) {
	if err := requireID("object id", objectID); err != nil {
		return nil, err
	}
	return c.delete(ctx, fmt.Sprintf("objects/%s", url.PathEscape(objectID)), nil)
}

// ListCustomObjects lists only the user-defined objects, i.e. those the API
// reports with is_system set to false.
func (c *Client) ListCustomObjects(ctx context.Context) (map[string]any, error) {
	objects, err := c.ListObjects(ctx)
	if err != nil {
		return nil, err
	}
	data, ok := objects["data"].([]any)
	if !ok {
		return objects, nil
	}
	custom := make([]any, 0, len(data))
	for _, item := range data {
		obj, ok := item.(map[string]any)
		if !ok {
			continue
		}
		if isSystem, ok := obj["is_system"].(bool); ok && !isSystem {
			custom = append(custom, item)
		}
	}
	return map[string]any{"data": custom}, nil
}

// GetObjectSchema gets an object together with its attribute definitions,
// merged under data.attributes.
func (c *Client) GetObjectSchema(ctx context.Context, objectID string) (map[string]any, error) {
	object, err := c.GetObject(ctx, objectID)
	if err != nil {
		return nil, err
	}
	data, ok := object["data"].(map[string]any)
	if !ok {
		return object, nil
	}

	attributes, err := c.ListAttributes(ctx, TargetObjects, objectID, nil)
	if err != nil {
		return nil, err
	}
	var attrData any = []any{}
	if attributes != nil {
		if d, ok := attributes["data"]; ok {
			attrData = d
		}
	}
	data["attributes"] = attrData
	return object, nil
}
