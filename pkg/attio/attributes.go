package attio

import (
	"context"
	"fmt"
	"net/url"
)

// Attribute endpoints are scoped to a parent resource: either an object or a
// list. Target selects which.
const (
	TargetObjects = "objects"
	TargetLists   = "lists"
)

// ListAttributesParams are the optional query parameters for ListAttributes.
type ListAttributesParams struct {
	Limit        *int
	Offset       *int
	ShowArchived *bool
}

func (p *ListAttributesParams) values() url.Values {
	if p == nil {
		return nil
	}
	v := url.Values{}
	setInt(v, "limit", p.Limit)
	setInt(v, "offset", p.Offset)
	setBool(v, "show_archived", p.ShowArchived)
	return v
}

// ListAttributes lists all attributes defined on a specific object or list.
func (c *Client) ListAttributes(ctx context.Context, target, identifier string, params *ListAttributesParams) (map[string]any, error) {
	if err := requireTarget(target); err != nil {
		return nil, err
	}
	if err := requireID("identifier", identifier); err != nil {
		return nil, err
	}
	return c.get(ctx, attributesPath(target, identifier), params.values())
}

// CreateAttribute creates a new attribute on either an object or a list.
func (c *Client) CreateAttribute(ctx context.Context, target, identifier string, payload any) (map[string]any, error) {
	if err := requireTarget(target); err != nil {
		return nil, err
	}
	if err := requireID("identifier", identifier); err != nil {
		return nil, err
	}
	return c.post(ctx, attributesPath(target, identifier), payload)
}

// GetAttribute gets a single attribute on either an object or a list.
func (c *Client) GetAttribute(ctx context.Context, target, identifier, attribute string) (map[string]any, error) {
	if err := requireTarget(target); err != nil {
		return nil, err
	}
	if err := requireID("identifier", identifier); err != nil {
		return nil, err
	}
	if err := requireID("attribute", attribute); err != nil {
		return nil, err
	}
	return c.get(ctx, attributePath(target, identifier, attribute), nil)
}

// UpdateAttribute updates a single attribute on a given object or list.
func (c *Client) UpdateAttribute(ctx context.Context, target, identifier, attribute string, payload any) (map[string]any, error) {
	if err := requireTarget(target); err != nil {
		return nil, err
	}
	if err := requireID("identifier", identifier); err != nil {
		return nil, err
	}
	if err := requireID("attribute", attribute); err != nil {
		return nil, err
	}
	return c.patch(ctx, attributePath(target, identifier, attribute), payload)
}

// DeleteAttribute deletes a single attribute on a given object or list.
func (c *Client) DeleteAttribute(ctx context.Context, target, identifier, attribute string) (map[string]any, error) {
	if err := requireTarget(target); err != nil {
		return nil, err
	}
	if err := requireID("identifier", identifier); err != nil {
		return nil, err
	}
	if err := requireID("attribute", attribute); err != nil {
		return nil, err
	}
	return c.delete(ctx, attributePath(target, identifier, attribute), nil)
}

func attributesPath(target, identifier string) string {
	return fmt.Sprintf("%s/%s/attributes", target, url.PathEscape(identifier))
}

func attributePath(target, identifier, attribute string) string {
	return fmt.Sprintf("%s/%s/attributes/%s", target, url.PathEscape(identifier), url.PathEscape(attribute))
}

func requireTarget(target string) error {
	if target != TargetObjects && target != TargetLists {
		return fmt.Errorf("attio: target must be %q or %q, got %q", TargetObjects, TargetLists, target)
	}
	return nil
}
