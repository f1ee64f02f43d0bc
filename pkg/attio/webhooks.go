package attio

import (
	"context"
	"fmt"
	"net/url"
)

// ListWebhooksParams are the optional query parameters for ListWebhooks.
type ListWebhooksParams struct {
	Limit  *int
	Offset *int
}

func (p *ListWebhooksParams) values() url.Values {
	if p == nil {
		return nil
	}
	v := url.Values{}
	setInt(v, "limit", p.Limit)
	setInt(v, "offset", p.Offset)
	return v
}

// ListWebhooks lists all webhooks in the workspace.
func (c *Client) ListWebhooks(ctx context.Context, params *ListWebhooksParams) (map[string]any, error) {
	return c.get(ctx, "webhooks", params.values())
}

// CreateWebhook creates a webhook and its subscriptions.
func (c *Client) CreateWebhook(ctx context.Context, payload any) (map[string]any, error) {
	return c.post(ctx, "webhooks", payload)
}

// GetWebhook gets a single webhook by its webhook id.
func (c *Client) GetWebhook(ctx context.Context, webhookID string) (map[string]any, error) {
	if err := requireID("webhook id", webhookID); err != nil {
		return nil, err
	}
	return c.get(ctx, fmt.Sprintf("webhooks/%s", url.PathEscape(webhookID)), nil)
}

// UpdateWebhook updates a webhook and its subscriptions.
func (c *Client) UpdateWebhook(ctx context.Context, webhookID string, payload any) (map[string]any, error) {
	if err := requireID("webhook id", webhookID); err != nil {
		return nil, err
	}
	return c.patch(ctx, fmt.Sprintf("webhooks/%s", url.PathEscape(webhookID)), payload)
}

// DeleteWebhook deletes a webhook by its webhook id.
func (c *Client) DeleteWebhook(ctx context.Context, webhookID string) (map[string]any, error) {
	if err := requireID("webhook id", webhookID); err != nil {
		return nil, err
	}
	return c.delete(ctx, fmt.Sprintf("webhooks/%s", url.PathEscape(webhookID)), nil)
}
