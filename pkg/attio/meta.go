package attio

import "context"

// IdentifySelf identifies the current access token, its linked workspace and
// its permissions.
func (c *Client) IdentifySelf(ctx context.Context) (map[string]any, error) {
	return c.get(ctx, "self", nil)
}
