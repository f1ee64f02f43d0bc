package attio

import (
	"context"
	"fmt"
	"net/url"
)

// ListMembers lists all workspace members.
func (c *Client) ListMembers(ctx context.Context) (map[string]any, error) {
	return c.get(ctx, "workspace_members", nil)
}

// GetMember gets a single workspace member by its member id.
func (c *Client) GetMember(ctx context.Context, memberID string) (map[string]any, error) {
	if err := requireID("workspace member id", memberID); err != nil {
		return nil, err
	}
	return c.get(ctx, fmt.Sprintf("workspace_members/%s", url.PathEscape(memberID)), nil)
}
