package attio

import (
	"context"
	"fmt"
	"net/url"
)

// ListTasksParams are the optional query parameters for ListTasks.
type ListTasksParams struct {
	Limit          *int
	Offset         *int
	Sort           *string
	LinkedObject   *string
	LinkedRecordID *string
	IsCompleted    *bool
}

func (p *ListTasksParams) values() url.Values {
	if p == nil {
		return nil
	}
	v := url.Values{}
	setInt(v, "limit", p.Limit)
	setInt(v, "offset", p.Offset)
	setString(v, "sort", p.Sort)
	setString(v, "linked_object", p.LinkedObject)
	setString(v, "linked_record_id", p.LinkedRecordID)
	setBool(v, "is_completed", p.IsCompleted)
	return v
}

// ListTasks lists tasks, sorted by creation date from oldest to newest.
func (c *Client) ListTasks(ctx context.Context, params *ListTasksParams) (map[string]any, error) {
	return c.get(ctx, "tasks", params.values())
}

// CreateTask creates a new task.
func (c *Client) CreateTask(ctx context.Context, payload any) (map[string]any, error) {
	return c.post(ctx, "tasks", payload)
}

// GetTask gets a single task by its task id.
func (c *Client) GetTask(ctx context.Context, taskID string) (map[string]any, error) {
	if err := requireID("task id", taskID); err != nil {
		return nil, err
	}
	return c.get(ctx, fmt.Sprintf("tasks/%s", url.PathEscape(taskID)), nil)
}

// UpdateTask updates an existing task by its task id.
func (c *Client) UpdateTask(ctx context.Context, taskID string, payload any) (map[string]any, error) {
	if err := requireID("task id", taskID); err != nil {
		return nil, err
	}
	return c.patch(ctx, fmt.Sprintf("tasks/%s", url.PathEscape(taskID)), payload)
}

// DeleteTask deletes a task by its task id.
func (c *Client) DeleteTask(ctx context.Context, taskID string) (map[string]any, error) {
	if err := requireID("task id", taskID); err != nil {
		return nil, err
	}
	return c.delete(ctx, fmt.Sprintf("tasks/%s", url.PathEscape(taskID)), nil)
}
