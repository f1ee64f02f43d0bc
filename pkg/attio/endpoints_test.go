package attio

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
)

// TestEndpointRouting checks that every operation issues the documented verb
// against the documented path.
func TestEndpointRouting(t *testing.T) {
	payload := map[string]any{"data": map[string]any{}}

	tests := []struct {
		name   string
		call   func(ctx context.Context, c *Client) error
		method string
		path   string
	}{
		{"ListObjects", func(ctx context.Context, c *Client) error { _, err := c.ListObjects(ctx); return err }, http.MethodGet, "/v2/objects"},
		{"GetObject", func(ctx context.Context, c *Client) error { _, err := c.GetObject(ctx, "people"); return err }, http.MethodGet, "/v2/objects/people"},
		{"CreateObject", func(ctx context.Context, c *Client) error { _, err := c.CreateObject(ctx, payload); return err }, http.MethodPost, "/v2/objects"},
		{"UpdateObject", func(ctx context.Context, c *Client) error { _, err := c.UpdateObject(ctx, "people", payload); return err }, http.MethodPatch, "/v2/objects/people"},
		{"DeleteObject", func(ctx context.Context, c *Client) error { _, err := c.DeleteObject(ctx, "people"); return err }, http.MethodDelete, "/v2/objects/people"},

		{"ListAttributes", func(ctx context.Context, c *Client) error { _, err := c.ListAttributes(ctx, TargetObjects, "people", nil); return err }, http.MethodGet, "/v2/objects/people/attributes"},
		{"CreateAttribute", func(ctx context.Context, c *Client) error { _, err := c.CreateAttribute(ctx, TargetLists, "sales", payload); return err }, http.MethodPost, "/v2/lists/sales/attributes"},
		{"GetAttribute", func(ctx context.Context, c *Client) error { _, err := c.GetAttribute(ctx, TargetObjects, "people", "title"); return err }, http.MethodGet, "/v2/objects/people/attributes/title"},
		{"UpdateAttribute", func(ctx context.Context, c *Client) error { _, err := c.UpdateAttribute(ctx, TargetObjects, "people", "title", payload); return err }, http.MethodPatch, "/v2/objects/people/attributes/title"},
		{"DeleteAttribute", func(ctx context.Context, c *Client) error { _, err := c.DeleteAttribute(ctx, TargetLists, "sales", "stage"); return err }, http.MethodDelete, "/v2/lists/sales/attributes/stage"},

		{"ListRecords", func(ctx context.Context, c *Client) error { _, err := c.ListRecords(ctx, "people", nil); return err }, http.MethodPost, "/v2/objects/people/records/query"},
		{"GetRecord", func(ctx context.Context, c *Client) error { _, err := c.GetRecord(ctx, "people", "rec-1"); return err }, http.MethodGet, "/v2/objects/people/records/rec-1"},
		{"CreateRecord", func(ctx context.Context, c *Client) error { _, err := c.CreateRecord(ctx, "people", payload); return err }, http.MethodPost, "/v2/objects/people/records"},
		{"AssertRecord", func(ctx context.Context, c *Client) error { _, err := c.AssertRecord(ctx, "people", payload); return err }, http.MethodPut, "/v2/objects/people/records"},
		{"UpdateRecord", func(ctx context.Context, c *Client) error { _, err := c.UpdateRecord(ctx, "people", "rec-1", payload); return err }, http.MethodPatch, "/v2/objects/people/records/rec-1"},
		{"DeleteRecord", func(ctx context.Context, c *Client) error { _, err := c.DeleteRecord(ctx, "people", "rec-1"); return err }, http.MethodDelete, "/v2/objects/people/records/rec-1"},

		{"ListLists", func(ctx context.Context, c *Client) error { _, err := c.ListLists(ctx); return err }, http.MethodGet, "/v2/lists"},
		{"CreateList", func(ctx context.Context, c *Client) error { _, err := c.CreateList(ctx, payload); return err }, http.MethodPost, "/v2/lists"},
		{"GetList", func(ctx context.Context, c *Client) error { _, err := c.GetList(ctx, "sales"); return err }, http.MethodGet, "/v2/lists/sales"},
		{"UpdateList", func(ctx context.Context, c *Client) error { _, err := c.UpdateList(ctx, "sales", payload); return err }, http.MethodPatch, "/v2/lists/sales"},
		{"DeleteList", func(ctx context.Context, c *Client) error { _, err := c.DeleteList(ctx, "sales"); return err }, http.MethodDelete, "/v2/lists/sales"},

		{"ListEntries", func(ctx context.Context, c *Client) error { _, err := c.ListEntries(ctx, "sales", nil); return err }, http.MethodPost, "/v2/lists/sales/entries/query"},
		{"CreateEntry", func(ctx context.Context, c *Client) error { _, err := c.CreateEntry(ctx, "sales", payload); return err }, http.MethodPost, "/v2/lists/sales/entries"},
		{"AssertEntry", func(ctx context.Context, c *Client) error { _, err := c.AssertEntry(ctx, "sales", payload); return err }, http.MethodPut, "/v2/lists/sales/entries"},
		{"GetEntry", func(ctx context.Context, c *Client) error { _, err := c.GetEntry(ctx, "sales", "ent-1"); return err }, http.MethodGet, "/v2/lists/sales/entries/ent-1"},
		{"DeleteEntry", func(ctx context.Context, c *Client) error { _, err := c.DeleteEntry(ctx, "sales", "ent-1"); return err }, http.MethodDelete, "/v2/lists/sales/entries/ent-1"},

		{"ListMembers", func(ctx context.Context, c *Client) error { _, err := c.ListMembers(ctx); return err }, http.MethodGet, "/v2/workspace_members"},
		{"GetMember", func(ctx context.Context, c *Client) error { _, err := c.GetMember(ctx, "mem-1"); return err }, http.MethodGet, "/v2/workspace_members/mem-1"},

		{"ListNotes", func(ctx context.Context, c *Client) error { _, err := c.ListNotes(ctx, nil); return err }, http.MethodGet, "/v2/notes"},
		{"CreateNote", func(ctx context.Context, c *Client) error { _, err := c.CreateNote(ctx, payload); return err }, http.MethodPost, "/v2/notes"},
		{"GetNote", func(ctx context.Context, c *Client) error { _, err := c.GetNote(ctx, "note-1"); return err }, http.MethodGet, "/v2/notes/note-1"},
		{"UpdateNote", func(ctx context.Context, c *Client) error { _, err := c.UpdateNote(ctx, "note-1", payload); return err }, http.MethodPatch, "/v2/notes/note-1"},
		{"DeleteNote", func(ctx context.Context, c *Client) error { _, err := c.DeleteNote(ctx, "note-1"); return err }, http.MethodDelete, "/v2/notes/note-1"},

		{"ListTasks", func(ctx context.Context, c *Client) error { _, err := c.ListTasks(ctx, nil); return err }, http.MethodGet, "/v2/tasks"},
		{"CreateTask", func(ctx context.Context, c *Client) error { _, err := c.CreateTask(ctx, payload); return err }, http.MethodPost, "/v2/tasks"},
		{"GetTask", func(ctx context.Context, c *Client) error { _, err := c.GetTask(ctx, "task-1"); return err }, http.MethodGet, "/v2/tasks/task-1"},
		{"UpdateTask", func(ctx context.Context, c *Client) error { _, err := c.UpdateTask(ctx, "task-1", payload); return err }, http.MethodPatch, "/v2/tasks/task-1"},
		{"DeleteTask", func(ctx context.Context, c *Client) error { _, err := c.DeleteTask(ctx, "task-1"); return err }, http.MethodDelete, "/v2/tasks/task-1"},

		{"ListThreads", func(ctx context.Context, c *Client) error { _, err := c.ListThreads(ctx, nil); return err }, http.MethodGet, "/v2/threads"},
		{"GetThread", func(ctx context.Context, c *Client) error { _, err := c.GetThread(ctx, "th-1"); return err }, http.MethodGet, "/v2/threads/th-1"},
		{"CreateThread", func(ctx context.Context, c *Client) error { _, err := c.CreateThread(ctx, payload); return err }, http.MethodPost, "/v2/threads"},
		{"UpdateThread", func(ctx context.Context, c *Client) error { _, err := c.UpdateThread(ctx, "th-1", payload); return err }, http.MethodPatch, "/v2/threads/th-1"},
		{"DeleteThread", func(ctx context.Context, c *Client) error { _, err := c.DeleteThread(ctx, "th-1"); return err }, http.MethodDelete, "/v2/threads/th-1"},

		{"CreateComment", func(ctx context.Context, c *Client) error { _, err := c.CreateComment(ctx, payload); return err }, http.MethodPost, "/v2/comments"},
		{"GetComment", func(ctx context.Context, c *Client) error { _, err := c.GetComment(ctx, "com-1"); return err }, http.MethodGet, "/v2/comments/com-1"},
		{"UpdateComment", func(ctx context.Context, c *Client) error { _, err := c.UpdateComment(ctx, "com-1", payload); return err }, http.MethodPatch, "/v2/comments/com-1"},
		{"DeleteComment", func(ctx context.Context, c *Client) error { _, err := c.DeleteComment(ctx, "com-1"); return err }, http.MethodDelete, "/v2/comments/com-1"},

		{"ListWebhooks", func(ctx context.Context, c *Client) error { _, err := c.ListWebhooks(ctx, nil); return err }, http.MethodGet, "/v2/webhooks"},
		{"CreateWebhook", func(ctx context.Context, c *Client) error { _, err := c.CreateWebhook(ctx, payload); return err }, http.MethodPost, "/v2/webhooks"},
		{"GetWebhook", func(ctx context.Context, c *Client) error { _, err := c.GetWebhook(ctx, "wh-1"); return err }, http.MethodGet, "/v2/webhooks/wh-1"},
		{"UpdateWebhook", func(ctx context.Context, c *Client) error { _, err := c.UpdateWebhook(ctx, "wh-1", payload); return err }, http.MethodPatch, "/v2/webhooks/wh-1"},
		{"DeleteWebhook", func(ctx context.Context, c *Client) error { _, err := c.DeleteWebhook(ctx, "wh-1"); return err }, http.MethodDelete, "/v2/webhooks/wh-1"},

		{"IdentifySelf", func(ctx context.Context, c *Client) error { _, err := c.IdentifySelf(ctx); return err }, http.MethodGet, "/v2/self"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var gotMethod, gotPath string
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotMethod = r.Method
				gotPath = r.URL.Path
				io.WriteString(w, `{"data": {}}`)
			}))
			defer srv.Close()

			if err := tc.call(context.Background(), newTestClient(srv)); err != nil {
				t.Fatalf("%s: %v", tc.name, err)
			}
			if gotMethod != tc.method {
				t.Fatalf("method = %s, want %s", gotMethod, tc.method)
			}
			if gotPath != tc.path {
				t.Fatalf("path = %s, want %s", gotPath, tc.path)
			}
		})
	}
}

func TestListRecordsSendsEmptyQueryBodyByDefault(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		if string(body) != "{}" {
			t.Fatalf("expected empty JSON object body, got %q", body)
		}
		io.WriteString(w, `{"data": []}`)
	}))
	defer srv.Close()

	if _, err := newTestClient(srv).ListRecords(context.Background(), "people", nil); err != nil {
		t.Fatalf("ListRecords: %v", err)
	}
}

func TestInvalidAttributeTargetRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		t.Fatalf("no request should be issued for an invalid target")
	}))
	defer srv.Close()

	if _, err := newTestClient(srv).ListAttributes(context.Background(), "records", "people", nil); err == nil {
		t.Fatalf("expected error for invalid target")
	}
}
