package app

import (
	"context"
	"fmt"
	"os"

	"github.com/relayform/go-attio/internal/config"
	"github.com/relayform/go-attio/pkg/attio"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// Fixture seeds the demo run. Records hold attribute values for the target
// object; the note and task are attached to the first created record.
type Fixture struct {
	Object  string           `yaml:"object"`
	Records []map[string]any `yaml:"records"`
	Note    *NoteFixture     `yaml:"note"`
	Task    *TaskFixture     `yaml:"task"`
}

type NoteFixture struct {
	Title   string `yaml:"title"`
	Content string `yaml:"content"`
}

type TaskFixture struct {
	Content  string `yaml:"content"`
	Deadline string `yaml:"deadline_at"`
}

// Demo walks the client's CRUD surface against a live workspace: identify the
// token, list objects, create records from the fixture, attach a note and a
// task, complete the task, then delete everything it created.
type Demo struct {
	cfg    *config.Config
	client *attio.Client
	log    *zap.SugaredLogger
}

// NewDemo builds a demo runtime from config.
func NewDemo(cfg *config.Config, log *zap.SugaredLogger) (*Demo, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config must not be nil")
	}
	client := attio.New(cfg.APIToken,
		attio.WithBaseURL(cfg.BaseURL),
		attio.WithTimeout(cfg.Timeout),
		attio.WithLogger(log),
	)
	return &Demo{cfg: cfg, client: client, log: log}, nil
}

// Run executes the demo steps in order. The first failure aborts the run;
// nothing is retried.
func (d *Demo) Run(ctx context.Context) error {
	fixture, err := LoadFixture(d.cfg.FixtureFile)
	if err != nil {
		return fmt.Errorf("load fixture: %w", err)
	}

	self, err := d.client.IdentifySelf(ctx)
	if err != nil {
		return fmt.Errorf("identify self: %w", err)
	}
	workspace, _ := stringAt(self, "data", "workspace_name")
	d.log.Infow("token identified", "workspace", workspace)

	objects, err := d.client.ListObjects(ctx)
	if err != nil {
		return fmt.Errorf("list objects: %w", err)
	}
	if data, ok := objects["data"].([]any); ok {
		d.log.Infow("objects listed", "count", len(data))
	}

	created := make([]string, 0, len(fixture.Records))
	for i, values := range fixture.Records {
		record, err := d.client.CreateRecord(ctx, fixture.Object, map[string]any{
			"data": map[string]any{"values": values},
		})
		if err != nil {
			return fmt.Errorf("create record %d: %w", i, err)
		}
		recordID, ok := stringAt(record, "data", "id", "record_id")
		if !ok {
			return fmt.Errorf("create record %d: response has no record id", i)
		}
		d.log.Infow("record created", "object", fixture.Object, "record_id", recordID)
		created = append(created, recordID)
	}

	if len(created) > 0 {
		if err := d.annotate(ctx, fixture, created[0]); err != nil {
			return err
		}
	}

	for _, recordID := range created {
		if _, err := d.client.DeleteRecord(ctx, fixture.Object, recordID); err != nil {
			return fmt.Errorf("delete record %s: %w", recordID, err)
		}
		d.log.Infow("record deleted", "object", fixture.Object, "record_id", recordID)
	}

	d.log.Infow("demo finished", "records", len(created))
	return nil
}

// annotate attaches the fixture's note and task to a record, completes the
// task, and removes both again.
func (d *Demo) annotate(ctx context.Context, fixture *Fixture, recordID string) error {
	if fixture.Note != nil {
		note, err := d.client.CreateNote(ctx, map[string]any{
			"data": map[string]any{
				"parent_object":    fixture.Object,
				"parent_record_id": recordID,
				"title":            fixture.Note.Title,
				"format":           "plaintext",
				"content":          fixture.Note.Content,
			},
		})
		if err != nil {
			return fmt.Errorf("create note: %w", err)
		}
		noteID, ok := stringAt(note, "data", "id", "note_id")
		if !ok {
			return fmt.Errorf("create note: response has no note id")
		}
		d.log.Infow("note created", "note_id", noteID)
		if _, err := d.client.DeleteNote(ctx, noteID); err != nil {
			return fmt.Errorf("delete note %s: %w", noteID, err)
		}
	}

	if fixture.Task != nil {
		payload := map[string]any{
			"content":      fixture.Task.Content,
			"format":       "plaintext",
			"is_completed": false,
			"linked_records": []any{
				map[string]any{
					"target_object":    fixture.Object,
					"target_record_id": recordID,
				},
			},
			"assignees": []any{},
		}
		if fixture.Task.Deadline != "" {
			payload["deadline_at"] = fixture.Task.Deadline
		}
		task, err := d.client.CreateTask(ctx, map[string]any{"data": payload})
		if err != nil {
			return fmt.Errorf("create task: %w", err)
		}
		taskID, ok := stringAt(task, "data", "id", "task_id")
		if !ok {
			return fmt.Errorf("create task: response has no task id")
		}
		d.log.Infow("task created", "task_id", taskID)

		if _, err := d.client.UpdateTask(ctx, taskID, map[string]any{
			"data": map[string]any{"is_completed": true},
		}); err != nil {
			return fmt.Errorf("complete task %s: %w", taskID, err)
		}
		if _, err := d.client.DeleteTask(ctx, taskID); err != nil {
			return fmt.Errorf("delete task %s: %w", taskID, err)
		}
	}

	return nil
}

// LoadFixture reads a YAML fixture file. An empty path yields a minimal
// built-in fixture against the people object.
func LoadFixture(path string) (*Fixture, error) {
	if path == "" {
		return defaultFixture(), nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var fx Fixture
	if err := yaml.Unmarshal(raw, &fx); err != nil {
		return nil, fmt.Errorf("decode fixture %s: %w", path, err)
	}
	if fx.Object == "" {
		fx.Object = "people"
	}
	return &fx, nil
}

func defaultFixture() *Fixture {
	return &Fixture{
		Object: "people",
		Records: []map[string]any{
			{"name": []any{map[string]any{
				"first_name": "Demo",
				"last_name":  "Person",
				"full_name":  "Demo Person",
			}}},
		},
		Note: &NoteFixture{Title: "Demo note", Content: "Created by attio-demo."},
		Task: &TaskFixture{Content: "Follow up with Demo Person"},
	}
}

// stringAt walks nested JSON objects by key and returns the string leaf.
func stringAt(m map[string]any, keys ...string) (string, bool) {
	var current any = m
	for _, key := range keys {
		obj, ok := current.(map[string]any)
		if !ok {
			return "", false
		}
		current, ok = obj[key]
		if !ok {
			return "", false
		}
	}
	s, ok := current.(string)
	return s, ok
}
