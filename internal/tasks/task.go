// Package tasks holds the task record, its persistence and the lookups the
// commands run against a loaded collection.
package tasks

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Task is a single to-do item.
type Task struct {
	ID          uuid.UUID  `json:"id" yaml:"id"`
	Title       string     `json:"title" yaml:"title"`
	Description string     `json:"description,omitempty" yaml:"description,omitempty"`
	Completed   bool       `json:"completed" yaml:"completed"`
	CreatedAt   time.Time  `json:"created_at" yaml:"created_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty" yaml:"completed_at,omitempty"`
	Priority    Priority   `json:"priority" yaml:"priority"`
}

// UnmarshalJSON requires id, title, completed, created_at and priority, and
// rejects a completion flag that disagrees with completed_at.
func (t *Task) UnmarshalJSON(b []byte) error {
	var rec struct {
		ID          *uuid.UUID `json:"id"`
		Title       *string    `json:"title"`
		Description string     `json:"description"`
		Completed   *bool      `json:"completed"`
		CreatedAt   *time.Time `json:"created_at"`
		CompletedAt *time.Time `json:"completed_at"`
		Priority    *Priority  `json:"priority"`
	}
	if err := json.Unmarshal(b, &rec); err != nil {
		return err
	}

	switch {
	case rec.ID == nil:
		return missingField("id")
	case rec.Title == nil:
		return missingField("title")
	case rec.Completed == nil:
		return missingField("completed")
	case rec.CreatedAt == nil:
		return missingField("created_at")
	case rec.Priority == nil:
		return missingField("priority")
	}
	if *rec.ID == uuid.Nil {
		return errors.New("task id is the nil UUID")
	}
	if rec.CreatedAt.IsZero() {
		return fmt.Errorf("task %s: zero created_at", rec.ID)
	}
	if *rec.Completed != (rec.CompletedAt != nil) {
		return fmt.Errorf("task %s: completed=%t disagrees with completed_at", rec.ID, *rec.Completed)
	}

	*t = Task{
		ID:          *rec.ID,
		Title:       *rec.Title,
		Description: rec.Description,
		Completed:   *rec.Completed,
		CreatedAt:   *rec.CreatedAt,
		CompletedAt: rec.CompletedAt,
		Priority:    *rec.Priority,
	}
	return nil
}

func missingField(name string) error {
	return fmt.Errorf("task record missing %q", name)
}

// now is swapped in tests that need deterministic timestamps.
var now = func() time.Time { return time.Now().UTC() }

// New creates a pending task with a fresh random identity.
func New(title, description string, priority Priority) *Task {
	return &Task{
		ID:          uuid.New(),
		Title:       title,
		Description: description,
		CreatedAt:   now(),
		Priority:    priority,
	}
}

// Complete marks the task done and stamps the completion time.
// Callers check Completed first when re-stamping is unwanted.
func (t *Task) Complete() {
	ts := now()
	t.Completed = true
	t.CompletedAt = &ts
}

// Uncomplete reverts the task to pending.
func (t *Task) Uncomplete() {
	t.Completed = false
	t.CompletedAt = nil
}

// ShortID returns the first n characters of the canonical ID.
func (t *Task) ShortID(n int) string {
	s := t.ID.String()
	if n <= 0 || n > len(s) {
		return s
	}
	return s[:n]
}
