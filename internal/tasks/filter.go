package tasks

import (
	"fmt"

	"github.com/bmatcuk/doublestar/v4"
)

// ListFilter selects tasks for listing. Setting both Completed and Pending
// shows everything, the same as setting neither.
type ListFilter struct {
	Completed bool
	Pending   bool
	Match     string // optional glob on the title
}

// Apply returns the matching tasks in collection order.
func (f ListFilter) Apply(tasks []*Task) ([]*Task, error) {
	if f.Match != "" && !doublestar.ValidatePattern(f.Match) {
		return nil, fmt.Errorf("invalid match pattern %q: %w", f.Match, doublestar.ErrBadPattern)
	}

	out := make([]*Task, 0, len(tasks))
	for _, t := range tasks {
		if !f.keepStatus(t) {
			continue
		}
		if f.Match != "" {
			ok, err := doublestar.Match(f.Match, t.Title)
			if err != nil {
				return nil, fmt.Errorf("match %q: %w", f.Match, err)
			}
			if !ok {
				continue
			}
		}
		out = append(out, t)
	}
	return out, nil
}

func (f ListFilter) keepStatus(t *Task) bool {
	switch {
	case f.Completed && f.Pending:
		return true
	case f.Completed:
		return t.Completed
	case f.Pending:
		return !t.Completed
	default:
		return true
	}
}

// Next picks the most recently created pending task. Ties keep the first one
// seen. Priority is not considered.
func Next(tasks []*Task) *Task {
	var next *Task
	for _, t := range tasks {
		if t.Completed {
			continue
		}
		if next == nil || t.CreatedAt.After(next.CreatedAt) {
			next = t
		}
	}
	return next
}

// Count returns the number of pending and completed tasks.
func Count(tasks []*Task) (pending, completed int) {
	for _, t := range tasks {
		if t.Completed {
			completed++
		} else {
			pending++
		}
	}
	return pending, completed
}
