package tasks

import (
	"strings"

	"github.com/google/uuid"
)

// Resolve returns the ID of the only task whose canonical ID starts with
// prefix. The match is case-sensitive.
func Resolve(tasks []*Task, prefix string) (uuid.UUID, error) {
	var (
		match uuid.UUID
		count int
	)
	for _, t := range tasks {
		if strings.HasPrefix(t.ID.String(), prefix) {
			match = t.ID
			count++
		}
	}

	switch count {
	case 0:
		return uuid.Nil, &NotFoundError{Prefix: prefix}
	case 1:
		return match, nil
	default:
		return uuid.Nil, &AmbiguousError{Prefix: prefix, Count: count}
	}
}

// Find returns the first task with the given ID, or nil.
func Find(tasks []*Task, id uuid.UUID) *Task {
	for _, t := range tasks {
		if t.ID == id {
			return t
		}
	}
	return nil
}
