package tasks

import "github.com/google/uuid"

// Store persists the whole task collection as one unit. Every mutating call
// is a full load-mutate-save round trip; there is no locking, so two
// processes writing at once can lose each other's changes.
type Store interface {
	Load() ([]*Task, error)
	Save(tasks []*Task) error
	Add(t *Task) error
	Remove(id uuid.UUID) (bool, error)
	Update(id uuid.UUID, fn func(*Task)) (bool, error)
}
