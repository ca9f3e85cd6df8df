package tasks

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/dohr-michael/tli/internal/storage/docstore"
)

// FileStore keeps the collection in a single JSON file.
type FileStore struct {
	ds *docstore.DocStore
}

var _ Store = (*FileStore)(nil)

// NewFileStore creates a FileStore backed by path.
func NewFileStore(path string) *FileStore {
	return &FileStore{ds: docstore.New(path)}
}

// Path returns the backing document path.
func (fs *FileStore) Path() string { return fs.ds.Path() }

// Load reads the full collection. A missing or blank file is an empty collection.
func (fs *FileStore) Load() ([]*Task, error) {
	var tasks []*Task
	found, err := fs.ds.Read(&tasks)
	if err != nil {
		if errors.Is(err, docstore.ErrMalformed) {
			return nil, &CorruptDataError{Path: fs.Path(), Err: err}
		}
		return nil, &IOError{Op: "read", Path: fs.Path(), Err: err}
	}
	if !found || tasks == nil {
		tasks = []*Task{}
	}
	for i, t := range tasks {
		if t == nil {
			err := fmt.Errorf("%w: null task at index %d", docstore.ErrMalformed, i)
			return nil, &CorruptDataError{Path: fs.Path(), Err: err}
		}
	}

	slog.Debug("tasks loaded", "path", fs.Path(), "count", len(tasks))
	return tasks, nil
}

// Save overwrites the document with the given collection.
func (fs *FileStore) Save(tasks []*Task) error {
	if tasks == nil {
		tasks = []*Task{}
	}
	if err := fs.ds.Write(tasks); err != nil {
		return &IOError{Op: "write", Path: fs.Path(), Err: err}
	}

	slog.Debug("tasks saved", "path", fs.Path(), "count", len(tasks))
	return nil
}

// Add appends t to the collection.
func (fs *FileStore) Add(t *Task) error {
	tasks, err := fs.Load()
	if err != nil {
		return err
	}
	return fs.Save(append(tasks, t))
}

// Remove drops every task with the given ID. The file is only rewritten when
// something was removed.
func (fs *FileStore) Remove(id uuid.UUID) (bool, error) {
	tasks, err := fs.Load()
	if err != nil {
		return false, err
	}

	kept := tasks[:0]
	for _, t := range tasks {
		if t.ID != id {
			kept = append(kept, t)
		}
	}
	if len(kept) == len(tasks) {
		return false, nil
	}

	if err := fs.Save(kept); err != nil {
		return false, err
	}
	return true, nil
}

// Update applies fn to the first task with the given ID and saves. fn runs at
// most once and before the write, so a failed save may leave the edit
// unpersisted.
func (fs *FileStore) Update(id uuid.UUID, fn func(*Task)) (bool, error) {
	tasks, err := fs.Load()
	if err != nil {
		return false, err
	}

	t := Find(tasks, id)
	if t == nil {
		return false, nil
	}
	fn(t)

	if err := fs.Save(tasks); err != nil {
		return false, err
	}
	return true, nil
}
