// Package docstore reads and writes a single JSON document that is always
// replaced as a whole.
package docstore

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrMalformed marks a document that exists but does not decode.
var ErrMalformed = errors.New("malformed document")

// DocStore is bound to one file path.
type DocStore struct {
	path string
}

// New creates a DocStore for path. Nothing is touched on disk.
func New(path string) *DocStore {
	return &DocStore{path: path}
}

// Path returns the backing file path.
func (ds *DocStore) Path() string { return ds.path }

// Read decodes the document into out. It reports false, with out untouched,
// when the file is missing or holds only whitespace.
func (ds *DocStore) Read(out any) (bool, error) {
	data, err := os.ReadFile(ds.path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("read document: %w", err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return false, nil
	}

	if err := json.Unmarshal(data, out); err != nil {
		return false, fmt.Errorf("%w: %w", ErrMalformed, err)
	}
	return true, nil
}

// Write replaces the document with the indented JSON encoding of v using a
// temp file + rename, so a failed write leaves the previous content in place.
func (ds *DocStore) Write(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal document: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(ds.path), 0o755); err != nil {
		return fmt.Errorf("create document dir: %w", err)
	}

	tmp := ds.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write document tmp: %w", err)
	}

	if err := os.Rename(tmp, ds.path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("rename document: %w", err)
	}

	return nil
}
