package docstore

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

type doc struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func TestReadMissing(t *testing.T) {
	ds := New(filepath.Join(t.TempDir(), "missing.json"))

	var d doc
	found, err := ds.Read(&d)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if found {
		t.Fatal("expected found=false for missing file")
	}
}

func TestReadBlank(t *testing.T) {
	path := filepath.Join(t.TempDir(), "blank.json")
	if err := os.WriteFile(path, []byte("  \n\t\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	var d doc
	found, err := New(path).Read(&d)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if found {
		t.Fatal("expected found=false for whitespace-only file")
	}
}

func TestReadMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}

	var d doc
	_, err := New(path).Read(&d)
	if !errors.Is(err, ErrMalformed) {
		t.Fatalf("expected ErrMalformed, got %v", err)
	}
}

func TestWriteRead(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "doc.json")
	ds := New(path)

	if err := ds.Write(doc{Name: "a", Count: 2}); err != nil {
		t.Fatalf("Write: %v", err)
	}

	var got doc
	found, err := ds.Read(&got)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if !found {
		t.Fatal("expected found=true after write")
	}
	if got.Name != "a" || got.Count != 2 {
		t.Errorf("got %+v", got)
	}

	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Errorf("expected tmp file to be gone, stat err = %v", err)
	}
}

func TestWriteIsIndented(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.json")
	if err := New(path).Write(doc{Name: "x"}); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	want := "{\n  \"name\": \"x\",\n  \"count\": 0\n}"
	if string(data) != want {
		t.Errorf("content = %q, want %q", data, want)
	}
}

func TestWriteUnavailablePath(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	if err := os.WriteFile(blocker, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	// Parent is a regular file, so the directory cannot be created.
	err := New(filepath.Join(blocker, "doc.json")).Write(doc{})
	if err == nil {
		t.Fatal("expected error writing under a regular file")
	}
}
