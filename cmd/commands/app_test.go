package commands

import (
	"bytes"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/dohr-michael/tli/internal/config"
	"github.com/dohr-michael/tli/internal/tasks"
)

// vanishingStore loads a fixed collection but finds nothing on write, as if
// another invocation removed the task in between.
type vanishingStore struct {
	list []*tasks.Task
}

func (s *vanishingStore) Load() ([]*tasks.Task, error) { return s.list, nil }
func (s *vanishingStore) Save([]*tasks.Task) error     { return nil }
func (s *vanishingStore) Add(*tasks.Task) error        { return nil }

func (s *vanishingStore) Remove(uuid.UUID) (bool, error) { return false, nil }

func (s *vanishingStore) Update(uuid.UUID, func(*tasks.Task)) (bool, error) {
	return false, nil
}

func newVanishingApp(out *bytes.Buffer) *app {
	return &app{
		cfg:   config.Default(),
		store: &vanishingStore{list: []*tasks.Task{tasks.New("Buy milk", "", tasks.PriorityLow)}},
		out:   out,
		theme: newTheme(false),
	}
}

func TestTaskVanishesBeforeWrite(t *testing.T) {
	tests := []struct {
		name string
		run  func(a *app, prefix string) error
	}{
		{"complete", (*app).complete},
		{"delete", (*app).delete},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			a := newVanishingApp(&out)
			prefix := a.store.(*vanishingStore).list[0].ShortID(8)

			err := tt.run(a, prefix)
			var nfe *tasks.NotFoundError
			if !errors.As(err, &nfe) {
				t.Fatalf("expected NotFoundError, got %v", err)
			}
			if nfe.Prefix != prefix {
				t.Errorf("Prefix = %q, want %q", nfe.Prefix, prefix)
			}
			if out.Len() != 0 {
				t.Errorf("expected no output, got %q", out.String())
			}
		})
	}
}
