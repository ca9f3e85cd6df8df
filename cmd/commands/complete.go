package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/dohr-michael/tli/internal/tasks"
)

// NewCompleteCommand returns the complete subcommand.
func NewCompleteCommand() *cli.Command {
	return &cli.Command{
		Name:      "complete",
		Aliases:   []string{"c"},
		Usage:     "Mark a task as done",
		ArgsUsage: "<id-prefix>",
		Action: func(_ context.Context, cmd *cli.Command) error {
			prefix := cmd.Args().First()
			if prefix == "" {
				return errors.New("usage: tli complete <id-prefix>")
			}
			a, err := newApp(cmd)
			if err != nil {
				return err
			}
			return a.complete(prefix)
		},
	}
}

func (a *app) complete(prefix string) error {
	list, err := a.store.Load()
	if err != nil {
		return err
	}
	id, err := tasks.Resolve(list, prefix)
	if err != nil {
		return err
	}

	var (
		title       string
		wasComplete bool
	)
	found, err := a.store.Update(id, func(t *tasks.Task) {
		title = t.Title
		if t.Completed {
			wasComplete = true
			return
		}
		t.Complete()
	})
	if err != nil {
		return fmt.Errorf("complete task: %w", err)
	}
	if !found {
		return &tasks.NotFoundError{Prefix: prefix}
	}

	if wasComplete {
		fmt.Fprintf(a.out, "Task '%s' is already completed\n", title)
		return nil
	}
	fmt.Fprintf(a.out, "%s Completed task: %s\n", a.theme.Done("✓"), title)
	return nil
}
