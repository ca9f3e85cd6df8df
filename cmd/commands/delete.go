package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/dohr-michael/tli/internal/tasks"
)

// NewDeleteCommand returns the delete subcommand.
func NewDeleteCommand() *cli.Command {
	return &cli.Command{
		Name:      "delete",
		Aliases:   []string{"d"},
		Usage:     "Delete a task",
		ArgsUsage: "<id-prefix>",
		Action: func(_ context.Context, cmd *cli.Command) error {
			prefix := cmd.Args().First()
			if prefix == "" {
				return errors.New("usage: tli delete <id-prefix>")
			}
			a, err := newApp(cmd)
			if err != nil {
				return err
			}
			return a.delete(prefix)
		},
	}
}

func (a *app) delete(prefix string) error {
	list, err := a.store.Load()
	if err != nil {
		return err
	}
	id, err := tasks.Resolve(list, prefix)
	if err != nil {
		return err
	}
	title := tasks.Find(list, id).Title

	removed, err := a.store.Remove(id)
	if err != nil {
		return fmt.Errorf("delete task: %w", err)
	}
	if !removed {
		return &tasks.NotFoundError{Prefix: prefix}
	}

	fmt.Fprintf(a.out, "%s Deleted task: %s\n", a.theme.Done("✓"), title)
	return nil
}
