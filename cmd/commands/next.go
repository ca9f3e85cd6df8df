package commands

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/dohr-michael/tli/internal/tasks"
)

// NewNextCommand returns the next subcommand.
func NewNextCommand() *cli.Command {
	return &cli.Command{
		Name:    "next",
		Aliases: []string{"n"},
		Usage:   "Show the next task to do (most recently added pending task)",
		Action: func(_ context.Context, cmd *cli.Command) error {
			a, err := newApp(cmd)
			if err != nil {
				return err
			}
			return a.next()
		},
	}
}

func (a *app) next() error {
	list, err := a.store.Load()
	if err != nil {
		return err
	}

	t := tasks.Next(list)
	if t == nil {
		fmt.Fprintln(a.out, "🎉 No pending tasks! You're all caught up!")
		fmt.Fprintln(a.out, "Add a new task with 'tli add <title>'")
		return nil
	}

	short := a.shortID(t)
	fmt.Fprintln(a.out, a.theme.Header("🎯 Next task to do:"))
	fmt.Fprintf(a.out, "  [%s] %s (%s)\n", a.theme.ID(short), t.Title, a.theme.Priority(t.Priority))
	if t.Description != "" {
		fmt.Fprintf(a.out, "  Description: %s\n", t.Description)
	}
	fmt.Fprintf(a.out, "  Created: %s\n", t.CreatedAt.UTC().Format(shortTimeLayout))
	fmt.Fprintf(a.out, "\nRun 'tli complete %s' when done!\n", short)
	return nil
}
