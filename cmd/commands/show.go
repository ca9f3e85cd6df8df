package commands

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/dohr-michael/tli/internal/tasks"
)

const (
	shortTimeLayout = "2006-01-02 15:04"
	longTimeLayout  = "2006-01-02 15:04:05 UTC"
)

// NewShowCommand returns the show subcommand.
func NewShowCommand() *cli.Command {
	return &cli.Command{
		Name:      "show",
		Aliases:   []string{"s"},
		Usage:     "Show task details",
		ArgsUsage: "<id-prefix>",
		Action: func(_ context.Context, cmd *cli.Command) error {
			prefix := cmd.Args().First()
			if prefix == "" {
				return errors.New("usage: tli show <id-prefix>")
			}
			a, err := newApp(cmd)
			if err != nil {
				return err
			}
			return a.show(prefix)
		},
	}
}

func (a *app) show(prefix string) error {
	list, err := a.store.Load()
	if err != nil {
		return err
	}
	id, err := tasks.Resolve(list, prefix)
	if err != nil {
		return err
	}
	t := tasks.Find(list, id)

	fmt.Fprintln(a.out, a.theme.Header("Task Details:"))
	fmt.Fprintf(a.out, "  ID: %s\n", a.theme.ID(t.ID.String()))
	fmt.Fprintf(a.out, "  Title: %s\n", t.Title)
	if t.Description != "" {
		desc := a.theme.Markdown(t.Description)
		if strings.Contains(desc, "\n") {
			fmt.Fprintf(a.out, "  Description:\n%s\n", desc)
		} else {
			fmt.Fprintf(a.out, "  Description: %s\n", desc)
		}
	}
	fmt.Fprintf(a.out, "  Priority: %s\n", a.theme.Priority(t.Priority))

	status := a.theme.Pending("Pending")
	if t.Completed {
		status = a.theme.Done("Completed")
	}
	fmt.Fprintf(a.out, "  Status: %s\n", status)
	fmt.Fprintf(a.out, "  Created: %s\n", t.CreatedAt.UTC().Format(longTimeLayout))
	if t.CompletedAt != nil {
		fmt.Fprintf(a.out, "  Completed: %s\n", t.CompletedAt.UTC().Format(longTimeLayout))
	}
	return nil
}
