package commands

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/dohr-michael/tli/internal/tasks"
)

// NewListCommand returns the list subcommand.
func NewListCommand() *cli.Command {
	return &cli.Command{
		Name:    "list",
		Aliases: []string{"l"},
		Usage:   "List tasks",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "completed",
				Aliases: []string{"c"},
				Usage:   "Show only completed tasks",
			},
			&cli.BoolFlag{
				Name:    "pending",
				Aliases: []string{"p"},
				Usage:   "Show only pending tasks",
			},
			&cli.StringFlag{
				Name:    "match",
				Aliases: []string{"m"},
				Usage:   "Only show tasks whose title matches a glob, e.g. 'Buy *'",
			},
		},
		Action: runList,
	}
}

func runList(_ context.Context, cmd *cli.Command) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	return a.list(tasks.ListFilter{
		Completed: cmd.Bool("completed"),
		Pending:   cmd.Bool("pending"),
		Match:     cmd.String("match"),
	})
}

func (a *app) list(filter tasks.ListFilter) error {
	all, err := a.store.Load()
	if err != nil {
		return fmt.Errorf("list tasks: %w", err)
	}

	if len(all) == 0 {
		fmt.Fprintln(a.out, "No tasks found. Add a task with 'tli add <title>'")
		return nil
	}

	shown, err := filter.Apply(all)
	if err != nil {
		return err
	}

	if len(shown) == 0 {
		switch {
		case filter.Completed && !filter.Pending:
			fmt.Fprintln(a.out, "No completed tasks found.")
		case filter.Pending && !filter.Completed:
			fmt.Fprintln(a.out, "No pending tasks found.")
		default:
			fmt.Fprintf(a.out, "No tasks match '%s'.\n", filter.Match)
		}
		return nil
	}

	fmt.Fprintln(a.out, a.theme.Header("Tasks:"))
	for _, t := range shown {
		status := a.theme.Pending("○")
		if t.Completed {
			status = a.theme.Done("✓")
		}
		fmt.Fprintf(a.out, "%s [%s] %s (%s)\n", status, a.theme.ID(a.shortID(t)), t.Title, a.theme.Priority(t.Priority))

		if t.Description != "" {
			fmt.Fprintf(a.out, "    %s\n", t.Description)
		}
		if t.Completed && t.CompletedAt != nil {
			fmt.Fprintf(a.out, "    %s\n", a.theme.Muted("Completed: "+t.CompletedAt.UTC().Format(shortTimeLayout)))
		}
	}

	pending, completed := tasks.Count(all)
	fmt.Fprintf(a.out, "\nSummary: %d pending, %d completed\n", pending, completed)
	return nil
}
