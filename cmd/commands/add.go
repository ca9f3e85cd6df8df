package commands

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/dohr-michael/tli/internal/tasks"
)

// NewAddCommand returns the add subcommand.
func NewAddCommand() *cli.Command {
	return &cli.Command{
		Name:      "add",
		Aliases:   []string{"a"},
		Usage:     "Add a new task",
		ArgsUsage: "<title>",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "description",
				Aliases: []string{"d"},
				Usage:   "Task description",
			},
			&cli.StringFlag{
				Name:    "priority",
				Aliases: []string{"p"},
				Usage:   "Task priority (low, medium, high)",
			},
		},
		Action: runAdd,
	}
}

func runAdd(_ context.Context, cmd *cli.Command) error {
	title := strings.Join(cmd.Args().Slice(), " ")
	if strings.TrimSpace(title) == "" {
		return errors.New("usage: tli add <title>")
	}

	a, err := newApp(cmd)
	if err != nil {
		return err
	}

	priority := a.cfg.Priority()
	if cmd.IsSet("priority") {
		if priority, err = tasks.ParsePriority(cmd.String("priority")); err != nil {
			return err
		}
	}

	return a.add(title, cmd.String("description"), priority)
}

func (a *app) add(title, description string, priority tasks.Priority) error {
	t := tasks.New(title, description, priority)
	if err := a.store.Add(t); err != nil {
		return fmt.Errorf("add task: %w", err)
	}

	fmt.Fprintf(a.out, "%s Task added: %s (%s)\n", a.theme.Done("✓"), t.Title, a.theme.ID(a.shortID(t)))
	if t.Description != "" {
		fmt.Fprintf(a.out, "  Description: %s\n", t.Description)
	}
	fmt.Fprintf(a.out, "  Priority: %s\n", a.theme.Priority(t.Priority))
	return nil
}
