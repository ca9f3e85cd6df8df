package commands

import (
	"github.com/urfave/cli/v3"
)

const version = "0.1.0"

// NewRootCommand returns the top-level CLI command.
func NewRootCommand() *cli.Command {
	return &cli.Command{
		Name:    "tli",
		Usage:   "Task List Interface - a small personal task tracker",
		Version: version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "config",
				Usage: "Path to config file (default ~/.tli/config.jsonc)",
			},
			&cli.StringFlag{
				Name:  "file",
				Usage: "Path to the task file, overrides data_file from the config",
			},
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "Enable debug logging",
			},
			&cli.BoolFlag{
				Name:  "no-color",
				Usage: "Disable coloured output",
			},
		},
		Commands: []*cli.Command{
			NewAddCommand(),
			NewListCommand(),
			NewCompleteCommand(),
			NewDeleteCommand(),
			NewShowCommand(),
			NewNextCommand(),
			NewExportCommand(),
		},
	}
}
