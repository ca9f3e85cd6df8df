package commands

import (
	"io"
	"log/slog"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/dohr-michael/tli/internal/config"
	"github.com/dohr-michael/tli/internal/tasks"
)

// app is the per-invocation state every handler works from.
type app struct {
	cfg   *config.Config
	store tasks.Store
	out   io.Writer
	theme theme
}

// newApp loads the config named by the root flags and opens the task store.
func newApp(cmd *cli.Command) (*app, error) {
	configPath := cmd.String("config")
	if configPath == "" {
		p, err := config.ConfigPath()
		if err != nil {
			return nil, &tasks.IOError{Op: "locate", Path: "home directory", Err: err}
		}
		configPath = p
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	setupLogging(cmd.Bool("debug"), cfg)

	dataFile, err := cfg.ResolveDataFile(cmd.String("file"))
	if err != nil {
		return nil, &tasks.IOError{Op: "locate", Path: "home directory", Err: err}
	}
	slog.Debug("using task file", "path", dataFile, "config", configPath)

	out := cmd.Root().Writer
	if out == nil {
		out = os.Stdout
	}

	return &app{
		cfg:   cfg,
		store: tasks.NewFileStore(dataFile),
		out:   out,
		theme: newTheme(colorEnabled(cfg.Color, cmd.Bool("no-color"), out)),
	}, nil
}

func setupLogging(debug bool, cfg *config.Config) {
	level := cfg.Level()
	if debug {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}

func (a *app) shortID(t *tasks.Task) string {
	return t.ShortID(a.cfg.ShortIDLength)
}
