// Package config locates the per-user tli directory and loads the optional
// JSONC settings file.
package config

import (
	"fmt"
	"log/slog"

	"github.com/dohr-michael/tli/internal/tasks"
)

// Color modes.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

const (
	defaultShortIDLength = 8
	minShortIDLength     = 4
	maxShortIDLength     = 36
)

// Config holds user settings. Every field is optional in the file.
type Config struct {
	DataFile        string `json:"data_file"`        // default: ~/.tli/tasks.json
	DefaultPriority string `json:"default_priority"` // low | medium | high
	ShortIDLength   int    `json:"short_id_length"`  // characters of the ID shown in listings
	Color           string `json:"color"`            // auto | always | never
	LogLevel        string `json:"log_level"`        // debug | info | warn | error
}

// Default returns the settings used when no config file exists.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

// Priority returns the parsed default priority.
func (c *Config) Priority() tasks.Priority {
	p, err := tasks.ParsePriority(c.DefaultPriority)
	if err != nil {
		return tasks.PriorityMedium
	}
	return p
}

// Level returns the slog level named by LogLevel, warn when unset.
func (c *Config) Level() slog.Level {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelWarn
	}
	return lvl
}

func (c *Config) validate() error {
	if _, err := tasks.ParsePriority(c.DefaultPriority); err != nil {
		return fmt.Errorf("default_priority: %w", err)
	}
	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("color: unknown mode %q (want auto, always or never)", c.Color)
	}
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return fmt.Errorf("log_level: %w", err)
	}
	return nil
}
