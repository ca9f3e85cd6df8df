package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/tailscale/hujson"
)

// Load reads a JSONC config file (comments and trailing commas allowed),
// applies defaults and validates it. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	std, err := hujson.Standardize(data)
	if err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(std, &cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	applyDefaults(&cfg)
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return &cfg, nil
}

// applyDefaults fills in zero-value fields with sensible defaults.
func applyDefaults(cfg *Config) {
	if cfg.DefaultPriority == "" {
		cfg.DefaultPriority = "medium"
	}
	if cfg.ShortIDLength == 0 {
		cfg.ShortIDLength = defaultShortIDLength
	}
	if cfg.ShortIDLength < minShortIDLength {
		cfg.ShortIDLength = minShortIDLength
	}
	if cfg.ShortIDLength > maxShortIDLength {
		cfg.ShortIDLength = maxShortIDLength
	}
	if cfg.Color == "" {
		cfg.Color = ColorAuto
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "warn"
	}
}

// ResolveDataFile returns the task document path: the explicit override if
// set, then data_file from the config, then ~/.tli/tasks.json.
func (c *Config) ResolveDataFile(override string) (string, error) {
	switch {
	case override != "":
		return ExpandHome(override)
	case c.DataFile != "":
		return ExpandHome(c.DataFile)
	default:
		return DefaultDataFile()
	}
}
