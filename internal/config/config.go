// config is a package that loads the demo driver configuration from a yaml
// or json file, chosen by extension.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the resolved demo configuration, durations already parsed.
type Config struct {
	Workers      int
	Items        int
	ProcessDelay time.Duration
	PauseAfter   int
	PauseFor     time.Duration
	LogLevel     string
}

// fileConfig mirrors Config as it appears on disk: durations are strings in
// time.ParseDuration syntax.  Omitted fields keep their default.
type fileConfig struct {
	Workers      int    `yaml:"workers" json:"workers"`
	Items        int    `yaml:"items" json:"items"`
	ProcessDelay string `yaml:"process_delay" json:"process_delay"`
	PauseAfter   int    `yaml:"pause_after" json:"pause_after"`
	PauseFor     string `yaml:"pause_for" json:"pause_for"`
	LogLevel     string `yaml:"log_level" json:"log_level"`
}

// Default returns the configuration the demo runs with when no file is
// given.
func Default() Config {
	return Config{
		Workers:      3,
		Items:        30,
		ProcessDelay: 50 * time.Millisecond,
		PauseAfter:   20,
		PauseFor:     2 * time.Second,
		LogLevel:     "info",
	}
}

// Load reads the file at path and resolves it over the defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config file: %w", err)
	}

	var fc fileConfig
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &fc); err != nil {
			return cfg, fmt.Errorf("failed to parse YAML: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(data, &fc); err != nil {
			return cfg, fmt.Errorf("failed to parse JSON: %w", err)
		}
	default:
		return cfg, fmt.Errorf("unsupported config format: %s", ext)
	}

	if fc.Workers > 0 {
		cfg.Workers = fc.Workers
	}
	if fc.Items > 0 {
		cfg.Items = fc.Items
	}
	if fc.ProcessDelay != "" {
		d, err := time.ParseDuration(fc.ProcessDelay)
		if err != nil {
			return cfg, fmt.Errorf("invalid process_delay: %w", err)
		}
		cfg.ProcessDelay = d
	}
	if fc.PauseAfter > 0 {
		cfg.PauseAfter = fc.PauseAfter
	}
	if fc.PauseFor != "" {
		d, err := time.ParseDuration(fc.PauseFor)
		if err != nil {
			return cfg, fmt.Errorf("invalid pause_for: %w", err)
		}
		cfg.PauseFor = d
	}
	if fc.LogLevel != "" {
		cfg.LogLevel = fc.LogLevel
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks the configuration for values the demo cannot run with.
func (c Config) Validate() error {
	if c.Workers < 1 {
		return fmt.Errorf("workers must be at least 1")
	}
	if c.Items < 1 {
		return fmt.Errorf("items must be at least 1")
	}
	if c.ProcessDelay < 0 {
		return fmt.Errorf("process_delay must be non-negative")
	}
	if c.PauseFor < 0 {
		return fmt.Errorf("pause_for must be non-negative")
	}
	if c.PauseAfter < 0 {
		return fmt.Errorf("pause_after must be non-negative")
	}
	return nil
}
