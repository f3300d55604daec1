// Package config loads healbatch's YAML-backed configuration, grounded on
// jhkimqd-chaos-utils/pkg/config's nested-struct-plus-yaml-tags shape and
// its Load/Save/Validate entry points, scoped down to the settings this
// program actually has (solver kind, logging) rather than chaos-utils' own
// Kurtosis/Docker/Prometheus surface.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is healbatch's top-level configuration.
type Config struct {
	Solver  SolverConfig  `yaml:"solver"`
	Logging LoggingConfig `yaml:"logging"`
}

// SolverConfig selects which ipmodel.Solver implementation the CLI's solve
// command uses.
type SolverConfig struct {
	// Kind is "exact" or "greedy". Overridden by the HEALBATCH_SOLVER
	// environment variable when set.
	Kind string `yaml:"kind"`
}

// LoggingConfig controls internal/obslog's output.
type LoggingConfig struct {
	// Level is "debug", "info", "warn", or "error". Overridden by
	// HEALBATCH_LOG_LEVEL.
	Level string `yaml:"level"`
	// Format is "text" or "json". Overridden by HEALBATCH_LOG_FORMAT.
	Format string `yaml:"format"`
}

// Default returns healbatch's default configuration: the exact solver,
// text-formatted info logging.
func Default() *Config {
	return &Config{
		Solver:  SolverConfig{Kind: "exact"},
		Logging: LoggingConfig{Level: "info", Format: "text"},
	}
}

// Load reads configuration from a YAML file at path, starting from
// Default() and overlaying whatever the file sets. A missing path is not an
// error: Load returns the defaults unchanged, mirroring chaos-runner's
// "no config file yet" bootstrap case. Environment variables
// HEALBATCH_SOLVER, HEALBATCH_LOG_LEVEL, and HEALBATCH_LOG_FORMAT, when set,
// take priority over both the file and the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			data, err := os.ReadFile(path)
			if err != nil {
				return nil, fmt.Errorf("config: read %s: %w", path, err)
			}
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("config: parse %s: %w", path, err)
			}
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("config: stat %s: %w", path, err)
		}
	}

	if v := os.Getenv("HEALBATCH_SOLVER"); v != "" {
		cfg.Solver.Kind = v
	}
	if v := os.Getenv("HEALBATCH_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv("HEALBATCH_LOG_FORMAT"); v != "" {
		cfg.Logging.Format = v
	}

	return cfg, nil
}

// Validate checks the resolved configuration for values the rest of the
// program cannot recover from.
func (c *Config) Validate() error {
	switch c.Solver.Kind {
	case "exact", "greedy":
	default:
		return fmt.Errorf("config: solver.kind must be \"exact\" or \"greedy\", got %q", c.Solver.Kind)
	}
	switch c.Logging.Format {
	case "text", "json":
	default:
		return fmt.Errorf("config: logging.format must be \"text\" or \"json\", got %q", c.Logging.Format)
	}
	return nil
}
