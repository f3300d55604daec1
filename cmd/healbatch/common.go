package main

import (
	"fmt"

	"github.com/podheal/healbatch/internal/config"
	"github.com/podheal/healbatch/internal/obslog"
	"github.com/podheal/healbatch/ipmodel"
)

// loadConfig resolves config.Config from cfgFile (./healbatch.yaml when the
// flag is unset), then applies the command-line overrides --verbose and
// --log-format on top, mirroring chaos-runner's "load config, then override
// from flags" sequence in run.go's runChaosTest.
func loadConfig() (*config.Config, error) {
	path := cfgFile
	if path == "" {
		path = "healbatch.yaml"
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if logFormat != "" {
		cfg.Logging.Format = logFormat
	}
	if verbose {
		cfg.Logging.Level = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// newLogger builds an obslog.Logger from the resolved config.
func newLogger(cfg *config.Config) *obslog.Logger {
	return obslog.New(obslog.Config{
		Level:  obslog.Level(cfg.Logging.Level),
		Format: obslog.Format(cfg.Logging.Format),
	})
}

// solverFromConfig selects the ipmodel.Solver implementation named by
// cfg.Solver.Kind (itself resolvable from the HEALBATCH_SOLVER env var).
func solverFromConfig(cfg *config.Config) (ipmodel.Solver, error) {
	switch cfg.Solver.Kind {
	case "greedy":
		return ipmodel.NewGreedySolver(), nil
	case "exact", "":
		return ipmodel.NewExactSolver(), nil
	default:
		return nil, fmt.Errorf("healbatch: unknown solver kind %q", cfg.Solver.Kind)
	}
}
