package main

import (
	"fmt"
	"os"

	"github.com/podheal/healbatch/core"
	"github.com/podheal/healbatch/internal/timing"
	"github.com/podheal/healbatch/scenario"
	"github.com/podheal/healbatch/serialize"
	"github.com/spf13/cobra"
)

var solveCmd = &cobra.Command{
	Use:   "solve <state-file>",
	Args:  cobra.ExactArgs(1),
	Short: "Plan the fewest redundancy-respecting restart batches covering a ConnectionState",
	RunE:  runSolve,
}

func runSolve(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger := newLogger(cfg)

	solver, err := solverFromConfig(cfg)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("healbatch: read input: %w", err)
	}
	state, err := serialize.LoadConnectionState(data)
	if err != nil {
		return fmt.Errorf("healbatch: load connection state: %w", err)
	}

	var sol core.Solution
	status, err := timing.Run(func() error {
		var planErr error
		sol, planErr = scenario.SubmitContext(cmd.Context(), state, solver)
		return planErr
	})
	if err != nil {
		return fmt.Errorf("healbatch: plan: %w", err)
	}
	sol.Status = status

	ev := sol.Evaluated()
	logger.Info("planned healing batches",
		"wall_time", status.WallTime.String(),
		"peak_rss_kib", status.PeakRSSKiB,
		"batches", ev.Batches,
		"covered_edges", ev.CoveredEdges,
		"majors", ev.Majors,
	)

	out, err := serialize.DumpSolution(sol)
	if err != nil {
		return fmt.Errorf("healbatch: serialize solution: %w", err)
	}
	fmt.Println(string(out))
	return nil
}
