package main

import (
	"fmt"
	"os"

	"github.com/podheal/healbatch/core"
	"github.com/podheal/healbatch/probability"
	"github.com/podheal/healbatch/serialize"
	"github.com/spf13/cobra"
)

var (
	generateKind  string
	generateWeaks int
)

var generateCmd = &cobra.Command{
	Use:   "generate <input-file>",
	Args:  cobra.ExactArgs(1),
	Short: "Synthesize a ConnectionState from a serialized network or pod container",
	Long: `generate loads a serialize-format JSON document and synthesizes a
ConnectionState from it: --kind probability expects a serialized
network.FreezedNetwork and derives weak-link probabilities from its path
sets; --kind random expects a serialized core.PodContainer and samples
weak connections directly.`,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().StringVar(&generateKind, "kind", "probability", "generator kind: probability or random")
	generateCmd.Flags().IntVar(&generateWeaks, "weaks", 10, "random generator: number of weak connections to sample")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger := newLogger(cfg)

	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("healbatch: read input: %w", err)
	}

	var state *core.ConnectionState
	switch generateKind {
	case "probability":
		fn, err := serialize.LoadFreezedNetwork(data)
		if err != nil {
			return fmt.Errorf("healbatch: load freezed network: %w", err)
		}
		model, err := probability.FromNetwork(fn)
		if err != nil {
			return fmt.Errorf("healbatch: derive probabilities: %w", err)
		}
		state = model.Generate()
	case "random":
		pods, err := serialize.LoadPodContainer(data)
		if err != nil {
			return fmt.Errorf("healbatch: load pod container: %w", err)
		}
		state = core.NewConnectionState(pods)
		gen := probability.NewRandomGenerator()
		if err := gen.State(state, generateWeaks); err != nil {
			return fmt.Errorf("healbatch: sample weak connections: %w", err)
		}
	default:
		return fmt.Errorf("healbatch: unknown generator kind %q", generateKind)
	}

	logger.Info("generated connection state", "kind", generateKind, "weak_edges", len(state.Pairs()))

	out, err := serialize.DumpConnectionState(state)
	if err != nil {
		return fmt.Errorf("healbatch: serialize connection state: %w", err)
	}
	fmt.Println(string(out))
	return nil
}
