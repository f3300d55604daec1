package main

import (
	"fmt"
	"os"

	"github.com/podheal/healbatch/serialize"
	"github.com/spf13/cobra"
)

var stateCmd = &cobra.Command{
	Use:   "state <file>",
	Args:  cobra.ExactArgs(1),
	Short: "Pretty-print a serialized ConnectionState",
	RunE:  runState,
}

func runState(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("healbatch: read input: %w", err)
	}
	state, err := serialize.LoadConnectionState(data)
	if err != nil {
		return fmt.Errorf("healbatch: load connection state: %w", err)
	}
	state.Display(os.Stdout)
	return nil
}
