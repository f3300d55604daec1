package main

import (
	"fmt"
	"os"

	"github.com/podheal/healbatch/serialize"
	"github.com/spf13/cobra"
)

var solutionCmd = &cobra.Command{
	Use:   "solution <file>",
	Args:  cobra.ExactArgs(1),
	Short: "Pretty-print a serialized Solution",
	RunE:  runSolution,
}

func runSolution(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("healbatch: read input: %w", err)
	}
	sol, err := serialize.LoadSolution(data)
	if err != nil {
		return fmt.Errorf("healbatch: load solution: %w", err)
	}
	sol.Display(os.Stdout)
	return nil
}
