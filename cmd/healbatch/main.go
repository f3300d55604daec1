// Command healbatch plans minimum-cost, redundancy-respecting restart
// batches that heal every weak pod-to-pod connection in a clustered
// service, grounded on jhkimqd-chaos-utils/cmd/chaos-runner's cobra
// root+subcommand layout (persistent flags resolved once in main.go,
// subcommands defined one-per-file, config loaded before each subcommand's
// body runs).
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

var (
	cfgFile   string
	verbose   bool
	logFormat string
	version   = "dev"
)

var rootCmd = &cobra.Command{
	Use:   "healbatch",
	Short: "Plan minimum-cost healing restart batches for a clustered service",
	Long: `healbatch synthesizes or loads weak pod-to-pod connection state from a
physical network model and plans the fewest redundancy-respecting restart
batches that cover every weak connection.`,
	Version: version,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./healbatch.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose (debug) logging")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "log format: text or json (overrides config)")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(solveCmd)
	rootCmd.AddCommand(stateCmd)
	rootCmd.AddCommand(solutionCmd)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
