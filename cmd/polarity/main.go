// Command polarity runs a single Flache–Macy caveman-model simulation and
// emits one JSON record (metadata + opinion history + polarization series)
// for downstream analysis tooling. Sweeping parameter grids and
// aggregating across trials is deliberately left to external
// orchestration; this binary is the producer of one run's record.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"
)

var version = "0.1.0-dev"

func main() {
	rootCmd := &cobra.Command{
		Use:   "polarity",
		Short: "Opinion-dynamics simulation of cultural polarization",
		Long: `polarity simulates the Flache & Macy caveman model of cultural
polarization: clustered cliques of agents exchange K-dimensional opinions
under a weighted bounded-confidence rule, optionally rewired with random
long-range ties, and the run's polarization is measured as the variance
of pairwise opinion distances.`,
	}

	// Global flags
	rootCmd.PersistentFlags().String("log-level", "info", "Log level (info|debug)")

	rootCmd.AddCommand(
		newRunCmd(),
		newVersionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("polarity version %s\n", version)
		},
	}
}

// newLogger builds the stderr logger used across subcommands.
func newLogger(cmd *cobra.Command) *slog.Logger {
	level := slog.LevelInfo
	if s, _ := cmd.Flags().GetString("log-level"); s == "debug" {
		level = slog.LevelDebug
	}
	return slog.New(tint.NewHandler(os.Stderr, &tint.Options{Level: level}))
}
