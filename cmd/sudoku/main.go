// Command sudoku is the collaborator-facing driver for the solving
// engine: solve a puzzle file and watch its deduce/guess transcript,
// carve a fresh puzzle at a target difficulty, or run the HTTP service.
package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "sudoku",
	Short: "A deductive sudoku solving engine",
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to a solver config YAML file")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		slog.Error("command failed", "err", err)
		os.Exit(1)
	}
}
