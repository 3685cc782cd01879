// Package main implements the knapsack CLI: exact solves of plain-text
// instances and reproducible instance generation.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

// version is stamped by the release pipeline via -ldflags.
var version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "knapsack",
		Short: "Exact 0/1 knapsack solving from the command line",
		Long: `knapsack solves 0/1 knapsack instances exactly with branch and bound
and generates reproducible random instances.

Examples:
  # Solve one instance file
  knapsack solve data/ks_4_0

  # Solve from stdin with the cheap bound on a best-first frontier
  cat data/ks_4_0 | knapsack solve --bound capacity --traversal best -

  # Generate a 50-item instance, then solve it
  knapsack gen --items 50 --seed 7 --out inst.txt
  knapsack solve inst.txt`,
		Version:      version,
		SilenceUsage: true,
	}

	root.AddCommand(newSolveCmd())
	root.AddCommand(newGenCmd())

	return root
}
