package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/knapsack/gen"
	"github.com/katalvlaran/knapsack/ksio"
)

func newGenCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gen [flags]",
		Short: "Generate a reproducible random instance",
		Long: `Gen writes a random instance in the solver's text format. The same
flags always produce the same instance. A zero capacity derives half the
total generated weight.`,
		Args: cobra.NoArgs,
		RunE: runGen,
	}

	defaults := gen.DefaultConfig()
	flags := cmd.Flags()
	flags.Int("items", defaults.Items, "number of items")
	flags.Int64("capacity", defaults.Capacity, "knapsack capacity, 0 derives half the total weight")
	flags.Int64("max-value", defaults.MaxValue, "item values are uniform in [0, max-value]")
	flags.Int64("max-weight", defaults.MaxWeight, "item weights are uniform in [1, max-weight]")
	flags.Int64("seed", defaults.Seed, "RNG seed, 0 selects the fixed default")
	flags.String("out", "-", `output path, "-" for stdout`)

	return cmd
}

func runGen(cmd *cobra.Command, args []string) error {
	flags := cmd.Flags()

	cfg := gen.DefaultConfig()
	cfg.Items, _ = flags.GetInt("items")
	cfg.Capacity, _ = flags.GetInt64("capacity")
	cfg.MaxValue, _ = flags.GetInt64("max-value")
	cfg.MaxWeight, _ = flags.GetInt64("max-weight")
	cfg.Seed, _ = flags.GetInt64("seed")

	items, capacity, err := gen.Random(cfg)
	if err != nil {
		return err
	}

	outPath, _ := flags.GetString("out")
	if outPath == "-" {
		return ksio.WriteInstance(cmd.OutOrStdout(), items, capacity)
	}

	f, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("create %s: %w", outPath, err)
	}
	defer f.Close()

	if err = ksio.WriteInstance(f, items, capacity); err != nil {
		return err
	}
	if err = f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", outPath, err)
	}

	return nil
}
