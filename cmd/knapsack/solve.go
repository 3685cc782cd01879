package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/knapsack/bnb"
	"github.com/katalvlaran/knapsack/ksio"
)

func newSolveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "solve [flags] <instance>...",
		Short: "Solve knapsack instances exactly",
		Long: `Solve reads one or more plain-text instances ("n capacity" header, then
n "value weight" lines), solves each exactly with branch and bound, and
prints one result per instance to stdout in argument order. Diagnostics
go to stderr. Pass "-" to read a single instance from stdin.`,
		Args: cobra.MinimumNArgs(1),
		RunE: runSolve,
	}

	flags := cmd.Flags()
	flags.String("bound", "integrality", "bounding strategy: integrality or capacity")
	flags.String("traversal", "dfs", "frontier policy: dfs or best")
	flags.Int("parallel", 1, "number of instances solved concurrently")
	flags.String("timeout", "0s", "per-instance time limit, 0s for none")
	flags.String("log-level", "info", "diagnostics level: debug, info, warn or error")
	flags.String("log-format", "console", "diagnostics encoding: console or json")
	flags.String("config", "", "path to a YAML config file")

	return cmd
}

func runSolve(cmd *cobra.Command, args []string) error {
	flags := cmd.Flags()
	configPath, _ := flags.GetString("config")

	cfg, err := loadSettings(flags, configPath)
	if err != nil {
		return err
	}

	// Stdin is a single stream; it cannot back two instances.
	var stdinArgs int
	for _, path := range args {
		if path == "-" {
			stdinArgs++
		}
	}
	if stdinArgs > 1 {
		return fmt.Errorf(`"-" (stdin) may appear at most once, got %d`, stdinArgs)
	}

	logger := newLogger(cfg.LogLevel, cfg.LogFormat)
	defer func() { _ = logger.Sync() }()

	logger.Debug("configuration resolved",
		zap.Stringer("bound", cfg.Bound),
		zap.Stringer("traversal", cfg.Traversal),
		zap.Int("parallel", cfg.Parallel),
		zap.Duration("timeout", cfg.Timeout),
	)

	// Solve the batch; outputs are collected per argument slot so stdout
	// stays in argument order however the goroutines interleave.
	outputs := make([]string, len(args))
	g, ctx := errgroup.WithContext(cmd.Context())
	g.SetLimit(cfg.Parallel)

	for i, path := range args {
		// go 1.21 scoping: the goroutine must capture per-iteration copies,
		// not the shared loop variables.
		i, path := i, path
		g.Go(func() error {
			name := path
			if path == "-" {
				name = "stdin"
			}

			var (
				items    []bnb.Item
				capacity int64
				errParse error
			)
			if path == "-" {
				items, capacity, errParse = ksio.ParseInstance(cmd.InOrStdin())
			} else {
				items, capacity, errParse = ksio.ParseInstanceFile(path)
			}
			if errParse != nil {
				return fmt.Errorf("%s: %w", name, errParse)
			}

			runCtx := ctx
			if cfg.Timeout > 0 {
				var cancel context.CancelFunc
				runCtx, cancel = context.WithTimeout(ctx, cfg.Timeout)
				defer cancel()
			}

			opts := bnb.Options{
				BoundAlgo: cfg.Bound,
				Traversal: cfg.Traversal,
				Ctx:       runCtx,
			}

			start := time.Now()
			res, errSolve := bnb.Solve(items, capacity, opts)
			if errSolve != nil {
				return fmt.Errorf("%s: %w", name, errSolve)
			}

			logger.Info("instance solved",
				zap.String("instance", name),
				zap.Int("items", len(items)),
				zap.Int64("capacity", capacity),
				zap.Int64("value", res.Value),
				zap.Int("explored", res.Explored),
				zap.Int("pruned", res.Pruned),
				zap.Duration("elapsed", time.Since(start)),
			)

			outputs[i] = ksio.FormatResult(res) + "\n"

			return nil
		})
	}
	if err = g.Wait(); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, s := range outputs {
		if _, err = io.WriteString(out, s); err != nil {
			return fmt.Errorf("write result: %w", err)
		}
	}

	return nil
}
