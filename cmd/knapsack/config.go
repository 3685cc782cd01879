// Solve configuration resolution.
//
// Precedence, lowest to highest:
//  1. Built-in defaults
//  2. YAML config file (--config, or ~/.config/knapsack/config.yaml if present)
//  3. Environment variables with the KNAPSACK_ prefix (KNAPSACK_SOLVER_BOUND, ...)
//  4. Flags the user explicitly set
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/knapsack/bnb"
)

const (
	// envPrefix namespaces the environment variables read by the CLI.
	envPrefix = "KNAPSACK_"

	// maxConfigFileSize rejects runaway config files early.
	maxConfigFileSize = 1024 * 1024
)

// defaultConfigYAML carries the built-in defaults in the same shape as a
// user config file, so one loader handles both.
const defaultConfigYAML = `
solver:
  bound: integrality
  traversal: dfs
  parallel: 1
  timeout: 0s
log:
  level: info
  format: console
`

// settings is the fully resolved solve configuration.
type settings struct {
	Bound     bnb.BoundAlgo
	Traversal bnb.Traversal
	Parallel  int
	Timeout   time.Duration
	LogLevel  zapcore.Level
	LogFormat string
}

// loadSettings resolves the solve configuration from defaults, an optional
// YAML file, KNAPSACK_* environment variables, and explicitly set flags.
func loadSettings(flags *pflag.FlagSet, configPath string) (settings, error) {
	k := koanf.New(".")

	// Layer 1: built-in defaults.
	if err := k.Load(rawbytes.Provider([]byte(defaultConfigYAML)), yaml.Parser()); err != nil {
		return settings{}, fmt.Errorf("load defaults: %w", err)
	}

	// Layer 2: YAML file. An explicit --config must exist; the default
	// path is loaded only when present.
	explicit := configPath != ""
	path := configPath
	if !explicit {
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, ".config", "knapsack", "config.yaml")
		}
	}
	if path != "" {
		content, err := os.ReadFile(path)
		switch {
		case err == nil:
			if len(content) > maxConfigFileSize {
				return settings{}, fmt.Errorf("config file %s too large: %d bytes (max %d)", path, len(content), maxConfigFileSize)
			}
			if err = k.Load(rawbytes.Provider(content), yaml.Parser()); err != nil {
				return settings{}, fmt.Errorf("load config %s: %w", path, err)
			}
		case explicit:
			return settings{}, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	// Layer 3: environment. The first underscore after the prefix splits
	// section from field: KNAPSACK_SOLVER_BOUND maps to "solver.bound",
	// KNAPSACK_LOG_LEVEL to "log.level".
	if err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		parts := strings.SplitN(strings.ToLower(strings.TrimPrefix(s, envPrefix)), "_", 2)
		if len(parts) == 1 {
			return parts[0]
		}

		return parts[0] + "." + parts[1]
	}), nil); err != nil {
		return settings{}, fmt.Errorf("load environment: %w", err)
	}

	// Layer 4: flags the user actually set override everything.
	boundName := k.String("solver.bound")
	if flags.Changed("bound") {
		boundName, _ = flags.GetString("bound")
	}
	traversalName := k.String("solver.traversal")
	if flags.Changed("traversal") {
		traversalName, _ = flags.GetString("traversal")
	}
	parallel := k.Int("solver.parallel")
	if flags.Changed("parallel") {
		parallel, _ = flags.GetInt("parallel")
	}
	timeoutRaw := k.String("solver.timeout")
	if flags.Changed("timeout") {
		timeoutRaw, _ = flags.GetString("timeout")
	}
	levelName := k.String("log.level")
	if flags.Changed("log-level") {
		levelName, _ = flags.GetString("log-level")
	}
	formatName := k.String("log.format")
	if flags.Changed("log-format") {
		formatName, _ = flags.GetString("log-format")
	}

	// Resolve names into solver options and validate the rest.
	bound, err := parseBound(boundName)
	if err != nil {
		return settings{}, err
	}
	traversal, err := parseTraversal(traversalName)
	if err != nil {
		return settings{}, err
	}
	if parallel < 1 {
		return settings{}, fmt.Errorf("parallel must be at least 1, got %d", parallel)
	}

	var timeout time.Duration
	if timeoutRaw != "" {
		if timeout, err = time.ParseDuration(timeoutRaw); err != nil {
			return settings{}, fmt.Errorf("invalid timeout %q: %w", timeoutRaw, err)
		}
	}
	if timeout < 0 {
		return settings{}, fmt.Errorf("timeout must not be negative, got %s", timeout)
	}

	level, err := parseLevel(levelName)
	if err != nil {
		return settings{}, err
	}
	format, err := parseFormat(formatName)
	if err != nil {
		return settings{}, err
	}

	return settings{
		Bound:     bound,
		Traversal: traversal,
		Parallel:  parallel,
		Timeout:   timeout,
		LogLevel:  level,
		LogFormat: format,
	}, nil
}

// parseBound maps a config name onto a bounding strategy.
func parseBound(name string) (bnb.BoundAlgo, error) {
	switch strings.ToLower(name) {
	case "integrality", "lp":
		return bnb.IntegralityRelaxation, nil
	case "capacity":
		return bnb.CapacityRelaxation, nil
	default:
		return 0, fmt.Errorf("unknown bound %q (choices: integrality, capacity)", name)
	}
}

// parseTraversal maps a config name onto a frontier policy.
func parseTraversal(name string) (bnb.Traversal, error) {
	switch strings.ToLower(name) {
	case "dfs", "depth":
		return bnb.DepthFirst, nil
	case "best":
		return bnb.BestFirst, nil
	default:
		return 0, fmt.Errorf("unknown traversal %q (choices: dfs, best)", name)
	}
}

// parseLevel maps a config name onto a zap level.
func parseLevel(name string) (zapcore.Level, error) {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(name)); err != nil {
		return zapcore.InfoLevel, fmt.Errorf("unknown log level %q", name)
	}

	return level, nil
}

// parseFormat validates the log encoder name.
func parseFormat(name string) (string, error) {
	format := strings.ToLower(name)
	switch format {
	case "console", "json":
		return format, nil
	default:
		return "", fmt.Errorf("unknown log format %q (choices: console, json)", name)
	}
}
