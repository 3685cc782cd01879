// Package gen produces deterministic random knapsack instances for tests,
// benchmarks, and the command-line generator.
//
// Reproducibility contract: the same Config always yields the same
// instance. Weights and values come from independently derived streams,
// so adjusting one limit never disturbs the other sequence.
package gen
