// Package gen - deterministic knapsack instance generator.
//
// Rationale:
//   - Tests and benchmarks need instances that are random in shape but
//     byte-for-byte reproducible under a fixed seed.
//   - Weights and values draw from separate derived streams, so tuning
//     MaxValue leaves the weight sequence (and a derived capacity) intact.
//   - A zero Capacity derives half the total weight, which lands instances
//     in the regime where roughly half the items fit and pruning matters.
package gen

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/knapsack/bnb"
)

var (
	// ErrBadItemCount indicates Config.Items is not positive.
	ErrBadItemCount = errors.New("gen: item count must be positive")
	// ErrBadLimit indicates a Config limit is outside its documented range.
	ErrBadLimit = errors.New("gen: limit out of range")
)

// maxLimit caps MaxValue and MaxWeight. Keeping attribute limits at or
// below 2^32 keeps totals far from int64 overflow for any practical
// item count.
const maxLimit int64 = 1 << 32

// Config controls Random. The zero value is NOT usable; start from
// DefaultConfig and override fields.
type Config struct {
	// Items is the number of items to generate (must be positive).
	Items int
	// Capacity is the knapsack budget. Zero derives half the total
	// generated weight; negative is rejected.
	Capacity int64
	// MaxValue bounds item values: uniform integers in [0, MaxValue].
	MaxValue int64
	// MaxWeight bounds item weights: uniform integers in [1, MaxWeight].
	MaxWeight int64
	// Seed feeds the deterministic RNG; 0 selects the fixed default seed.
	Seed int64
}

// DefaultConfig returns the canonical generator settings: 16 items,
// derived capacity, attribute limits of 100, default seed.
func DefaultConfig() Config {
	return Config{
		Items:     16,
		Capacity:  0,
		MaxValue:  100,
		MaxWeight: 100,
		Seed:      0,
	}
}

// Random builds one instance from cfg and returns its items (indices
// 0..Items-1 in generation order) together with the capacity.
//
// Determinism: identical cfg yields an identical instance on every call,
// platform, and Go release.
func Random(cfg Config) ([]bnb.Item, int64, error) {
	// Stage 1: validate the configuration.
	if cfg.Items <= 0 {
		return nil, 0, fmt.Errorf("%w: got %d", ErrBadItemCount, cfg.Items)
	}
	if cfg.MaxValue < 0 || cfg.MaxValue > maxLimit {
		return nil, 0, fmt.Errorf("%w: MaxValue %d not in [0, %d]", ErrBadLimit, cfg.MaxValue, maxLimit)
	}
	if cfg.MaxWeight < 1 || cfg.MaxWeight > maxLimit {
		return nil, 0, fmt.Errorf("%w: MaxWeight %d not in [1, %d]", ErrBadLimit, cfg.MaxWeight, maxLimit)
	}
	if cfg.Capacity < 0 {
		return nil, 0, fmt.Errorf("%w: Capacity %d is negative", ErrBadLimit, cfg.Capacity)
	}

	// Stage 2: set up one derived stream per attribute.
	var (
		base      = rngFromSeed(cfg.Seed)
		weightRNG = deriveRNG(base, streamWeights)
		valueRNG  = deriveRNG(base, streamValues)
	)

	// Stage 3: draw items and accumulate the total weight.
	var (
		items = make([]bnb.Item, cfg.Items)
		total int64
		i     int
	)
	for i = 0; i < cfg.Items; i++ {
		items[i] = bnb.Item{
			Index:  i,
			Value:  valueRNG.Int63n(cfg.MaxValue + 1),
			Weight: 1 + weightRNG.Int63n(cfg.MaxWeight),
		}
		total += items[i].Weight
	}

	// Stage 4: resolve the capacity.
	capacity := cfg.Capacity
	if capacity == 0 {
		capacity = total / 2
	}

	return items, capacity, nil
}
