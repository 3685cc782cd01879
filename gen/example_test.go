package gen_test

import (
	"fmt"

	"github.com/katalvlaran/knapsack/gen"
)

// ExampleRandom builds a reproducible 8-item instance. Generated numbers
// are seed-dependent, so the example reports shape properties instead of
// raw values.
func ExampleRandom() {
	cfg := gen.DefaultConfig()
	cfg.Items = 8
	cfg.Seed = 42

	items, capacity, err := gen.Random(cfg)
	if err != nil {
		fmt.Printf("generate failed: %v\n", err)
		return
	}

	inRange := true
	for _, it := range items {
		if it.Weight < 1 || it.Weight > cfg.MaxWeight || it.Value < 0 || it.Value > cfg.MaxValue {
			inRange = false
		}
	}

	fmt.Printf("items: %d\n", len(items))
	fmt.Printf("attributes in range: %v\n", inRange)
	fmt.Printf("capacity derived: %v\n", capacity > 0)

	// Output:
	// items: 8
	// attributes in range: true
	// capacity derived: true
}
