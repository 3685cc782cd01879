package bnb_test

import (
	"fmt"

	"github.com/katalvlaran/knapsack/bnb"
)

// ExampleSolve demonstrates an exact solve of a 4-item instance with the
// default configuration (integrality bound, depth-first frontier).
func ExampleSolve() {
	// Four candidates; the knapsack holds 11 units of weight.
	items := []bnb.Item{
		{Index: 0, Value: 8, Weight: 4},
		{Index: 1, Value: 10, Weight: 5},
		{Index: 2, Value: 15, Weight: 8},
		{Index: 3, Value: 4, Weight: 3},
	}

	res, err := bnb.Solve(items, 11, bnb.DefaultOptions())
	if err != nil {
		fmt.Printf("solve failed: %v\n", err)
		return
	}

	fmt.Printf("Value: %d\n", res.Value)
	fmt.Printf("Taken: %v\n", res.Taken)

	// Output:
	// Value: 19
	// Taken: [0 0 1 1]
}

// ExampleSolve_bestFirst runs the same instance with the cheap capacity
// bound on a best-first frontier; the optimum is identical by construction.
func ExampleSolve_bestFirst() {
	items := []bnb.Item{
		{Index: 0, Value: 8, Weight: 4},
		{Index: 1, Value: 10, Weight: 5},
		{Index: 2, Value: 15, Weight: 8},
		{Index: 3, Value: 4, Weight: 3},
	}

	opts := bnb.DefaultOptions()
	opts.BoundAlgo = bnb.CapacityRelaxation
	opts.Traversal = bnb.BestFirst

	res, err := bnb.Solve(items, 11, opts)
	if err != nil {
		fmt.Printf("solve failed: %v\n", err)
		return
	}

	fmt.Printf("Value: %d\n", res.Value)

	// Output:
	// Value: 19
}
