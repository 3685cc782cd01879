// Package ksio reads and writes the plain-text knapsack exchange format:
// a header line "n capacity" followed by n lines "value weight", and the
// matching result rendering "value 0" plus a 0/1 selection vector.
//
// Parsing is strictly syntactic. Shape and integer literals are enforced
// here, while semantic range checks (negative values, zero weights) stay
// with bnb.Solve so both entry points agree on a single contract.
package ksio
