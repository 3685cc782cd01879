// Package bnb - admissible bounding strategies.
//
// A bounder estimates, for a partial solution, the best total value any of
// its completions could reach. The estimate may over-shoot but must never
// under-shoot: pruning on an under-estimate could cut the subtree holding
// the optimum. Both implementations below honor that contract for inputs
// that pass validation (non-negative values, positive weights).
package bnb

// bounder is the strategy hook consulted once per created node.
type bounder interface {
	// estimate returns an optimistic completion value for the partial
	// solution that has decided the first level density-order items,
	// accumulating value and weight so far.
	estimate(ins *instance, level int, value, weight int64) float64
}

// capacityRelax drops the capacity constraint: every undecided item counts
// in full. Reduces to value plus the prefix-sum of the undecided tail, so
// each call is O(1). Loose, but nearly free.
type capacityRelax struct{}

func (capacityRelax) estimate(ins *instance, level int, value, weight int64) float64 {
	return float64(value + ins.prefix[ins.n] - ins.prefix[level])
}

// integralityRelax drops only the 0/1 integrality constraint, the classic
// LP relaxation: fill the remaining room greedily in density order and
// take a fractional share of the first item that no longer fits. The
// greedy fractional fill is the LP optimum, hence an upper bound on every
// integral completion. O(n - level) per call.
type integralityRelax struct{}

func (integralityRelax) estimate(ins *instance, level int, value, weight int64) float64 {
	// An over-full prefix has no completions; 0 never passes a prune test.
	if weight > ins.capacity {
		return 0
	}

	var (
		room  = ins.capacity - weight // capacity still available
		total = value                 // value of whole items packed so far
		k     int
	)
	for k = level; k < ins.n; k++ {
		if ins.weights[k] > room {
			break
		}
		room -= ins.weights[k]
		total += ins.values[k]
	}

	// Fractional share of the first misfit, if any room remains.
	if k < ins.n && room > 0 {
		return float64(total) + float64(room)*float64(ins.values[k])/float64(ins.weights[k])
	}

	return float64(total)
}
