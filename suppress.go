package faststray

import "math"

// LocalMaxMask performs the non-maximum-suppression pass. Index i is marked
// true when scores[i] equals the maximum score inside the neighbourhood of
// half-width gamma around i. Equality is exact, so tied peaks all survive.
func LocalMaxMask(scores []float64, gamma int, mode WindowMode, workers int) []bool {
	n := len(scores)
	mask := make([]bool, n)
	forEachIndex(workers, n, func(i int) {
		lo, hi := window(i, gamma, n, mode)
		best := math.Inf(-1)
		for j := lo; j < hi; j++ {
			if scores[j] > best {
				best = scores[j]
			}
		}
		mask[i] = scores[i] == best
	})
	return mask
}
