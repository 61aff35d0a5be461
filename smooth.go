package faststray

import "gonum.org/v1/gonum/floats"

// Smooth applies a centred moving average to every spatial axis. Each output
// row is the per-coordinate mean of the input rows inside the window of
// half-width alpha around that index. Timestamps are deliberately left
// untouched by the caller: scoring correlates smoothed space against raw
// time.
func Smooth(spatial [][]float64, alpha int, mode WindowMode, workers int) [][]float64 {
	n := len(spatial)
	out := make([][]float64, n)
	forEachIndex(workers, n, func(i int) {
		lo, hi := window(i, alpha, n, mode)
		mean := make([]float64, len(spatial[i]))
		for j := lo; j < hi; j++ {
			floats.Add(mean, spatial[j])
		}
		floats.Scale(1/float64(hi-lo), mean)
		out[i] = mean
	})
	return out
}
