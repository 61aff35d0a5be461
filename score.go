package faststray

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// Score computes the information score of every sample. For each index the
// Pearson correlation r between each spatial axis and time is taken over the
// neighbourhood of half-width beta, and the score is the sum over axes of
// 1/r². Weak correlation means the point's motion is poorly explained by a
// constant-velocity assumption, so low r yields a high score.
//
// A neighbourhood is degenerate when it holds fewer than two samples or when
// some axis has zero variance (or zero correlation) within it, leaving r
// undefined. Degenerate indices score +Inf, which guarantees they survive
// suppression, and are tallied in the second return value so they are never
// lost silently.
func Score(spatial [][]float64, times []float64, beta int, mode WindowMode, workers int) ([]float64, int) {
	n := len(times)
	scores := make([]float64, n)
	degenerate := make([]bool, n)
	forEachIndex(workers, n, func(i int) {
		lo, hi := window(i, beta, n, mode)
		if hi-lo < 2 {
			scores[i] = math.Inf(1)
			degenerate[i] = true
			return
		}
		ts := times[lo:hi]
		axis := make([]float64, hi-lo)
		var score float64
		for a := range spatial[i] {
			for j := lo; j < hi; j++ {
				axis[j-lo] = spatial[j][a]
			}
			r := stat.Correlation(axis, ts, nil)
			r2 := r * r
			if math.IsNaN(r2) || r2 == 0 {
				scores[i] = math.Inf(1)
				degenerate[i] = true
				return
			}
			score += 1 / r2
		}
		scores[i] = score
	})
	count := 0
	for _, d := range degenerate {
		if d {
			count++
		}
	}
	return scores, count
}
