// Package testutil provides synthetic trajectory fixtures shared across test
// files. Fixtures return plain coordinate and timestamp slices so they stay
// decoupled from the production types.
package testutil

import (
	"math"
	"math/rand"
)

// Linspace returns n evenly spaced values from lo to hi inclusive.
func Linspace(lo, hi float64, n int) []float64 {
	out := make([]float64, n)
	if n == 1 {
		out[0] = lo
		return out
	}
	step := (hi - lo) / float64(n-1)
	for i := range out {
		out[i] = lo + float64(i)*step
	}
	return out
}

// NoisySine generates the classic FastStray demo trajectory: x sweeps
// linearly over [-3, 3], y = sin(3x), timestamps sweep [0, 1], and every
// component carries exponentially distributed noise of the given scale. The
// seed pins the noise so tests are reproducible.
func NoisySine(n int, noise float64, seed int64) (spatial [][]float64, times []float64) {
	rng := rand.New(rand.NewSource(seed))
	xs := Linspace(-3, 3, n)
	times = Linspace(0, 1, n)
	spatial = make([][]float64, n)
	for i := range spatial {
		spatial[i] = []float64{
			xs[i] + rng.ExpFloat64()*noise,
			math.Sin(3*xs[i]) + rng.ExpFloat64()*noise,
		}
		times[i] += rng.ExpFloat64() * noise
	}
	return spatial, times
}

// Sine generates a noise-free sinusoid: spatial = (t, sin t) for n
// timestamps evenly spaced over [0, span].
func Sine(n int, span float64) (spatial [][]float64, times []float64) {
	times = Linspace(0, span, n)
	spatial = make([][]float64, n)
	for i, t := range times {
		spatial[i] = []float64{t, math.Sin(t)}
	}
	return spatial, times
}

// Line generates a perfectly linear trajectory on an integer grid: sample i
// sits at (i, 2i) with timestamp i. Every window correlation over it is
// exactly 1.
func Line(n int) (spatial [][]float64, times []float64) {
	spatial = make([][]float64, n)
	times = make([]float64, n)
	for i := range spatial {
		spatial[i] = []float64{float64(i), 2 * float64(i)}
		times[i] = float64(i)
	}
	return spatial, times
}

// Constant generates a trajectory that never moves: every sample sits at
// (x, y) with timestamp i. All scoring neighbourhoods over it are
// degenerate.
func Constant(n int, x, y float64) (spatial [][]float64, times []float64) {
	spatial = make([][]float64, n)
	times = make([]float64, n)
	for i := range spatial {
		spatial[i] = []float64{x, y}
		times[i] = float64(i)
	}
	return spatial, times
}
