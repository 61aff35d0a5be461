package faststray

// WindowMode selects how a neighbourhood of half-width w around index i is
// bounded.
type WindowMode int

const (
	// WindowHalfOpen clips the neighbourhood to [i-w, i+w): the sample at
	// distance exactly w above the centre is excluded while the one at
	// distance w below is included. This asymmetry matches the reference
	// behaviour and is the default.
	WindowHalfOpen WindowMode = iota

	// WindowClosed clips the neighbourhood to [i-w, i+w], the symmetric
	// alternative.
	WindowClosed
)

// window returns the clipped index range [lo, hi) of the neighbourhood of
// half-width halfWidth around center in a sequence of length n. The range
// always contains center; a half-width of 0 degrades to the centre sample
// alone.
func window(center, halfWidth, n int, mode WindowMode) (lo, hi int) {
	lo = max(center-halfWidth, 0)
	hi = center + halfWidth
	if mode == WindowClosed {
		hi++
	}
	hi = min(hi, n)
	if hi <= center {
		hi = center + 1
	}
	return lo, hi
}
