// Package faststray reduces the number of points in a spatio-temporal
// trajectory while keeping the points that carry the most information about
// how spatial motion relates to elapsed time. It implements the FastStray
// algorithm (https://arxiv.org/pdf/1608.07338.pdf): smooth the trajectory
// with a moving average, score each point by how weakly its neighbourhood's
// spatial coordinates correlate with time, then keep only the points whose
// score is a local maximum.
package faststray

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyTrajectory is returned when a trajectory has no samples.
	ErrEmptyTrajectory = errors.New("trajectory must contain at least one sample")

	// ErrShapeMismatch is returned when the spatial and temporal sequences
	// disagree on length, or when spatial rows disagree on dimensionality.
	ErrShapeMismatch = errors.New("spatial/temporal shape mismatch")

	// ErrInvalidHalfWidth is returned for non-positive window half-widths.
	ErrInvalidHalfWidth = errors.New("window half-width must be positive")

	// ErrInvalidWorkers is returned for a negative worker count.
	ErrInvalidWorkers = errors.New("worker count must not be negative")

	// ErrInvalidWindowMode is returned for an unrecognised WindowMode.
	ErrInvalidWindowMode = errors.New("unrecognised window mode")
)

// Trajectory is an ordered sequence of spatio-temporal samples. Spatial[i]
// holds the d-dimensional position of sample i (d >= 1, typically 2 for
// lon/lat) and Times[i] its timestamp. Timestamps are expected to be
// monotonically non-decreasing; this is not enforced, but the correlation
// scores are meaningless without it.
type Trajectory struct {
	Spatial [][]float64
	Times   []float64
}

// Len returns the number of samples.
func (t Trajectory) Len() int { return len(t.Times) }

// Dim returns the spatial dimensionality, or 0 for an empty trajectory.
func (t Trajectory) Dim() int {
	if len(t.Spatial) == 0 {
		return 0
	}
	return len(t.Spatial[0])
}

// Validate checks the trajectory's shape invariants: at least one sample,
// equal spatial and temporal lengths, and a uniform dimensionality d >= 1.
func (t Trajectory) Validate() error {
	if len(t.Times) == 0 && len(t.Spatial) == 0 {
		return ErrEmptyTrajectory
	}
	if len(t.Spatial) != len(t.Times) {
		return fmt.Errorf("%w: %d spatial rows, %d timestamps", ErrShapeMismatch, len(t.Spatial), len(t.Times))
	}
	d := len(t.Spatial[0])
	if d < 1 {
		return fmt.Errorf("%w: sample 0 has no spatial coordinates", ErrShapeMismatch)
	}
	for i, row := range t.Spatial {
		if len(row) != d {
			return fmt.Errorf("%w: sample %d has %d coordinates, want %d", ErrShapeMismatch, i, len(row), d)
		}
	}
	return nil
}

// Config holds the per-run parameters of the pipeline. The three half-widths
// have no prescribed defaults; callers choose them per run.
type Config struct {
	// Alpha is the half-width of the moving-average smoothing window.
	Alpha int

	// Beta is the half-width of the correlation-scoring neighbourhood.
	Beta int

	// Gamma is the half-width of the non-maximum-suppression neighbourhood.
	Gamma int

	// Window selects how neighbourhood bounds are clipped. The zero value
	// is WindowHalfOpen, which matches the reference behaviour.
	Window WindowMode

	// Workers fans each stage's per-index loop out across this many
	// goroutines. Values <= 1 run the stages serially. Results are
	// identical either way.
	Workers int
}

// Validate rejects configurations the pipeline cannot run with.
func (c Config) Validate() error {
	if c.Alpha < 1 || c.Beta < 1 || c.Gamma < 1 {
		return fmt.Errorf("%w: alpha=%d beta=%d gamma=%d", ErrInvalidHalfWidth, c.Alpha, c.Beta, c.Gamma)
	}
	if c.Window != WindowHalfOpen && c.Window != WindowClosed {
		return fmt.Errorf("%w: %d", ErrInvalidWindowMode, c.Window)
	}
	if c.Workers < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidWorkers, c.Workers)
	}
	return nil
}
