package faststray

import (
	"fmt"

	"github.com/google/uuid"
)

// Result holds the output of one compression run.
type Result struct {
	// RunID identifies the run, for correlating reports and plots.
	RunID string

	// Trajectory is the compressed trajectory: the smoothed samples at the
	// kept indices, paired with their original timestamps.
	Trajectory Trajectory

	// KeptIndices are the surviving indices into the smoothed trajectory,
	// in ascending order.
	KeptIndices []int

	// Scores is the full information-score sequence, one per input sample.
	Scores []float64

	// Degenerate counts the scoring neighbourhoods where the correlation
	// was undefined and the sentinel +Inf score was used instead.
	Degenerate int

	sourceLen int
}

// CompressionRate reports the fraction of input points discarded, in [0, 1].
func (r *Result) CompressionRate() float64 {
	if r.sourceLen == 0 {
		return 0
	}
	return 1 - float64(len(r.KeptIndices))/float64(r.sourceLen)
}

// String summarises the run.
func (r *Result) String() string {
	return fmt.Sprintf("run %s: %d -> %d points (rate %.3f, %d degenerate windows)",
		r.RunID, r.sourceLen, len(r.KeptIndices), r.CompressionRate(), r.Degenerate)
}

// Compress runs the full pipeline: moving-average smoothing, correlation
// scoring, then non-maximum suppression. Validation failures abort before
// any stage runs; degenerate scoring neighbourhoods do not abort the run and
// are reported on the Result.
func Compress(traj Trajectory, cfg Config) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if err := traj.Validate(); err != nil {
		return nil, fmt.Errorf("invalid trajectory: %w", err)
	}

	smoothed := Smooth(traj.Spatial, cfg.Alpha, cfg.Window, cfg.Workers)
	scores, degenerate := Score(smoothed, traj.Times, cfg.Beta, cfg.Window, cfg.Workers)
	mask := LocalMaxMask(scores, cfg.Gamma, cfg.Window, cfg.Workers)

	var kept []int
	for i, keep := range mask {
		if keep {
			kept = append(kept, i)
		}
	}
	out := Trajectory{
		Spatial: make([][]float64, len(kept)),
		Times:   make([]float64, len(kept)),
	}
	for k, i := range kept {
		out.Spatial[k] = smoothed[i]
		out.Times[k] = traj.Times[i]
	}

	return &Result{
		RunID:       uuid.NewString(),
		Trajectory:  out,
		KeptIndices: kept,
		Scores:      scores,
		Degenerate:  degenerate,
		sourceLen:   traj.Len(),
	}, nil
}
