package faststray

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/banshee-data/faststray/internal/testutil"
)

func TestScoreLinearTrajectoryIsMinimal(t *testing.T) {
	t.Parallel()

	// Both axes move as exact linear functions of time, so every
	// neighbourhood correlation is 1 and every score is the floor value
	// of 1/1 per axis.
	spatial, times := testutil.Line(40)
	scores, degenerate := Score(spatial, times, 5, WindowHalfOpen, 0)

	require.Len(t, scores, 40)
	assert.Zero(t, degenerate)
	for i, s := range scores {
		assert.InDelta(t, 2.0, s, 1e-9, "index %d", i)
	}
}

func TestScoreDegenerateNeighbourhoods(t *testing.T) {
	t.Parallel()

	t.Run("constant axis scores infinite", func(t *testing.T) {
		t.Parallel()
		spatial, times := testutil.Constant(10, 1, 2)
		scores, degenerate := Score(spatial, times, 3, WindowHalfOpen, 0)
		assert.Equal(t, 10, degenerate)
		for i, s := range scores {
			assert.True(t, math.IsInf(s, 1), "index %d: got %v", i, s)
		}
	})

	t.Run("single-sample trajectory", func(t *testing.T) {
		t.Parallel()
		scores, degenerate := Score([][]float64{{1, 2}}, []float64{0}, 3, WindowHalfOpen, 0)
		require.Len(t, scores, 1)
		assert.Equal(t, 1, degenerate)
		assert.True(t, math.IsInf(scores[0], 1))
	})

	t.Run("one constant axis among moving ones", func(t *testing.T) {
		t.Parallel()
		// y never moves; x is linear in time. The flat axis alone makes
		// every neighbourhood degenerate.
		n := 12
		spatial := make([][]float64, n)
		times := make([]float64, n)
		for i := range spatial {
			spatial[i] = []float64{float64(i), 7}
			times[i] = float64(i)
		}
		scores, degenerate := Score(spatial, times, 2, WindowHalfOpen, 0)
		assert.Equal(t, n, degenerate)
		for _, s := range scores {
			assert.True(t, math.IsInf(s, 1))
		}
	})
}

func TestScoreCurvedTrajectoryVaries(t *testing.T) {
	t.Parallel()

	spatial, times := testutil.Sine(100, 10)
	scores, degenerate := Score(spatial, times, 5, WindowHalfOpen, 0)

	require.Len(t, scores, 100)
	assert.Zero(t, degenerate)

	minScore, maxScore := math.Inf(1), math.Inf(-1)
	for _, s := range scores {
		require.False(t, math.IsNaN(s))
		minScore = math.Min(minScore, s)
		maxScore = math.Max(maxScore, s)
	}
	// The sinusoid is not linear in time, so scores must spread out. Every
	// score stays near or above 2: one axis is exactly linear (1/r² = 1)
	// and the other contributes at least 1.
	assert.Greater(t, maxScore, minScore)
	assert.GreaterOrEqual(t, minScore, 2.0-1e-9)
}
