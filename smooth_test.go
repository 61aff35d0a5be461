package faststray

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/banshee-data/faststray/internal/testutil"
)

func TestSmoothZeroHalfWidthIsIdentity(t *testing.T) {
	t.Parallel()

	spatial, _ := testutil.NoisySine(50, 0.1, 1)
	smoothed := Smooth(spatial, 0, WindowHalfOpen, 0)
	if diff := cmp.Diff(spatial, smoothed); diff != "" {
		t.Errorf("smoothing with half-width 0 changed the data (-want +got):\n%s", diff)
	}
}

func TestSmoothAverages(t *testing.T) {
	t.Parallel()

	spatial := [][]float64{{0, 0}, {2, 4}, {4, 8}, {6, 12}}

	t.Run("half-open windows", func(t *testing.T) {
		t.Parallel()
		smoothed := Smooth(spatial, 1, WindowHalfOpen, 0)
		// window(i, 1) = [i-1, i+1): sample i averages with its predecessor.
		want := [][]float64{{0, 0}, {1, 2}, {3, 6}, {5, 10}}
		if diff := cmp.Diff(want, smoothed); diff != "" {
			t.Errorf("unexpected means (-want +got):\n%s", diff)
		}
	})

	t.Run("closed windows", func(t *testing.T) {
		t.Parallel()
		smoothed := Smooth(spatial, 1, WindowClosed, 0)
		want := [][]float64{{1, 2}, {2, 4}, {4, 8}, {5, 10}}
		if diff := cmp.Diff(want, smoothed); diff != "" {
			t.Errorf("unexpected means (-want +got):\n%s", diff)
		}
	})
}

func TestSmoothConstantInputUnchanged(t *testing.T) {
	t.Parallel()

	spatial, _ := testutil.Constant(20, 3.5, -7.25)
	for _, alpha := range []int{1, 3, 30} {
		smoothed := Smooth(spatial, alpha, WindowHalfOpen, 0)
		require.Len(t, smoothed, len(spatial))
		for i, row := range smoothed {
			assert.Equal(t, spatial[i], row, "alpha=%d index=%d", alpha, i)
		}
	}
}

func TestSmoothPreservesShape(t *testing.T) {
	t.Parallel()

	spatial, _ := testutil.NoisySine(33, 0.1, 2)
	smoothed := Smooth(spatial, 4, WindowHalfOpen, 0)
	require.Len(t, smoothed, 33)
	for _, row := range smoothed {
		require.Len(t, row, 2)
	}
	// input untouched
	orig, _ := testutil.NoisySine(33, 0.1, 2)
	assert.Equal(t, orig, spatial)
}
