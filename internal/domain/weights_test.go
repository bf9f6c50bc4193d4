package domain

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestNewWeights(t *testing.T) {
	t.Run("normalizes to unit sum", func(t *testing.T) {
		w := NewWeights([]float64{2, 2, 4})
		require.Equal(t, "", cmp.Diff(Weights{0.25, 0.25, 0.5}, w))
		require.InDelta(t, 1.0, w.Sum(), 1e-12)
	})

	t.Run("floors negatives", func(t *testing.T) {
		w := NewWeights([]float64{-1, 1, 1})
		require.Equal(t, "", cmp.Diff(Weights{0, 0.5, 0.5}, w))
	})

	t.Run("no positive mass degrades to equal weights", func(t *testing.T) {
		w := NewWeights([]float64{-1, -2, 0})
		require.Equal(t, "", cmp.Diff(EqualWeights(3), w))
	})
}

func TestEqualWeights(t *testing.T) {
	require.Equal(t, "", cmp.Diff(Weights{0.25, 0.25, 0.25, 0.25}, EqualWeights(4)))
	require.Equal(t, "", cmp.Diff(Weights{}, EqualWeights(0)))
}
