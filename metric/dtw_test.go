package metric_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jrfloren/ripsgo"
	"github.com/jrfloren/ripsgo/metric"
)

// TestDTW_EmptySeries verifies that either empty input errors.
func TestDTW_EmptySeries(t *testing.T) {
	_, err := metric.DTW(nil, []float64{1, 2}, metric.DTWOptions{})
	assert.ErrorIs(t, err, metric.ErrEmptySeries)

	_, err = metric.DTW([]float64{1, 2}, nil, metric.DTWOptions{})
	assert.ErrorIs(t, err, metric.ErrEmptySeries)
}

// TestDTW_IdenticalSeries must cost zero.
func TestDTW_IdenticalSeries(t *testing.T) {
	a := []float64{1, 3, 4, 9, 8}
	d, err := metric.DTW(a, a, metric.DTWOptions{})
	require.NoError(t, err)
	assert.Equal(t, 0.0, d)
}

// TestDTW_KnownAlignment pins a hand-computed optimal warp:
// [1,2,3] vs [2,3,4] costs exactly 2 without penalties.
func TestDTW_KnownAlignment(t *testing.T) {
	d, err := metric.DTW([]float64{1, 2, 3}, []float64{2, 3, 4}, metric.DTWOptions{})
	require.NoError(t, err)
	assert.Equal(t, 2.0, d)
}

// TestDTW_SlopePenaltyIncreasesCost checks that a positive penalty never
// lowers the distance and bites on a length mismatch.
func TestDTW_SlopePenaltyIncreasesCost(t *testing.T) {
	a := []float64{1, 2, 3}
	b := []float64{1, 2, 2, 3}

	plain, err := metric.DTW(a, b, metric.DTWOptions{})
	require.NoError(t, err)
	penalized, err := metric.DTW(a, b, metric.DTWOptions{SlopePenalty: 0.5})
	require.NoError(t, err)

	assert.Equal(t, 0.0, plain, "perfect subsequence match")
	assert.Equal(t, 0.5, penalized, "one off-diagonal step at penalty 0.5")
}

// TestDTW_WindowExcludesAlignment verifies the Sakoe–Chiba band rejection.
func TestDTW_WindowExcludesAlignment(t *testing.T) {
	_, err := metric.DTW([]float64{1, 2, 3, 4, 5}, []float64{1}, metric.DTWOptions{Window: 1})
	assert.ErrorIs(t, err, metric.ErrNoAlignment)
	assert.ErrorIs(t, err, ripsgo.ErrInvalidInput)
}

// TestDTW_NegativePenalty is rejected up front.
func TestDTW_NegativePenalty(t *testing.T) {
	_, err := metric.DTW([]float64{1}, []float64{1}, metric.DTWOptions{SlopePenalty: -1})
	assert.ErrorIs(t, err, metric.ErrBadValue)
}

// TestNewDTWDistanceMatrix builds a matrix over unequal-length windows,
// something the vector constructors cannot do.
func TestNewDTWDistanceMatrix(t *testing.T) {
	windows := [][]float64{
		{1, 2, 3},
		{1, 2, 2, 3},
		{2, 3, 4},
	}
	dm, err := metric.NewDTWDistanceMatrix(windows, metric.DTWOptions{})
	require.NoError(t, err)

	assert.Equal(t, 3, dm.Len())
	assert.Equal(t, 0.0, dm.At(0, 1), "subsequence stretch is free without penalty")
	assert.Equal(t, 2.0, dm.At(0, 2))
	assert.Equal(t, dm.At(2, 1), dm.At(1, 2), "symmetric access")
}

// TestNewDTWDistanceMatrix_TooFew reuses the shared point floor.
func TestNewDTWDistanceMatrix_TooFew(t *testing.T) {
	_, err := metric.NewDTWDistanceMatrix([][]float64{{1}}, metric.DTWOptions{})
	assert.ErrorIs(t, err, metric.ErrTooFewPoints)
}
