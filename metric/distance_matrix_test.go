package metric_test

import (
	"math"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jrfloren/ripsgo"
	"github.com/jrfloren/ripsgo/metric"
)

// unitSquare is a 4-point cloud with exactly representable distances:
// sides 1, diagonals √2.
var unitSquare = [][]float64{{0, 0}, {0, 1}, {1, 1}, {1, 0}}

// TestNewDistanceMatrix_Square verifies the condensed storage against
// closed-form geometry.
func TestNewDistanceMatrix_Square(t *testing.T) {
	dm, err := metric.NewDistanceMatrix(unitSquare, metric.Euclidean)
	require.NoError(t, err)

	assert.Equal(t, 4, dm.Len())
	assert.Equal(t, 1.0, dm.At(0, 1), "side")
	assert.Equal(t, 1.0, dm.At(3, 0), "side, swapped indices")
	assert.Equal(t, math.Sqrt2, dm.At(0, 2), "diagonal")
	assert.Equal(t, math.Sqrt2, dm.At(1, 3), "diagonal")
	assert.Equal(t, 0.0, dm.At(2, 2), "diagonal entries are zero")
	assert.Equal(t, math.Sqrt2, dm.Max())
}

// TestNewDistanceMatrix_TooFewPoints covers the no-pairwise-structure case.
func TestNewDistanceMatrix_TooFewPoints(t *testing.T) {
	_, err := metric.NewDistanceMatrix([][]float64{{1, 2}}, metric.Euclidean)
	assert.ErrorIs(t, err, metric.ErrTooFewPoints)
	assert.ErrorIs(t, err, ripsgo.ErrInvalidInput)
}

// TestNewDistanceMatrix_DimensionMismatch covers ragged input.
func TestNewDistanceMatrix_DimensionMismatch(t *testing.T) {
	_, err := metric.NewDistanceMatrix([][]float64{{1, 2}, {1, 2, 3}}, metric.Euclidean)
	assert.ErrorIs(t, err, metric.ErrDimensionMismatch)
}

// TestNewDistanceMatrix_RejectsNaN covers non-finite coordinates and the
// NaN a zero-vector cosine produces.
func TestNewDistanceMatrix_RejectsNaN(t *testing.T) {
	_, err := metric.NewDistanceMatrix([][]float64{{math.NaN(), 0}, {1, 1}}, metric.Euclidean)
	assert.ErrorIs(t, err, metric.ErrBadValue)

	_, err = metric.NewDistanceMatrix([][]float64{{0, 0}, {1, 1}}, metric.Cosine)
	assert.ErrorIs(t, err, metric.ErrBadValue, "cosine of a zero vector is NaN")
}

// TestNewDistanceMatrix_NilMetric covers the nil Func guard.
func TestNewDistanceMatrix_NilMetric(t *testing.T) {
	_, err := metric.NewDistanceMatrix(unitSquare, nil)
	assert.ErrorIs(t, err, metric.ErrNilMetric)
}

// TestDistanceMatrixFromDense_Valid checks a precomputed matrix round-trip.
func TestDistanceMatrixFromDense_Valid(t *testing.T) {
	dm, err := metric.DistanceMatrixFromDense([][]float64{
		{0, 2, 2},
		{2, 0, 2},
		{2, 2, 0},
	})
	require.NoError(t, err)
	assert.Equal(t, 3, dm.Len())
	assert.Equal(t, 2.0, dm.At(2, 0))
}

// TestDistanceMatrixFromDense_Invalid enumerates every rejection.
func TestDistanceMatrixFromDense_Invalid(t *testing.T) {
	cases := []struct {
		name string
		rows [][]float64
		want error
	}{
		{"too small", [][]float64{{0}}, metric.ErrTooFewPoints},
		{"ragged", [][]float64{{0, 1}, {1}}, metric.ErrNotSquare},
		{"diagonal", [][]float64{{1, 1}, {1, 0}}, metric.ErrNonZeroDiagonal},
		{"asymmetric", [][]float64{{0, 1}, {2, 0}}, metric.ErrAsymmetry},
		{"negative", [][]float64{{0, -1}, {-1, 0}}, metric.ErrBadValue},
		{"infinite", [][]float64{{0, math.Inf(1)}, {math.Inf(1), 0}}, metric.ErrBadValue},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := metric.DistanceMatrixFromDense(tc.rows)
			assert.ErrorIs(t, err, tc.want)
			assert.ErrorIs(t, err, ripsgo.ErrInvalidInput)
		})
	}
}

// TestNewDistanceMatrix_Deterministic verifies bit-identical repeat runs.
func TestNewDistanceMatrix_Deterministic(t *testing.T) {
	a, err := metric.NewDistanceMatrix(unitSquare, metric.Euclidean)
	require.NoError(t, err)
	b, err := metric.NewDistanceMatrix(unitSquare, metric.Euclidean)
	require.NoError(t, err)
	assert.True(t, reflect.DeepEqual(a, b), "repeat runs must be bit-identical")
}
