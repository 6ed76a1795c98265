package metric_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jrfloren/ripsgo"
	"github.com/jrfloren/ripsgo/metric"
)

// TestEuclidean_KnownValues pins the L2 metric to closed-form cases.
func TestEuclidean_KnownValues(t *testing.T) {
	assert.Equal(t, 5.0, metric.Euclidean([]float64{0, 0}, []float64{3, 4}), "3-4-5 triangle")
	assert.Equal(t, 0.0, metric.Euclidean([]float64{1, 2, 3}, []float64{1, 2, 3}), "identical points")
}

// TestSquaredEuclidean_SkipsRoot verifies the squared variant is the
// square of the L2 distance.
func TestSquaredEuclidean_SkipsRoot(t *testing.T) {
	a := []float64{0, 0}
	b := []float64{3, 4}
	assert.Equal(t, 25.0, metric.SquaredEuclidean(a, b))
}

// TestManhattanChebyshev_KnownValues pins the L1 and L∞ metrics.
func TestManhattanChebyshev_KnownValues(t *testing.T) {
	a := []float64{1, 1}
	b := []float64{4, 5}
	assert.Equal(t, 7.0, metric.Manhattan(a, b))
	assert.Equal(t, 4.0, metric.Chebyshev(a, b))
}

// TestCosine_Orthogonal verifies that orthogonal vectors have distance 1
// and parallel vectors distance 0.
func TestCosine_Orthogonal(t *testing.T) {
	assert.InDelta(t, 1.0, metric.Cosine([]float64{1, 0}, []float64{0, 1}), 1e-15)
	assert.InDelta(t, 0.0, metric.Cosine([]float64{2, 2}, []float64{5, 5}), 1e-15)
}

// TestCosine_ZeroVectorIsNaN documents the 0/0 case that constructors
// reject downstream.
func TestCosine_ZeroVectorIsNaN(t *testing.T) {
	assert.True(t, math.IsNaN(metric.Cosine([]float64{0, 0}, []float64{1, 1})))
}

// TestByName_ResolvesEveryListedMetric ensures Names and ByName agree.
func TestByName_ResolvesEveryListedMetric(t *testing.T) {
	for _, name := range metric.Names() {
		f, err := metric.ByName(name)
		require.NoError(t, err, "metric %q must resolve", name)
		require.NotNil(t, f)
	}
}

// TestByName_Unknown verifies the sentinel and its broad kind.
func TestByName_Unknown(t *testing.T) {
	_, err := metric.ByName("minkowski-7")
	assert.ErrorIs(t, err, metric.ErrUnknownMetric)
	assert.ErrorIs(t, err, ripsgo.ErrInvalidInput)
}
