package metric_test

import (
	"math"
	"testing"

	"github.com/jrfloren/ripsgo/metric"
)

// syntheticCloud builds a deterministic n×dim cloud from a sine sweep.
func syntheticCloud(n, dim int) [][]float64 {
	points := make([][]float64, n)
	for i := range points {
		p := make([]float64, dim)
		for d := range p {
			p[d] = math.Sin(float64(i*dim + d))
		}
		points[i] = p
	}

	return points
}

// benchmarkDistanceMatrix runs NewDistanceMatrix over an n-point cloud.
func benchmarkDistanceMatrix(b *testing.B, n int, f metric.Func) {
	points := syntheticCloud(n, 3)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := metric.NewDistanceMatrix(points, f); err != nil {
			b.Fatalf("NewDistanceMatrix failed: %v", err)
		}
	}
}

func BenchmarkNewDistanceMatrix_Euclidean200(b *testing.B) {
	benchmarkDistanceMatrix(b, 200, metric.Euclidean)
}

func BenchmarkNewDistanceMatrix_Chebyshev200(b *testing.B) {
	benchmarkDistanceMatrix(b, 200, metric.Chebyshev)
}

func BenchmarkDTW_200x200(b *testing.B) {
	series := make([]float64, 200)
	for i := range series {
		series[i] = math.Sin(float64(i) / 7)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := metric.DTW(series, series, metric.DTWOptions{}); err != nil {
			b.Fatalf("DTW failed: %v", err)
		}
	}
}
