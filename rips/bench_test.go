package rips_test

import (
	"math"
	"testing"

	"github.com/jrfloren/ripsgo/metric"
	"github.com/jrfloren/ripsgo/rips"
)

// benchmarkBuild expands an n-point synthetic cloud up to maxDim.
func benchmarkBuild(b *testing.B, n, maxDim int) {
	points := make([][]float64, n)
	for i := range points {
		points[i] = []float64{math.Sin(float64(i)), math.Cos(float64(2 * i)), math.Sin(float64(3 * i))}
	}
	dm, err := metric.NewDistanceMatrix(points, metric.Euclidean)
	if err != nil {
		b.Fatalf("NewDistanceMatrix failed: %v", err)
	}
	opts := rips.Options{MaxScale: dm.Max() / 2, MaxDimension: maxDim}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := rips.Build(dm, opts); err != nil {
			b.Fatalf("Build failed: %v", err)
		}
	}
}

func BenchmarkBuild_50PointsDim1(b *testing.B)  { benchmarkBuild(b, 50, 1) }
func BenchmarkBuild_50PointsDim2(b *testing.B)  { benchmarkBuild(b, 50, 2) }
func BenchmarkBuild_150PointsDim1(b *testing.B) { benchmarkBuild(b, 150, 1) }
