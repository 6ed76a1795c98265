package embed

import (
	"fmt"

	"github.com/jrfloren/ripsgo"
)

// Default embedding parameters for single-channel diagnostic traces.
const (
	// DefaultDimension is the default embedding dimension.
	DefaultDimension = 3

	// DefaultDelay is the default inter-coordinate delay in samples.
	DefaultDelay = 10
)

var (
	// ErrBadDimension indicates a non-positive embedding dimension.
	ErrBadDimension = fmt.Errorf("embed: %w: dimension must be ≥ 1", ripsgo.ErrInvalidInput)

	// ErrBadDelay indicates a non-positive delay.
	ErrBadDelay = fmt.Errorf("embed: %w: delay must be ≥ 1", ripsgo.ErrInvalidInput)

	// ErrSeriesTooShort indicates that len(series) ≤ (dimension−1)·delay,
	// leaving no room for even one embedded point.
	ErrSeriesTooShort = fmt.Errorf("embed: %w: series too short for dimension and delay", ripsgo.ErrInvalidInput)

	// ErrBadStride indicates a non-positive downsampling bound.
	ErrBadStride = fmt.Errorf("embed: %w: max samples must be ≥ 1", ripsgo.ErrInvalidInput)
)

// Options configures the delay embedding.
type Options struct {
	// Dimension is the embedding dimension d; each output point has d
	// coordinates.
	Dimension int

	// Delay is the spacing τ, in samples, between consecutive coordinates
	// of one embedded point.
	Delay int
}

// DefaultOptions returns the conventional (3, 10) embedding.
func DefaultOptions() Options {
	return Options{Dimension: DefaultDimension, Delay: DefaultDelay}
}

// Delay embeds a 1-D series into a point cloud of opts.Dimension-vectors.
// The output has len(series) − (Dimension−1)·Delay points; point i is
// (series[i], series[i+τ], …, series[i+(d−1)τ]).
//
// The returned rows are fresh slices; the input is not retained.
//
// Complexity: O(n·d) time and space.
func Delay(series []float64, opts Options) ([][]float64, error) {
	if opts.Dimension < 1 {
		return nil, ErrBadDimension
	}
	if opts.Delay < 1 {
		return nil, ErrBadDelay
	}
	span := (opts.Dimension - 1) * opts.Delay
	count := len(series) - span
	if count <= 0 {
		return nil, ErrSeriesTooShort
	}

	points := make([][]float64, count)
	for i := 0; i < count; i++ {
		p := make([]float64, opts.Dimension)
		for k := 0; k < opts.Dimension; k++ {
			p[k] = series[i+k*opts.Delay]
		}
		points[i] = p
	}

	return points, nil
}

// Downsample thins a series to at most maxSamples values using a uniform
// stride, mirroring the sample cap applied when reading scope traces.
// The first sample is always kept; a series already within the bound is
// copied unchanged.
func Downsample(series []float64, maxSamples int) ([]float64, error) {
	if maxSamples < 1 {
		return nil, ErrBadStride
	}
	n := len(series)
	if n <= maxSamples {
		out := make([]float64, n)
		copy(out, series)

		return out, nil
	}

	stride := (n + maxSamples - 1) / maxSamples
	out := make([]float64, 0, (n+stride-1)/stride)
	for i := 0; i < n; i += stride {
		out = append(out, series[i])
	}

	return out, nil
}
