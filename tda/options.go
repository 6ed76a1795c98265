package tda

import (
	"time"

	"github.com/jrfloren/ripsgo/metric"
	"github.com/jrfloren/ripsgo/rips"
)

// Options configures one analysis run.
//
// Fields:
//   - Metric       — distance function for point-cloud input; nil means
//     metric.Euclidean. Ignored when a distance matrix is supplied.
//   - MaxScale     — filtration threshold ε. 0 means automatic: the
//     largest pairwise distance, so nothing is cut off. Negative values
//     are rejected downstream.
//   - MaxDimension — highest homology dimension to report. Must be ≥ 0.
//   - IncludeZeroPersistence — keep death==birth pairs in the diagram.
//   - Limits       — combinatorial budgets for the expansion.
//   - MaxColumnOps — reduction work budget; ≤ 0 means the persistence
//     package default.
//   - TimeLimit    — per-stage wall-clock budget; 0 disables it.
type Options struct {
	Metric                 metric.Func
	MaxScale               float64
	MaxDimension           int
	IncludeZeroPersistence bool
	Limits                 rips.Limits
	MaxColumnOps           int
	TimeLimit              time.Duration
}

// DefaultOptions returns the conventional run: Euclidean metric,
// automatic scale, homology up to dimension 1, default budgets.
func DefaultOptions() Options {
	return Options{
		Metric:       metric.Euclidean,
		MaxScale:     0,
		MaxDimension: 1,
		Limits:       rips.DefaultLimits(),
	}
}
