package tda

import (
	"context"
	"fmt"

	"github.com/jrfloren/ripsgo"
	"github.com/jrfloren/ripsgo/embed"
	"github.com/jrfloren/ripsgo/metric"
	"github.com/jrfloren/ripsgo/persistence"
	"github.com/jrfloren/ripsgo/rips"
)

// Result is the outcome of one analysis run.
type Result struct {
	// Diagram is the persistence diagram, dimensions 0..MaxDimension.
	Diagram *persistence.Diagram

	// Filtration is the Vietoris–Rips filtration the diagram was reduced
	// from; kept for inspection and tests.
	Filtration *rips.Filtration

	// Points is the analyzed point count.
	Points int

	// MaxScale is the threshold actually used after automatic resolution.
	MaxScale float64
}

// AnalyzeSeries embeds a 1-D trace (delay embedding) and analyzes the
// resulting point cloud.
func AnalyzeSeries(ctx context.Context, series []float64, eopts embed.Options, opts Options) (*Result, error) {
	points, err := embed.Delay(series, eopts)
	if err != nil {
		return nil, err
	}

	return AnalyzePoints(ctx, points, opts)
}

// AnalyzePoints builds a distance matrix under opts.Metric (Euclidean
// when nil) and analyzes it.
func AnalyzePoints(ctx context.Context, points [][]float64, opts Options) (*Result, error) {
	if err := checkCtx(ctx); err != nil {
		return nil, err
	}
	f := opts.Metric
	if f == nil {
		f = metric.Euclidean
	}
	dm, err := metric.NewDistanceMatrix(points, f)
	if err != nil {
		return nil, err
	}

	return AnalyzeDistances(ctx, dm, opts)
}

// AnalyzeDistances runs filtration construction and reduction on a
// prebuilt distance matrix.
func AnalyzeDistances(ctx context.Context, dm *metric.DistanceMatrix, opts Options) (*Result, error) {
	if dm == nil {
		return nil, rips.ErrNilMatrix
	}

	scale := opts.MaxScale
	if scale == 0 {
		scale = dm.Max()
	}

	if err := checkCtx(ctx); err != nil {
		return nil, err
	}
	filt, err := rips.Build(dm, rips.Options{
		MaxScale:     scale,
		MaxDimension: opts.MaxDimension,
		Limits:       opts.Limits,
		TimeLimit:    opts.TimeLimit,
	})
	if err != nil {
		return nil, err
	}

	if err := checkCtx(ctx); err != nil {
		return nil, err
	}
	diag, err := persistence.Compute(filt, persistence.Options{
		IncludeZeroPersistence: opts.IncludeZeroPersistence,
		MaxColumnOps:           opts.MaxColumnOps,
		TimeLimit:              opts.TimeLimit,
	})
	if err != nil {
		return nil, err
	}

	return &Result{
		Diagram:    diag,
		Filtration: filt,
		Points:     dm.Len(),
		MaxScale:   scale,
	}, nil
}

// checkCtx maps context cancellation onto the resource-limit kind: the
// caller imposed a budget and the run exceeded it.
func checkCtx(ctx context.Context) error {
	if ctx == nil {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("tda: %w: %w", ripsgo.ErrResourceLimit, err)
	}

	return nil
}
