// Package metric: sentinel error set.
// Every sentinel wraps ripsgo.ErrInvalidInput, so callers may match either
// the narrow condition or the broad kind via errors.Is.
package metric

import (
	"fmt"

	"github.com/jrfloren/ripsgo"
)

var (
	// ErrTooFewPoints is returned when fewer than two points are supplied:
	// no pairwise structure exists below that.
	ErrTooFewPoints = fmt.Errorf("metric: %w: at least two points required", ripsgo.ErrInvalidInput)

	// ErrDimensionMismatch indicates points of unequal (or zero) dimensionality.
	ErrDimensionMismatch = fmt.Errorf("metric: %w: inconsistent point dimensionality", ripsgo.ErrInvalidInput)

	// ErrBadValue indicates a NaN, ±Inf or negative value where a finite
	// non-negative distance or coordinate is required.
	ErrBadValue = fmt.Errorf("metric: %w: NaN, Inf or negative value", ripsgo.ErrInvalidInput)

	// ErrNotSquare is returned by DistanceMatrixFromDense for ragged or
	// non-square input.
	ErrNotSquare = fmt.Errorf("metric: %w: dense matrix is not square", ripsgo.ErrInvalidInput)

	// ErrAsymmetry signals that a dense matrix violates symmetry beyond
	// the structural tolerance.
	ErrAsymmetry = fmt.Errorf("metric: %w: dense matrix is not symmetric", ripsgo.ErrInvalidInput)

	// ErrNonZeroDiagonal signals a non-zero self-distance in dense input.
	ErrNonZeroDiagonal = fmt.Errorf("metric: %w: diagonal is not zero", ripsgo.ErrInvalidInput)

	// ErrNilMetric indicates a nil Func passed to a constructor.
	ErrNilMetric = fmt.Errorf("metric: %w: nil metric function", ripsgo.ErrInvalidInput)

	// ErrUnknownMetric is returned by ByName for an unrecognized metric name.
	ErrUnknownMetric = fmt.Errorf("metric: %w: unknown metric name", ripsgo.ErrInvalidInput)

	// ErrEmptySeries indicates that DTW received an empty sequence.
	ErrEmptySeries = fmt.Errorf("metric: %w: DTW input series must be non-empty", ripsgo.ErrInvalidInput)

	// ErrNoAlignment indicates that the Sakoe–Chiba window excludes every
	// warping path between two series (their lengths differ by more than
	// the window allows).
	ErrNoAlignment = fmt.Errorf("metric: %w: no DTW alignment within window", ripsgo.ErrInvalidInput)
)
