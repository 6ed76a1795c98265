package rips

import (
	"fmt"

	"github.com/jrfloren/ripsgo"
)

var (
	// ErrNilMatrix indicates a nil distance matrix.
	ErrNilMatrix = fmt.Errorf("rips: %w: nil distance matrix", ripsgo.ErrInvalidInput)

	// ErrScaleNegative indicates a negative or NaN maximum scale.
	ErrScaleNegative = fmt.Errorf("rips: %w: max scale must be ≥ 0", ripsgo.ErrInvalidInput)

	// ErrDimensionNegative indicates a negative maximum homology dimension.
	ErrDimensionNegative = fmt.Errorf("rips: %w: max dimension must be ≥ 0", ripsgo.ErrInvalidInput)

	// ErrTooManyPoints is returned before any allocation when the matrix
	// order exceeds Limits.MaxPoints.
	ErrTooManyPoints = fmt.Errorf("rips: %w: too many points", ripsgo.ErrResourceLimit)

	// ErrTooManySimplices is returned mid-expansion when the simplex count
	// exceeds Limits.MaxSimplices.
	ErrTooManySimplices = fmt.Errorf("rips: %w: too many simplices", ripsgo.ErrResourceLimit)

	// ErrTimeLimit is returned when construction outlives Options.TimeLimit.
	ErrTimeLimit = fmt.Errorf("rips: %w: time limit exceeded", ripsgo.ErrResourceLimit)
)

// Simplex is one simplex of a filtration: k+1 sorted vertex indices and
// the scale at which it enters the complex.
type Simplex struct {
	// Vertices are point indices in strictly ascending order.
	Vertices []int

	// Birth is the largest pairwise distance among Vertices; 0 for a
	// single vertex. Monotone: never below the birth of any face.
	Birth float64
}

// Dim returns the simplex dimension: len(Vertices) − 1.
func (s Simplex) Dim() int { return len(s.Vertices) - 1 }

// Filtration is an ordered Vietoris–Rips filtration. Immutable once built.
type Filtration struct {
	// Simplices in filtration order: (Birth, Dim, lexicographic) ascending.
	Simplices []Simplex

	// Points is the number of points the filtration was built over.
	Points int

	// MaxScale is the admission threshold used during construction.
	MaxScale float64

	// MaxDimension is the highest homology dimension the filtration
	// supports; simplices run one dimension higher (see package doc).
	MaxDimension int
}

// Len returns the number of simplices.
func (f *Filtration) Len() int { return len(f.Simplices) }
