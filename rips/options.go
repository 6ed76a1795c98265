package rips

import "time"

// Default expansion budgets. Chosen so a default run stays in tens of MB
// and well under a second on commodity hardware; raise them deliberately
// for larger studies.
const (
	// DefaultMaxPoints bounds the distance-matrix order.
	DefaultMaxPoints = 2048

	// DefaultMaxSimplices bounds the total simplex count across all
	// dimensions.
	DefaultMaxSimplices = 2_000_000
)

// Limits caps the combinatorial growth of the expansion. Zero or negative
// fields fall back to the package defaults.
type Limits struct {
	// MaxPoints is the largest admissible number of points.
	MaxPoints int

	// MaxSimplices is the largest admissible simplex count.
	MaxSimplices int
}

// DefaultLimits returns the package default budgets.
func DefaultLimits() Limits {
	return Limits{MaxPoints: DefaultMaxPoints, MaxSimplices: DefaultMaxSimplices}
}

// normalized fills zero fields with defaults.
func (l Limits) normalized() Limits {
	if l.MaxPoints <= 0 {
		l.MaxPoints = DefaultMaxPoints
	}
	if l.MaxSimplices <= 0 {
		l.MaxSimplices = DefaultMaxSimplices
	}

	return l
}

// Options configures Build.
//
// Fields:
//   - MaxScale     — admission threshold ε; simplices whose diameter
//     exceeds it are never created. Must be ≥ 0.
//   - MaxDimension — highest homology dimension to support; simplices are
//     expanded one dimension higher. Must be ≥ 0.
//   - Limits       — combinatorial budgets (see Limits).
//   - TimeLimit    — optional wall-clock budget for construction;
//     0 disables it.
type Options struct {
	MaxScale     float64
	MaxDimension int
	Limits       Limits
	TimeLimit    time.Duration
}
