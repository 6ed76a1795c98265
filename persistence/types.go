package persistence

import (
	"fmt"
	"math"
	"time"

	"github.com/jrfloren/ripsgo"
)

var (
	// ErrNilFiltration indicates a nil filtration.
	ErrNilFiltration = fmt.Errorf("persistence: %w: nil filtration", ripsgo.ErrInvalidInput)

	// ErrFiltrationOrder indicates a broken filtration: a simplex whose
	// face is missing, appears later, or has a larger birth scale.
	ErrFiltrationOrder = fmt.Errorf("persistence: %w: faces must precede cofaces", ripsgo.ErrInvalidInput)

	// ErrReductionBudget is returned when reduction exceeds
	// Options.MaxColumnOps column operations.
	ErrReductionBudget = fmt.Errorf("persistence: %w: column operation budget exceeded", ripsgo.ErrResourceLimit)

	// ErrTimeLimit is returned when reduction outlives Options.TimeLimit.
	ErrTimeLimit = fmt.Errorf("persistence: %w: time limit exceeded", ripsgo.ErrResourceLimit)
)

// DefaultMaxColumnOps bounds the total symmetric-difference work of one
// reduction. The worst case is cubic in filtration size; this default
// keeps a pathological input to seconds, not hours.
const DefaultMaxColumnOps = 100_000_000

// Options configures Compute.
type Options struct {
	// IncludeZeroPersistence keeps pairs with death == birth instead of
	// dropping them (the default, matching standard Rips tooling).
	IncludeZeroPersistence bool

	// MaxColumnOps caps total column-addition work; ≤ 0 means
	// DefaultMaxColumnOps.
	MaxColumnOps int

	// TimeLimit is an optional wall-clock budget; 0 disables it.
	TimeLimit time.Duration
}

// Pair is one persistence feature: a homology class of the given
// dimension born and dying at the given scales. Death is +Inf for
// classes alive at the end of the studied range.
type Pair struct {
	Dimension int
	Birth     float64
	Death     float64
}

// Infinite reports whether the class never dies within the studied range.
func (p Pair) Infinite() bool { return math.IsInf(p.Death, 1) }

// Persistence returns the lifespan Death − Birth (+Inf for essential
// classes).
func (p Pair) Persistence() float64 { return p.Death - p.Birth }

// Diagram is a persistence diagram: pairs sorted by (Dimension, Birth,
// Death), immutable once computed.
type Diagram struct {
	// Pairs in (Dimension, Birth, Death) order.
	Pairs []Pair

	// MaxDimension is the highest reported homology dimension.
	MaxDimension int
}

// Len returns the number of pairs.
func (d *Diagram) Len() int { return len(d.Pairs) }

// ByDimension returns the pairs of one homology dimension, in diagram
// order. The returned slice aliases the diagram; treat it as read-only.
func (d *Diagram) ByDimension(dim int) []Pair {
	lo := 0
	for lo < len(d.Pairs) && d.Pairs[lo].Dimension < dim {
		lo++
	}
	hi := lo
	for hi < len(d.Pairs) && d.Pairs[hi].Dimension == dim {
		hi++
	}

	return d.Pairs[lo:hi]
}
