package rips

import (
	"math"
	"sort"
	"time"

	"github.com/jrfloren/ripsgo/metric"
)

// timeCheckEvery is the emission interval between wall-clock checks.
// Coarse on purpose: time.Now in the inner loop would dominate runtime.
const timeCheckEvery = 4096

// Build constructs the Vietoris–Rips filtration of dm up to opts.MaxScale,
// with simplices up to opts.MaxDimension+1 (see package doc for why).
//
// Algorithm Outline (incremental lower-neighbor expansion):
//  1. For each vertex i, collect its lower neighbors
//     N(i) = { j < i : d(i,j) ≤ MaxScale }, ascending.
//  2. For each vertex v, recursively extend {v} by vertices from the
//     running lower-neighbor intersection; each extension updates the
//     birth to the max distance against the existing vertices.
//  3. Sort all simplices by (Birth, Dim, lexicographic vertex order).
//
// Every simplex is produced exactly once and the final order is a valid
// filtration: faces have smaller birth, or equal birth and smaller
// dimension, or equal both and smaller vertex sequence.
//
// Errors: ErrNilMatrix, ErrScaleNegative, ErrDimensionNegative on bad
// input; ErrTooManyPoints, ErrTooManySimplices, ErrTimeLimit on budget
// breach. On error no partial filtration is returned.
//
// Complexity: O(S·k) time for S emitted simplices of top dimension k+1,
// plus O(S log S) for the sort; O(S·k) memory.
func Build(dm *metric.DistanceMatrix, opts Options) (*Filtration, error) {
	if dm == nil {
		return nil, ErrNilMatrix
	}
	if opts.MaxScale < 0 || math.IsNaN(opts.MaxScale) {
		return nil, ErrScaleNegative
	}
	if opts.MaxDimension < 0 {
		return nil, ErrDimensionNegative
	}

	limits := opts.Limits.normalized()
	n := dm.Len()
	if n > limits.MaxPoints {
		return nil, ErrTooManyPoints
	}

	// Stage 1: lower-neighbor lists under the scale threshold.
	lower := make([][]int, n)
	for i := 0; i < n; i++ {
		for j := 0; j < i; j++ {
			if dm.At(j, i) <= opts.MaxScale {
				lower[i] = append(lower[i], j)
			}
		}
	}

	b := expander{
		dm:      dm,
		lower:   lower,
		topSize: opts.MaxDimension + 2, // vertices per largest simplex
		maxOut:  limits.MaxSimplices,
	}
	if opts.TimeLimit > 0 {
		b.deadline = time.Now().Add(opts.TimeLimit)
	}

	// Stage 2: expand from every vertex.
	for v := 0; v < n; v++ {
		if err := b.addCofaces([]int{v}, 0, lower[v]); err != nil {
			return nil, err
		}
	}

	// Stage 3: fixed total order.
	sort.Slice(b.out, func(i, j int) bool {
		return lessSimplex(b.out[i], b.out[j])
	})

	return &Filtration{
		Simplices:    b.out,
		Points:       n,
		MaxScale:     opts.MaxScale,
		MaxDimension: opts.MaxDimension,
	}, nil
}

// expander carries the recursion state of one Build invocation.
type expander struct {
	dm       *metric.DistanceMatrix
	lower    [][]int
	topSize  int
	maxOut   int
	deadline time.Time
	out      []Simplex
	emitted  int
}

// addCofaces emits the simplex (verts, birth) and recursively extends it
// by each member of nbrs, the intersection of lower-neighbor lists of all
// current vertices. New vertices come from below, so prepending keeps the
// vertex list sorted.
func (b *expander) addCofaces(verts []int, birth float64, nbrs []int) error {
	if len(b.out) >= b.maxOut {
		return ErrTooManySimplices
	}
	b.emitted++
	if !b.deadline.IsZero() && b.emitted%timeCheckEvery == 0 && time.Now().After(b.deadline) {
		return ErrTimeLimit
	}

	owned := make([]int, len(verts))
	copy(owned, verts)
	b.out = append(b.out, Simplex{Vertices: owned, Birth: birth})

	if len(verts) >= b.topSize {
		return nil
	}
	for _, u := range nbrs {
		ext := birth
		for _, w := range verts {
			if d := b.dm.At(u, w); d > ext {
				ext = d
			}
		}
		if err := b.addCofaces(prepend(u, verts), ext, intersect(nbrs, b.lower[u])); err != nil {
			return err
		}
	}

	return nil
}

// prepend returns a fresh slice [v, verts...].
func prepend(v int, verts []int) []int {
	out := make([]int, 0, len(verts)+1)
	out = append(out, v)

	return append(out, verts...)
}

// intersect merges two ascending int slices into their intersection.
func intersect(a, c []int) []int {
	var out []int
	i, j := 0, 0
	for i < len(a) && j < len(c) {
		switch {
		case a[i] < c[j]:
			i++
		case a[i] > c[j]:
			j++
		default:
			out = append(out, a[i])
			i++
			j++
		}
	}

	return out
}

// lessSimplex is the filtration order: birth, then dimension, then
// vertex-lexicographic. Total over distinct simplices, hence a stable,
// reproducible ordering.
func lessSimplex(a, c Simplex) bool {
	if a.Birth != c.Birth {
		return a.Birth < c.Birth
	}
	if len(a.Vertices) != len(c.Vertices) {
		return len(a.Vertices) < len(c.Vertices)
	}
	for i := range a.Vertices {
		if a.Vertices[i] != c.Vertices[i] {
			return a.Vertices[i] < c.Vertices[i]
		}
	}

	return false
}
