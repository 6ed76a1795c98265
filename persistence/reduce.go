package persistence

import (
	"encoding/binary"
	"math"
	"sort"
	"time"

	"github.com/jrfloren/ripsgo/rips"
)

// timeCheckEvery is the column interval between wall-clock checks.
const timeCheckEvery = 1024

// Compute reduces the boundary matrix of f and returns its persistence
// diagram for dimensions 0..f.MaxDimension.
//
// Contract:
//   - f must list every face of every simplex before the simplex itself,
//     with face births ≤ simplex birth (rips.Build guarantees this);
//     violations yield ErrFiltrationOrder.
//   - An empty filtration yields an empty diagram.
//
// Errors: ErrNilFiltration, ErrFiltrationOrder on bad input;
// ErrReductionBudget, ErrTimeLimit on budget breach. On error no partial
// diagram is returned.
//
// Complexity: O(m³) worst case for m simplices, far lower in practice;
// memory O(total column length).
func Compute(f *rips.Filtration, opts Options) (*Diagram, error) {
	if f == nil {
		return nil, ErrNilFiltration
	}
	maxOps := opts.MaxColumnOps
	if maxOps <= 0 {
		maxOps = DefaultMaxColumnOps
	}
	var deadline time.Time
	if opts.TimeLimit > 0 {
		deadline = time.Now().Add(opts.TimeLimit)
	}

	m := len(f.Simplices)
	index := make(map[string]int, m) // vertex key → filtration index
	cols := make([][]int, m)         // reduced columns of killer simplices
	pivotOf := make([]int, m)        // low index → killer column, -1 if free
	creator := make([]bool, m)
	killed := make([]bool, m)
	for i := range pivotOf {
		pivotOf[i] = -1
	}

	var pairs []Pair
	ops := 0
	face := make([]int, 0, 8)
	for j := 0; j < m; j++ {
		if !deadline.IsZero() && j%timeCheckEvery == 0 && time.Now().After(deadline) {
			return nil, ErrTimeLimit
		}
		s := f.Simplices[j]
		k := len(s.Vertices)
		if k == 1 {
			creator[j] = true
			index[vertexKey(s.Vertices)] = j
			continue
		}

		// Boundary column: filtration indices of the k faces.
		col := make([]int, 0, k)
		for drop := 0; drop < k; drop++ {
			face = face[:0]
			face = append(face, s.Vertices[:drop]...)
			face = append(face, s.Vertices[drop+1:]...)
			fi, ok := index[vertexKey(face)]
			if !ok || f.Simplices[fi].Birth > s.Birth {
				return nil, ErrFiltrationOrder
			}
			col = append(col, fi)
		}
		sort.Ints(col)

		// Reduce: add the column owning our low until the low is free or
		// the column empties.
		for len(col) > 0 {
			low := col[len(col)-1]
			p := pivotOf[low]
			if p < 0 {
				break
			}
			ops += len(col) + len(cols[p])
			if ops > maxOps {
				return nil, ErrReductionBudget
			}
			col = symDiff(col, cols[p])
		}

		if len(col) == 0 {
			creator[j] = true
		} else {
			low := col[len(col)-1]
			pivotOf[low] = j
			cols[j] = col
			killed[low] = true
			birth := f.Simplices[low].Birth
			if death := s.Birth; death > birth || opts.IncludeZeroPersistence {
				pairs = append(pairs, Pair{
					Dimension: len(f.Simplices[low].Vertices) - 1,
					Birth:     birth,
					Death:     death,
				})
			}
		}
		index[vertexKey(s.Vertices)] = j
	}

	// Unkilled creators are essential classes. Creators one dimension
	// above MaxDimension are truncation artifacts of the expansion and
	// are not reported.
	inf := math.Inf(1)
	for j := 0; j < m; j++ {
		if !creator[j] || killed[j] {
			continue
		}
		dim := len(f.Simplices[j].Vertices) - 1
		if dim > f.MaxDimension {
			continue
		}
		pairs = append(pairs, Pair{Dimension: dim, Birth: f.Simplices[j].Birth, Death: inf})
	}

	sort.SliceStable(pairs, func(a, b int) bool {
		if pairs[a].Dimension != pairs[b].Dimension {
			return pairs[a].Dimension < pairs[b].Dimension
		}
		if pairs[a].Birth != pairs[b].Birth {
			return pairs[a].Birth < pairs[b].Birth
		}

		return pairs[a].Death < pairs[b].Death
	})

	return &Diagram{Pairs: pairs, MaxDimension: f.MaxDimension}, nil
}

// vertexKey encodes a sorted vertex list as a compact string map key.
func vertexKey(verts []int) string {
	buf := make([]byte, 0, 2*len(verts))
	for _, v := range verts {
		buf = binary.AppendUvarint(buf, uint64(v))
	}

	return string(buf)
}

// symDiff merges two ascending int slices into their symmetric difference.
func symDiff(a, b []int) []int {
	out := make([]int, 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] < b[j]:
			out = append(out, a[i])
			i++
		case a[i] > b[j]:
			out = append(out, b[j])
			j++
		default:
			i++
			j++
		}
	}
	out = append(out, a[i:]...)

	return append(out, b[j:]...)
}
