package metric

import "math"

// symTol is the structural tolerance for symmetry and diagonal checks on
// dense input. It is a fixed policy, not a user knob: distances that differ
// by more than this are treated as genuinely asymmetric.
const symTol = 1e-12

// DistanceMatrix holds symmetric pairwise distances between n points in
// condensed form: only the strict upper triangle is stored, row-major,
// n(n-1)/2 values. The diagonal is implicitly zero.
//
// A DistanceMatrix is immutable after construction; readers may share it
// freely across goroutines.
type DistanceMatrix struct {
	n int
	d []float64
}

// Len returns the number of points n.
func (m *DistanceMatrix) Len() int { return m.n }

// At returns the distance between points i and j. At(i,i) is always 0.
// Out-of-range indices are a programmer error and panic.
func (m *DistanceMatrix) At(i, j int) float64 {
	if i < 0 || j < 0 || i >= m.n || j >= m.n {
		panic("metric: DistanceMatrix index out of range")
	}
	if i == j {
		return 0
	}
	if i > j {
		i, j = j, i
	}

	return m.d[m.index(i, j)]
}

// Max returns the largest pairwise distance. Handy as an automatic upper
// bound for the filtration scale.
func (m *DistanceMatrix) Max() float64 {
	var max float64
	for _, v := range m.d {
		if v > max {
			max = v
		}
	}

	return max
}

// index maps (i,j) with i<j onto the condensed slice.
func (m *DistanceMatrix) index(i, j int) int {
	return i*(2*m.n-i-1)/2 + (j - i - 1)
}

// NewDistanceMatrix computes all pairwise distances between points under f.
//
// Contract:
//   - len(points) ≥ 2, otherwise ErrTooFewPoints.
//   - all points share the same non-zero dimensionality, otherwise
//     ErrDimensionMismatch.
//   - all coordinates finite and all resulting distances finite and
//     non-negative, otherwise ErrBadValue.
//
// Complexity: O(n²·dim) time, O(n²) space (condensed).
func NewDistanceMatrix(points [][]float64, f Func) (*DistanceMatrix, error) {
	if f == nil {
		return nil, ErrNilMetric
	}
	if err := ValidatePoints(points); err != nil {
		return nil, err
	}

	n := len(points)
	m := &DistanceMatrix{n: n, d: make([]float64, n*(n-1)/2)}
	k := 0
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			v := f(points[i], points[j])
			if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
				return nil, ErrBadValue
			}
			m.d[k] = v
			k++
		}
	}

	return m, nil
}

// DistanceMatrixFromDense wraps a precomputed dense matrix, validating it
// as a distance matrix: square with n ≥ 2, zero diagonal, symmetric within
// symTol, finite and non-negative everywhere. Entries (i,j) and (j,i) may
// differ by at most symTol; the upper triangle wins.
//
// Complexity: O(n²).
func DistanceMatrixFromDense(rows [][]float64) (*DistanceMatrix, error) {
	n := len(rows)
	if n < 2 {
		return nil, ErrTooFewPoints
	}
	for _, row := range rows {
		if len(row) != n {
			return nil, ErrNotSquare
		}
	}
	for i := 0; i < n; i++ {
		if math.Abs(rows[i][i]) > symTol {
			return nil, ErrNonZeroDiagonal
		}
	}

	m := &DistanceMatrix{n: n, d: make([]float64, n*(n-1)/2)}
	k := 0
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			v := rows[i][j]
			if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
				return nil, ErrBadValue
			}
			if math.Abs(v-rows[j][i]) > symTol {
				return nil, ErrAsymmetry
			}
			m.d[k] = v
			k++
		}
	}

	return m, nil
}

// ValidatePoints checks the point-cloud preconditions shared by every
// constructor: at least two points, uniform non-zero dimensionality,
// finite coordinates.
func ValidatePoints(points [][]float64) error {
	if len(points) < 2 {
		return ErrTooFewPoints
	}
	dim := len(points[0])
	if dim == 0 {
		return ErrDimensionMismatch
	}
	for _, p := range points {
		if len(p) != dim {
			return ErrDimensionMismatch
		}
		for _, c := range p {
			if math.IsNaN(c) || math.IsInf(c, 0) {
				return ErrBadValue
			}
		}
	}

	return nil
}
