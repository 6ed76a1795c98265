package metric

import "math"

// DTW — Dynamic Time Warping distance between two trace windows.
//
// Description:
//
//	DTW measures similarity between two sequences that may vary in speed
//	by warping the time axis to minimize cumulative |a[i]−b[j]| cost.
//	For diagnostic traces this turns raw windows into a distance matrix
//	without choosing an embedding first.
//
// Algorithm Outline (rolling, distance only):
//  1. Let n = len(a), m = len(b). Keep two rows of length m+1.
//  2. prev[0] = 0; prev[j] = +∞ for j ≥ 1.
//  3. For i = 1..n, j = 1..m (with |i−j| ≤ Window when constrained):
//     cost = |a[i-1] − b[j-1]|
//     curr[j] = cost + min(prev[j]+P, curr[j-1]+P, prev[j-1])
//     where P is the slope penalty for insertion/deletion steps.
//  4. distance = last row at m.
//
// Complexity:
//
//	Time   = O(n·m)
//	Memory = O(m)
//
// Errors:
//   - ErrEmptySeries — if either input is empty.
//   - ErrBadValue    — if SlopePenalty is negative or an input is non-finite.
//   - ErrNoAlignment — if the window admits no warping path at all.

// DTWOptions configures Dynamic Time Warping.
//
// Fields:
//   - Window       — Sakoe–Chiba band half-width: only |i−j| ≤ Window cells
//     are visited. Zero or negative disables the constraint.
//   - SlopePenalty — extra cost for insertion/deletion steps, biasing the
//     warp toward the diagonal. Must be ≥ 0.
type DTWOptions struct {
	Window       int
	SlopePenalty float64
}

// DTW computes the Dynamic Time Warping distance between a and b.
func DTW(a, b []float64, opts DTWOptions) (float64, error) {
	n, m := len(a), len(b)
	if n == 0 || m == 0 {
		return 0, ErrEmptySeries
	}
	if opts.SlopePenalty < 0 || math.IsNaN(opts.SlopePenalty) {
		return 0, ErrBadValue
	}
	for _, v := range a {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return 0, ErrBadValue
		}
	}
	for _, v := range b {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return 0, ErrBadValue
		}
	}

	window := opts.Window
	if window <= 0 {
		window = n + m // effectively unconstrained
	}

	inf := math.Inf(1)
	prev := make([]float64, m+1)
	curr := make([]float64, m+1)
	for j := 1; j <= m; j++ {
		prev[j] = inf
	}

	penalty := opts.SlopePenalty
	for i := 1; i <= n; i++ {
		curr[0] = inf
		for j := 1; j <= m; j++ {
			if abs(i-j) > window {
				curr[j] = inf
				continue
			}
			cost := math.Abs(a[i-1] - b[j-1])
			curr[j] = cost + min3(prev[j]+penalty, curr[j-1]+penalty, prev[j-1])
		}
		prev, curr = curr, prev
	}

	dist := prev[m]
	if math.IsInf(dist, 1) {
		return 0, ErrNoAlignment
	}

	return dist, nil
}

// NewDTWDistanceMatrix builds a DistanceMatrix from pairwise DTW distances
// between trace windows. Unlike NewDistanceMatrix, windows may differ in
// length — that is exactly the case DTW exists for.
//
// Contract:
//   - len(windows) ≥ 2, otherwise ErrTooFewPoints.
//   - every window non-empty with finite samples.
//   - every pair must admit an alignment under opts.Window, otherwise
//     ErrNoAlignment.
//
// Complexity: O(n²·L²) time for n windows of typical length L.
func NewDTWDistanceMatrix(windows [][]float64, opts DTWOptions) (*DistanceMatrix, error) {
	n := len(windows)
	if n < 2 {
		return nil, ErrTooFewPoints
	}

	m := &DistanceMatrix{n: n, d: make([]float64, n*(n-1)/2)}
	k := 0
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			v, err := DTW(windows[i], windows[j], opts)
			if err != nil {
				return nil, err
			}
			m.d[k] = v
			k++
		}
	}

	return m, nil
}

// abs returns the absolute value of an int.
func abs(x int) int {
	if x < 0 {
		return -x
	}

	return x
}

// min3 returns the minimum of three float64 values.
func min3(a, b, c float64) float64 {
	if a < b {
		if a < c {
			return a
		}

		return c
	}
	if b < c {
		return b
	}

	return c
}
