// Package metric provides distance functions over diagnostic sample vectors
// and the condensed DistanceMatrix consumed by the rips builder.
//
// What lives here:
//
//   - Func — the distance function contract, plus the built-in family:
//     Euclidean, SquaredEuclidean, Manhattan, Chebyshev, Cosine.
//     The Minkowski members delegate to gonum's floats.Distance.
//   - DTW — Dynamic Time Warping between raw (possibly unequal-length)
//     trace windows, for building distance matrices without embedding.
//   - DistanceMatrix — symmetric pairwise distances in condensed upper
//     triangular storage: n(n-1)/2 float64 values, zero diagonal implicit.
//
// Construction entry points:
//
//	dm, err := metric.NewDistanceMatrix(points, metric.Euclidean)
//	dm, err := metric.NewDTWDistanceMatrix(windows, metric.DTWOptions{Window: 10})
//	dm, err := metric.DistanceMatrixFromDense(rows) // precomputed matrices
//
// All constructors validate their input up front (uniform dimensionality,
// at least two points, finite non-negative values; for dense input also
// symmetry within a structural tolerance and a zero diagonal) and return
// sentinels wrapping ripsgo.ErrInvalidInput. Construction is the only
// place validation happens: At is a plain read with no error path.
//
// Determinism: every function here is pure; identical inputs produce
// bit-identical matrices.
package metric
