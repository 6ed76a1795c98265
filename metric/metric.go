package metric

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
)

// Func computes the distance between two equal-length vectors.
// Implementations must be pure and symmetric: f(a,b) == f(b,a).
// Callers guarantee len(a) == len(b); constructors in this package
// validate dimensionality before any Func is invoked.
type Func func(a, b []float64) float64

// Euclidean is the L2 distance. This is the default metric of the
// engine, matching the convention of standard Rips tooling.
func Euclidean(a, b []float64) float64 {
	return floats.Distance(a, b, 2)
}

// SquaredEuclidean is the L2 distance without the final square root.
// Useful when only the relative order of distances matters; note that
// filtration scales then live in squared units.
func SquaredEuclidean(a, b []float64) float64 {
	var sum float64
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}

	return sum
}

// Manhattan is the L1 (city-block) distance.
func Manhattan(a, b []float64) float64 {
	return floats.Distance(a, b, 1)
}

// Chebyshev is the L∞ distance: the largest coordinate difference.
func Chebyshev(a, b []float64) float64 {
	return floats.Distance(a, b, math.Inf(1))
}

// Cosine is the cosine distance 1 − cos(a,b). A zero vector yields NaN
// (0/0), which constructors reject with ErrBadValue.
func Cosine(a, b []float64) float64 {
	var dot, na, nb float64
	for i := range a {
		dot += a[i] * b[i]
		na += a[i] * a[i]
		nb += b[i] * b[i]
	}

	return 1 - dot/(math.Sqrt(na)*math.Sqrt(nb))
}

// byName maps the CLI/config spelling of each metric to its Func.
var byName = map[string]Func{
	"euclidean":         Euclidean,
	"squared_euclidean": SquaredEuclidean,
	"manhattan":         Manhattan,
	"chebyshev":         Chebyshev,
	"cosine":            Cosine,
}

// ByName resolves a metric by its lowercase name. Returns ErrUnknownMetric
// for names outside Names().
func ByName(name string) (Func, error) {
	f, ok := byName[name]
	if !ok {
		return nil, ErrUnknownMetric
	}

	return f, nil
}

// Names lists the recognized metric names in sorted order.
func Names() []string {
	names := make([]string, 0, len(byName))
	for name := range byName {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}
