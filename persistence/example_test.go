package persistence_test

import (
	"fmt"
	"math"

	"github.com/jrfloren/ripsgo/metric"
	"github.com/jrfloren/ripsgo/persistence"
	"github.com/jrfloren/ripsgo/rips"
)

// ExampleCompute runs the full chain on a unit square: three merges at
// scale 1, one immortal component, and a loop alive from 1 to √2.
func ExampleCompute() {
	points := [][]float64{{0, 0}, {0, 1}, {1, 1}, {1, 0}}
	dm, err := metric.NewDistanceMatrix(points, metric.Euclidean)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	f, err := rips.Build(dm, rips.Options{MaxScale: math.Sqrt2, MaxDimension: 1})
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	d, err := persistence.Compute(f, persistence.Options{})
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	for _, p := range d.Pairs {
		death := "inf"
		if !p.Infinite() {
			death = fmt.Sprintf("%.4f", p.Death)
		}
		fmt.Printf("H%d birth=%.0f death=%s\n", p.Dimension, p.Birth, death)
	}
	// Output:
	// H0 birth=0 death=1.0000
	// H0 birth=0 death=1.0000
	// H0 birth=0 death=1.0000
	// H0 birth=0 death=inf
	// H1 birth=1 death=1.4142
}
