package rips_test

import (
	"fmt"

	"github.com/jrfloren/ripsgo/metric"
	"github.com/jrfloren/ripsgo/rips"
)

// ExampleBuild constructs the full filtration of an equilateral triangle:
// three vertices at scale 0, three edges and the filled triangle at the
// side length.
func ExampleBuild() {
	dm, err := metric.DistanceMatrixFromDense([][]float64{
		{0, 2, 2},
		{2, 0, 2},
		{2, 2, 0},
	})
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	f, err := rips.Build(dm, rips.Options{MaxScale: 2, MaxDimension: 1})
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	for _, s := range f.Simplices {
		fmt.Printf("dim=%d birth=%.0f vertices=%v\n", s.Dim(), s.Birth, s.Vertices)
	}
	// Output:
	// dim=0 birth=0 vertices=[0]
	// dim=0 birth=0 vertices=[1]
	// dim=0 birth=0 vertices=[2]
	// dim=1 birth=2 vertices=[0 1]
	// dim=1 birth=2 vertices=[0 2]
	// dim=1 birth=2 vertices=[1 2]
	// dim=2 birth=2 vertices=[0 1 2]
}
