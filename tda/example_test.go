package tda_test

import (
	"context"
	"fmt"

	"github.com/jrfloren/ripsgo/tda"
)

// ExampleAnalyzePoints analyzes a unit square and reports its loop.
func ExampleAnalyzePoints() {
	points := [][]float64{{0, 0}, {0, 1}, {1, 1}, {1, 0}}
	res, err := tda.AnalyzePoints(context.Background(), points, tda.DefaultOptions())
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	for _, p := range res.Diagram.ByDimension(1) {
		fmt.Printf("loop born=%.0f dead=%.4f\n", p.Birth, p.Death)
	}
	// Output:
	// loop born=1 dead=1.4142
}
