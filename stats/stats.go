package stats

import (
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"strconv"

	"gonum.org/v1/gonum/stat"

	"github.com/jrfloren/ripsgo"
)

var (
	// ErrEmptyInput indicates an empty sample.
	ErrEmptyInput = fmt.Errorf("stats: %w: empty sample", ripsgo.ErrInvalidInput)

	// ErrDimensionMismatch indicates rows of unequal length in a point
	// cloud.
	ErrDimensionMismatch = fmt.Errorf("stats: %w: inconsistent row dimensionality", ripsgo.ErrInvalidInput)
)

// Summary holds the descriptive statistics of one sample. Std is the
// sample standard deviation (n−1 denominator) and is NaN for a single
// observation, matching spreadsheet conventions.
type Summary struct {
	Count  int
	Mean   float64
	Std    float64
	Min    float64
	Q25    float64
	Median float64
	Q75    float64
	Max    float64
}

// Describe computes the summary of xs. Fails with ErrEmptyInput on an
// empty sample. The input is not modified.
func Describe(xs []float64) (Summary, error) {
	if len(xs) == 0 {
		return Summary{}, ErrEmptyInput
	}
	sorted := make([]float64, len(xs))
	copy(sorted, xs)
	sort.Float64s(sorted)

	return Summary{
		Count:  len(sorted),
		Mean:   stat.Mean(sorted, nil),
		Std:    stat.StdDev(sorted, nil),
		Min:    sorted[0],
		Q25:    stat.Quantile(0.25, stat.LinInterp, sorted, nil),
		Median: stat.Quantile(0.5, stat.LinInterp, sorted, nil),
		Q75:    stat.Quantile(0.75, stat.LinInterp, sorted, nil),
		Max:    sorted[len(sorted)-1],
	}, nil
}

// DescribeColumns summarizes each coordinate of a point cloud: one
// Summary per column. All rows must share the same non-zero length.
func DescribeColumns(points [][]float64) ([]Summary, error) {
	if len(points) == 0 {
		return nil, ErrEmptyInput
	}
	dim := len(points[0])
	if dim == 0 {
		return nil, ErrDimensionMismatch
	}
	for _, p := range points {
		if len(p) != dim {
			return nil, ErrDimensionMismatch
		}
	}

	out := make([]Summary, dim)
	col := make([]float64, len(points))
	for d := 0; d < dim; d++ {
		for i, p := range points {
			col[i] = p[d]
		}
		s, err := Describe(col)
		if err != nil {
			return nil, err
		}
		out[d] = s
	}

	return out, nil
}

// rowOrder is the fixed layout of the CSV table, one statistic per row,
// matching the spreadsheet summaries kept with each shot.
var rowOrder = []string{"count", "mean", "std", "min", "25%", "50%", "75%", "max"}

// WriteCSV writes one column per Summary under the given names, one
// statistic per row. len(names) must equal len(sums).
func WriteCSV(w io.Writer, names []string, sums []Summary) error {
	if len(names) != len(sums) {
		return ErrDimensionMismatch
	}
	cw := csv.NewWriter(w)
	if err := cw.Write(append([]string{""}, names...)); err != nil {
		return err
	}
	for _, row := range rowOrder {
		rec := make([]string, 0, len(sums)+1)
		rec = append(rec, row)
		for _, s := range sums {
			rec = append(rec, formatStat(row, s))
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()

	return cw.Error()
}

// formatStat renders one cell of the table.
func formatStat(row string, s Summary) string {
	switch row {
	case "count":
		return strconv.Itoa(s.Count)
	case "mean":
		return formatFloat(s.Mean)
	case "std":
		return formatFloat(s.Std)
	case "min":
		return formatFloat(s.Min)
	case "25%":
		return formatFloat(s.Q25)
	case "50%":
		return formatFloat(s.Median)
	case "75%":
		return formatFloat(s.Q75)
	default:
		return formatFloat(s.Max)
	}
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
