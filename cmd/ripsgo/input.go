package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
)

// CSV loading for the three input shapes. The first row is skipped when
// any of its fields fails to parse as a number, so exported tables with
// headers load unchanged.

// readTable parses a CSV file into rows of float64.
func readTable(path string) ([][]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1 // validated numerically below
	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%s: empty file", path)
	}

	start := 0
	if !numericRecord(records[0]) {
		start = 1
	}
	rows := make([][]float64, 0, len(records)-start)
	for i := start; i < len(records); i++ {
		row := make([]float64, len(records[i]))
		for j, field := range records[i] {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, fmt.Errorf("%s: row %d column %d: %w", path, i+1, j+1, err)
			}
			row[j] = v
		}
		rows = append(rows, row)
	}

	return rows, nil
}

// numericRecord reports whether every field parses as a float.
func numericRecord(rec []string) bool {
	if len(rec) == 0 {
		return false
	}
	for _, field := range rec {
		if _, err := strconv.ParseFloat(field, 64); err != nil {
			return false
		}
	}

	return true
}

// seriesColumn extracts one column as a 1-D trace. A negative index
// selects the last column, which holds the amplitude in the usual
// time,amplitude exports.
func seriesColumn(rows [][]float64, col int) ([]float64, error) {
	out := make([]float64, len(rows))
	for i, row := range rows {
		c := col
		if c < 0 {
			c = len(row) - 1
		}
		if c >= len(row) {
			return nil, fmt.Errorf("row %d has no column %d", i+1, col)
		}
		out[i] = row[c]
	}

	return out, nil
}
