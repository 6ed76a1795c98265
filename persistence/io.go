package persistence

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strconv"
)

// Serialization of diagrams as (dimension, birth, death) triples, the
// interchange format consumed by downstream plotting and classification.
// Infinite deaths are written as "inf" in CSV and null in JSON.

// WriteCSV writes the diagram as CSV with a dimension,birth,death header.
// Floats use the shortest exact representation, so a written diagram
// parses back bit-identical.
func (d *Diagram) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"dimension", "birth", "death"}); err != nil {
		return err
	}
	for _, p := range d.Pairs {
		death := "inf"
		if !p.Infinite() {
			death = strconv.FormatFloat(p.Death, 'g', -1, 64)
		}
		rec := []string{
			strconv.Itoa(p.Dimension),
			strconv.FormatFloat(p.Birth, 'g', -1, 64),
			death,
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()

	return cw.Error()
}

// pairJSON is the wire form of one Pair; a nil Death marks an essential
// class.
type pairJSON struct {
	Dimension int      `json:"dimension"`
	Birth     float64  `json:"birth"`
	Death     *float64 `json:"death"`
}

// MarshalJSON encodes the pair with null standing in for an infinite
// death, since JSON has no Inf literal.
func (p Pair) MarshalJSON() ([]byte, error) {
	out := pairJSON{Dimension: p.Dimension, Birth: p.Birth}
	if !p.Infinite() {
		death := p.Death
		out.Death = &death
	}

	return json.Marshal(out)
}

// WriteJSON writes the diagram as a JSON array of pairs.
func (d *Diagram) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)

	return enc.Encode(d.Pairs)
}
