// Package export writes simulation tables as CSV.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
)

// Record is a table row that knows its column names.
type Record interface {
	Header() []string
	Record() []string
}

// WriteCSV writes a header line followed by one line per row. The header
// comes from the zero value of R, so an empty table still gets one.
func WriteCSV[R Record](w io.Writer, rows []R) error {
	var zero R
	cw := csv.NewWriter(w)
	if err := cw.Write(zero.Header()); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for i, r := range rows {
		if err := cw.Write(r.Record()); err != nil {
			return fmt.Errorf("write row %d: %w", i, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// Records converts rows into string records, header first.
func Records[R Record](rows []R) [][]string {
	var zero R
	out := make([][]string, 0, len(rows)+1)
	out = append(out, zero.Header())
	for _, r := range rows {
		out = append(out, r.Record())
	}
	return out
}
