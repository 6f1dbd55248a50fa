// internal/output/rows.go
package output

import (
	"encoding/csv"
	"io"
	"strconv"

	"indexdist/internal/longform"
)

// FormatRecord returns the delimited cells of one long-form record.
func FormatRecord(r longform.Record) []string {
	row := make([]string, 0, 2+len(r.Distances))
	row = append(row, r.RefName, r.TestName)
	for _, d := range r.Distances {
		row = append(row, strconv.Itoa(d))
	}
	return row
}

// FormatStacked returns the delimited cells of one stacked row.
func FormatStacked(s longform.StackedRecord) []string {
	return []string{s.RefName, s.TestName, s.Channel, strconv.Itoa(s.Distance)}
}

// WriteDelimited writes the long-form table with the given separator.
func WriteDelimited(w io.Writer, t *longform.Table, comma rune, header bool) error {
	cw := csv.NewWriter(w)
	cw.Comma = comma
	if header {
		if err := cw.Write(t.Columns()); err != nil {
			return err
		}
	}
	for _, r := range t.Records {
		if err := cw.Write(FormatRecord(r)); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteStackedDelimited writes stacked rows in the order given.
func WriteStackedDelimited(w io.Writer, rows []longform.StackedRecord, comma rune, header bool) error {
	cw := csv.NewWriter(w)
	cw.Comma = comma
	if header {
		if err := cw.Write(longform.StackedColumns); err != nil {
			return err
		}
	}
	for _, s := range rows {
		if err := cw.Write(FormatStacked(s)); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
