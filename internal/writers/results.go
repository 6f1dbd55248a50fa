package writers

import (
	"io"

	"indexdist/internal/longform"
	"indexdist/internal/output"
)

func init() {
	Register(output.FormatCSV, func(w io.Writer, t *longform.Table, header bool) error {
		return output.WriteDelimited(w, t, ',', header)
	})
	Register(output.FormatTSV, func(w io.Writer, t *longform.Table, header bool) error {
		return output.WriteDelimited(w, t, '\t', header)
	})
	Register(output.FormatJSON, func(w io.Writer, t *longform.Table, _ bool) error {
		return output.WriteJSON(w, t)
	})
	Register(output.FormatJSONL, func(w io.Writer, t *longform.Table, _ bool) error {
		return output.WriteJSONL(w, t)
	})

	RegisterStacked(output.FormatCSV, func(w io.Writer, rows []longform.StackedRecord, header bool) error {
		return output.WriteStackedDelimited(w, rows, ',', header)
	})
	RegisterStacked(output.FormatTSV, func(w io.Writer, rows []longform.StackedRecord, header bool) error {
		return output.WriteStackedDelimited(w, rows, '\t', header)
	})
	RegisterStacked(output.FormatJSON, func(w io.Writer, rows []longform.StackedRecord, _ bool) error {
		return output.WriteStackedJSON(w, rows)
	})
	RegisterStacked(output.FormatJSONL, func(w io.Writer, rows []longform.StackedRecord, _ bool) error {
		return output.WriteStackedJSONL(w, rows)
	})
}
