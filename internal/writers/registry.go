// internal/writers/registry.go
package writers

import (
	"io"
	"sort"

	"github.com/pkg/errors"

	"indexdist/internal/longform"
)

// TableWriter serializes a long-form table. header is ignored by formats
// that have none.
type TableWriter func(w io.Writer, t *longform.Table, header bool) error

// StackedWriter serializes stacked rows in the order given.
type StackedWriter func(w io.Writer, rows []longform.StackedRecord, header bool) error

// Writer registries (format → handler). Entries are registered in init()
// blocks; last registration wins.
var (
	tableWriters   = map[string]TableWriter{}
	stackedWriters = map[string]StackedWriter{}
)

// Register installs fn as the writer for format.
func Register(format string, fn TableWriter) { tableWriters[format] = fn }

// RegisterStacked installs fn as the stacked-table writer for format.
func RegisterStacked(format string, fn StackedWriter) { stackedWriters[format] = fn }

// Registered returns the known formats, sorted.
func Registered() []string {
	out := make([]string, 0, len(tableWriters))
	for f := range tableWriters {
		out = append(out, f)
	}
	sort.Strings(out)
	return out
}

// Write dispatches to the writer registered for format.
func Write(format string, w io.Writer, t *longform.Table, header bool) error {
	fn, ok := tableWriters[format]
	if !ok {
		return errors.Errorf("unknown results format %q (no writer registered)", format)
	}
	return fn(w, t, header)
}

// WriteStacked stacks t and dispatches to the stacked writer for format.
func WriteStacked(format string, w io.Writer, t *longform.Table, header bool) error {
	fn, ok := stackedWriters[format]
	if !ok {
		return errors.Errorf("unknown stacked format %q (no writer registered)", format)
	}
	return fn(w, t.Stack(), header)
}
