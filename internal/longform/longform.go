// internal/longform/longform.go
package longform

import (
	"fmt"
	"strings"

	"indexdist/internal/matrix"
)

// Fixed column names of the long-form and stacked tables.
const (
	RefColumn      = "ref-index-name"
	TestColumn     = "test-index-name"
	ChannelColumn  = "index"
	DistanceColumn = "hamming_distance"

	distanceSuffix = "_hamming_distance"
)

// ColumnName is the distance column of one channel in the long-form table.
func ColumnName(channel string) string { return channel + distanceSuffix }

// AssemblyError reports per-channel matrices that cannot be merged.
type AssemblyError struct {
	Msg string
}

func (e *AssemblyError) Error() string { return "assemble long-form table: " + e.Msg }

// Record is one (reference, test) pair with one distance per channel,
// aligned with Table.Channels.
type Record struct {
	RefName   string
	TestName  string
	Distances []int
}

// Table is the long-form result: one record per (reference, test) pair.
type Table struct {
	Channels []string
	Records  []Record
}

// Columns returns the header of the long-form table.
func (t *Table) Columns() []string {
	cols := []string{RefColumn, TestColumn}
	for _, ch := range t.Channels {
		cols = append(cols, ColumnName(ch))
	}
	return cols
}

// Assemble merges per-channel matrices into one long-form table. Every
// matrix must cover the same reference and test names in the same order.
// Records are emitted reference-major, test-minor.
func Assemble(ms []*matrix.Matrix) (*Table, error) {
	if len(ms) == 0 {
		return nil, &AssemblyError{Msg: "no channel matrices"}
	}
	refs, tests := ms[0].RefNames(), ms[0].TestNames()
	seen := make(map[string]struct{}, len(ms))
	t := &Table{Channels: make([]string, 0, len(ms))}
	for _, m := range ms {
		if m == nil {
			return nil, &AssemblyError{Msg: "missing channel matrix"}
		}
		if _, dup := seen[m.Channel]; dup {
			return nil, &AssemblyError{Msg: fmt.Sprintf("duplicate channel %q", m.Channel)}
		}
		seen[m.Channel] = struct{}{}
		if !sameNames(refs, m.RefNames()) {
			return nil, &AssemblyError{Msg: fmt.Sprintf("channel %q covers different reference indices than %q", m.Channel, ms[0].Channel)}
		}
		if !sameNames(tests, m.TestNames()) {
			return nil, &AssemblyError{Msg: fmt.Sprintf("channel %q covers different test indices than %q", m.Channel, ms[0].Channel)}
		}
		t.Channels = append(t.Channels, m.Channel)
	}

	t.Records = make([]Record, 0, len(refs)*len(tests))
	for i, r := range refs {
		for j, s := range tests {
			rec := Record{RefName: r, TestName: s, Distances: make([]int, len(ms))}
			for k, m := range ms {
				rec.Distances[k] = m.At(i, j)
			}
			t.Records = append(t.Records, rec)
		}
	}
	return t, nil
}

func sameNames(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// String renders the table as comma-separated lines; handy in test failures.
func (t *Table) String() string {
	var sb strings.Builder
	sb.WriteString(strings.Join(t.Columns(), ","))
	sb.WriteByte('\n')
	for _, r := range t.Records {
		sb.WriteString(r.RefName)
		sb.WriteByte(',')
		sb.WriteString(r.TestName)
		for _, d := range r.Distances {
			fmt.Fprintf(&sb, ",%d", d)
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
