// internal/seqtable/table.go
package seqtable

import (
	"github.com/pkg/errors"
)

// NameColumn is the header of the unique identifier column.
const NameColumn = "name"

// Entry is one named index with one sequence per channel, aligned with the
// channel list passed to New.
type Entry struct {
	Name string
	Seqs []string
}

// Table is a read-only set of named index sequences. Row order is the order
// the entries were supplied in and is preserved by every accessor.
type Table struct {
	names    []string
	channels []string
	rows     map[string]int
	cols     map[string]int
	seqs     [][]string
}

// New builds a Table. Names must be unique and non-empty; every entry must
// carry exactly one non-empty sequence per channel.
func New(channels []string, entries []Entry) (*Table, error) {
	if len(channels) == 0 {
		return nil, errors.New("seqtable: at least one channel is required")
	}
	t := &Table{
		names:    make([]string, 0, len(entries)),
		channels: append([]string(nil), channels...),
		rows:     make(map[string]int, len(entries)),
		cols:     make(map[string]int, len(channels)),
		seqs:     make([][]string, 0, len(entries)),
	}
	for i, ch := range channels {
		switch {
		case ch == "":
			return nil, errors.Errorf("seqtable: channel %d has an empty name", i+1)
		case ch == NameColumn:
			return nil, errors.Errorf("seqtable: %q cannot be used as a channel", NameColumn)
		}
		if _, dup := t.cols[ch]; dup {
			return nil, errors.Errorf("seqtable: duplicate channel %q", ch)
		}
		t.cols[ch] = i
	}
	for _, e := range entries {
		if e.Name == "" {
			return nil, errors.New("seqtable: empty index name")
		}
		if _, dup := t.rows[e.Name]; dup {
			return nil, errors.Errorf("seqtable: duplicate index name %q", e.Name)
		}
		if len(e.Seqs) != len(channels) {
			return nil, errors.Errorf("seqtable: %q has %d sequences, want %d", e.Name, len(e.Seqs), len(channels))
		}
		for j, s := range e.Seqs {
			if s == "" {
				return nil, errors.Errorf("seqtable: %q has an empty %s sequence", e.Name, channels[j])
			}
		}
		t.rows[e.Name] = len(t.names)
		t.names = append(t.names, e.Name)
		t.seqs = append(t.seqs, append([]string(nil), e.Seqs...))
	}
	return t, nil
}

// Len returns the number of entries.
func (t *Table) Len() int { return len(t.names) }

// Names returns the entry names in table order.
func (t *Table) Names() []string { return append([]string(nil), t.names...) }

// Name returns the name of row i.
func (t *Table) Name(i int) string { return t.names[i] }

// Channels returns the channel names in column order.
func (t *Table) Channels() []string { return append([]string(nil), t.channels...) }

// Columns returns the full header: NameColumn followed by the channels.
func (t *Table) Columns() []string {
	return append([]string{NameColumn}, t.channels...)
}

// HasChannel reports whether ch is one of the table's channels.
func (t *Table) HasChannel(ch string) bool {
	_, ok := t.cols[ch]
	return ok
}

// Column returns the sequences of one channel in row order.
func (t *Table) Column(ch string) ([]string, bool) {
	j, ok := t.cols[ch]
	if !ok {
		return nil, false
	}
	out := make([]string, len(t.seqs))
	for i, row := range t.seqs {
		out[i] = row[j]
	}
	return out, true
}

// Seq looks up the sequence of an entry on one channel by name.
func (t *Table) Seq(name, ch string) (string, bool) {
	i, ok := t.rows[name]
	if !ok {
		return "", false
	}
	j, ok := t.cols[ch]
	if !ok {
		return "", false
	}
	return t.seqs[i][j], true
}
