package longform

import "fmt"

// StackedRecord is one cell of the long-form table: a single channel's
// distance for one (reference, test) pair.
type StackedRecord struct {
	RefName  string
	TestName string
	Channel  string
	Distance int
}

// StackedColumns is the header of the stacked table.
var StackedColumns = []string{RefColumn, TestColumn, ChannelColumn, DistanceColumn}

// Stack flattens the per-channel columns into rows. Rows follow record
// order and, within a record, channel order.
func (t *Table) Stack() []StackedRecord {
	out := make([]StackedRecord, 0, len(t.Records)*len(t.Channels))
	for _, r := range t.Records {
		for k, ch := range t.Channels {
			out = append(out, StackedRecord{RefName: r.RefName, TestName: r.TestName, Channel: ch, Distance: r.Distances[k]})
		}
	}
	return out
}

// Unstack regroups stacked rows by (reference, test) into a long-form table.
// Pairs keep the order of their first row. Every pair must carry exactly
// one row per channel.
func Unstack(channels []string, rows []StackedRecord) (*Table, error) {
	chIdx := make(map[string]int, len(channels))
	for k, ch := range channels {
		chIdx[ch] = k
	}
	type pair struct{ ref, test string }
	at := map[pair]int{}
	filled := [][]bool{}
	t := &Table{Channels: append([]string(nil), channels...)}
	for _, row := range rows {
		k, ok := chIdx[row.Channel]
		if !ok {
			return nil, &AssemblyError{Msg: fmt.Sprintf("unknown channel %q", row.Channel)}
		}
		p := pair{row.RefName, row.TestName}
		i, ok := at[p]
		if !ok {
			i = len(t.Records)
			at[p] = i
			t.Records = append(t.Records, Record{RefName: p.ref, TestName: p.test, Distances: make([]int, len(channels))})
			filled = append(filled, make([]bool, len(channels)))
		}
		if filled[i][k] {
			return nil, &AssemblyError{Msg: fmt.Sprintf("duplicate %s value for (%s, %s)", row.Channel, p.ref, p.test)}
		}
		filled[i][k] = true
		t.Records[i].Distances[k] = row.Distance
	}
	for i, f := range filled {
		for k, ok := range f {
			if !ok {
				r := t.Records[i]
				return nil, &AssemblyError{Msg: fmt.Sprintf("missing %s value for (%s, %s)", channels[k], r.RefName, r.TestName)}
			}
		}
	}
	return t, nil
}
