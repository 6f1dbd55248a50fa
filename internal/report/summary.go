package report

import (
	"indexdist/internal/longform"
)

// TestSummary condenses the distances of one test index against every
// reference index.
type TestSummary struct {
	TestName string
	// MinDistance per channel, aligned with longform.Table.Channels.
	MinDistance []int
	// Close counts reference indices that are within threshold on every
	// channel, i.e. pairs the sequencer could not tell apart.
	Close int
}

// Summarize returns one summary per test index, in order of first
// appearance in t.
func Summarize(t *longform.Table, threshold float64) []TestSummary {
	at := map[string]int{}
	var out []TestSummary
	for _, r := range t.Records {
		i, ok := at[r.TestName]
		if !ok {
			i = len(out)
			at[r.TestName] = i
			out = append(out, TestSummary{TestName: r.TestName, MinDistance: append([]int(nil), r.Distances...)})
		}
		s := &out[i]
		within := true
		for k, d := range r.Distances {
			if d < s.MinDistance[k] {
				s.MinDistance[k] = d
			}
			if float64(d) > threshold {
				within = false
			}
		}
		if within {
			s.Close++
		}
	}
	return out
}
