package histogram

import "indexdist/internal/longform"

// Panel holds the distance histogram of one test index: Counts[k][d] is the
// number of reference indices at distance d on Channels[k].
type Panel struct {
	TestName string
	Channels []string
	Counts   [][]int
}

// Panels bins stacked rows into one panel per test index. Panels follow the
// order of first appearance; channels likewise. Every panel has the same
// channels and the same number of bins (max distance + 1) so facets share
// their axes. Rows with a negative distance are not counted.
func Panels(rows []longform.StackedRecord) []Panel {
	var (
		tests    []string
		channels []string
		testIdx  = map[string]int{}
		chanIdx  = map[string]int{}
		maxD     = 0
	)
	for _, r := range rows {
		if r.Distance < 0 {
			continue
		}
		if _, ok := testIdx[r.TestName]; !ok {
			testIdx[r.TestName] = len(tests)
			tests = append(tests, r.TestName)
		}
		if _, ok := chanIdx[r.Channel]; !ok {
			chanIdx[r.Channel] = len(channels)
			channels = append(channels, r.Channel)
		}
		if r.Distance > maxD {
			maxD = r.Distance
		}
	}

	out := make([]Panel, len(tests))
	for i, name := range tests {
		p := Panel{TestName: name, Channels: channels, Counts: make([][]int, len(channels))}
		for k := range p.Counts {
			p.Counts[k] = make([]int, maxD+1)
		}
		out[i] = p
	}
	for _, r := range rows {
		if r.Distance < 0 {
			continue
		}
		out[testIdx[r.TestName]].Counts[chanIdx[r.Channel]][r.Distance]++
	}
	return out
}

// Bins is the number of distance bins of the panels (0 when empty).
func Bins(ps []Panel) int {
	if len(ps) == 0 || len(ps[0].Counts) == 0 {
		return 0
	}
	return len(ps[0].Counts[0])
}

// MaxCount is the tallest bar over all panels.
func MaxCount(ps []Panel) int {
	m := 0
	for _, p := range ps {
		for _, row := range p.Counts {
			for _, c := range row {
				if c > m {
					m = c
				}
			}
		}
	}
	return m
}
