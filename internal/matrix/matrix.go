// internal/matrix/matrix.go
package matrix

import (
	"github.com/pkg/errors"

	"indexdist/internal/hamming"
	"indexdist/internal/seqtable"
)

// Matrix holds the distance of every (reference, test) pair on one channel.
type Matrix struct {
	Channel string

	refNames  []string
	testNames []string
	refIdx    map[string]int
	testIdx   map[string]int
	cells     [][]int // [ref][test]
}

// Build computes the full reference × test distance matrix for channel.
// Test entries are visited in test-table order and, for each, every
// reference entry in reference-table order. The first length mismatch
// aborts the build.
func Build(ref, test *seqtable.Table, channel string) (*Matrix, error) {
	refSeqs, ok := ref.Column(channel)
	if !ok {
		return nil, errors.Errorf("reference indices have no %q column", channel)
	}
	testSeqs, ok := test.Column(channel)
	if !ok {
		return nil, errors.Errorf("test indices have no %q column", channel)
	}

	m := &Matrix{
		Channel:   channel,
		refNames:  ref.Names(),
		testNames: test.Names(),
		cells:     make([][]int, len(refSeqs)),
	}
	for i := range m.cells {
		m.cells[i] = make([]int, len(testSeqs))
	}
	for j, ts := range testSeqs {
		for i, rs := range refSeqs {
			d, err := hamming.Distance(rs, ts)
			if err != nil {
				return nil, errors.Wrapf(err, "%s: reference %q vs test %q", channel, m.refNames[i], m.testNames[j])
			}
			m.cells[i][j] = d
		}
	}
	m.refIdx = indexOf(m.refNames)
	m.testIdx = indexOf(m.testNames)
	return m, nil
}

func indexOf(names []string) map[string]int {
	idx := make(map[string]int, len(names))
	for i, n := range names {
		idx[n] = i
	}
	return idx
}

// RefNames returns the reference names in row order.
func (m *Matrix) RefNames() []string { return append([]string(nil), m.refNames...) }

// TestNames returns the test names in column order.
func (m *Matrix) TestNames() []string { return append([]string(nil), m.testNames...) }

// Len is the number of (reference, test) entries.
func (m *Matrix) Len() int { return len(m.refNames) * len(m.testNames) }

// At returns the distance between reference row i and test column j.
func (m *Matrix) At(i, j int) int { return m.cells[i][j] }

// Get returns the distance for a pair of names.
func (m *Matrix) Get(refName, testName string) (int, bool) {
	i, ok := m.refIdx[refName]
	if !ok {
		return 0, false
	}
	j, ok := m.testIdx[testName]
	if !ok {
		return 0, false
	}
	return m.cells[i][j], true
}
