package matrix

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"indexdist/internal/hamming"
	"indexdist/internal/seqtable"
)

func table(t *testing.T, rows ...[3]string) *seqtable.Table {
	t.Helper()
	var es []seqtable.Entry
	for _, r := range rows {
		es = append(es, seqtable.Entry{Name: r[0], Seqs: []string{r[1], r[2]}})
	}
	tb, err := seqtable.New([]string{"i7", "i5"}, es)
	require.NoError(t, err)
	return tb
}

func TestBuild_Scenario(t *testing.T) {
	ref := table(t, [3]string{"A", "ACGT", "TTTT"})
	test := table(t, [3]string{"X", "ACGT", "TTTA"}, [3]string{"Y", "ACGA", "TTTT"})

	i7, err := Build(ref, test, "i7")
	require.NoError(t, err)
	i5, err := Build(ref, test, "i5")
	require.NoError(t, err)

	for _, tc := range []struct {
		m         *Matrix
		ref, test string
		want      int
	}{
		{i7, "A", "X", 0},
		{i7, "A", "Y", 1},
		{i5, "A", "X", 1},
		{i5, "A", "Y", 0},
	} {
		got, ok := tc.m.Get(tc.ref, tc.test)
		require.True(t, ok)
		assert.Equal(t, tc.want, got, "%s (%s,%s)", tc.m.Channel, tc.ref, tc.test)
	}
	assert.Equal(t, []string{"A"}, i7.RefNames())
	assert.Equal(t, []string{"X", "Y"}, i7.TestNames())
}

func TestBuild_CrossProductSize(t *testing.T) {
	var refRows, testRows [][3]string
	for i := 0; i < 7; i++ {
		refRows = append(refRows, [3]string{fmt.Sprintf("r%d", i), "ACGTACGT", "GGGGCCCC"})
	}
	for j := 0; j < 5; j++ {
		testRows = append(testRows, [3]string{fmt.Sprintf("t%d", j), "ACGTTTTT", "GGGGAAAA"})
	}
	m, err := Build(table(t, refRows...), table(t, testRows...), "i7")
	require.NoError(t, err)
	assert.Equal(t, 35, m.Len())

	seen := map[[2]string]int{}
	for _, r := range m.RefNames() {
		for _, s := range m.TestNames() {
			_, ok := m.Get(r, s)
			require.True(t, ok)
			seen[[2]string{r, s}]++
		}
	}
	assert.Len(t, seen, 35)
	for k, n := range seen {
		assert.Equal(t, 1, n, "pair %v", k)
	}
	_, ok := m.Get("r0", "nope")
	assert.False(t, ok)
}

func TestBuild_LengthMismatchAborts(t *testing.T) {
	ref := table(t, [3]string{"A", "ACGT", "TTTT"}, [3]string{"B", "ACG", "TTTT"})
	test := table(t, [3]string{"X", "ACGT", "TTTA"})

	m, err := Build(ref, test, "i7")
	require.Error(t, err)
	assert.Nil(t, m)

	var lm *hamming.LengthMismatchError
	require.True(t, errors.As(err, &lm))
	assert.Equal(t, "ACG", lm.A)
	assert.Contains(t, err.Error(), `i7: reference "B" vs test "X"`)

	// the other channel is well-formed
	_, err = Build(ref, test, "i5")
	assert.NoError(t, err)
}

func TestBuild_UnknownChannel(t *testing.T) {
	ref := table(t, [3]string{"A", "ACGT", "TTTT"})
	_, err := Build(ref, ref, "barcode2")
	assert.Error(t, err)
}
