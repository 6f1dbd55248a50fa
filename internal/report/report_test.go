package report

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"indexdist/internal/hamming"
	"indexdist/internal/longform"
	"indexdist/internal/seqtable"
)

func mk(t *testing.T, channels []string, rows ...[]string) *seqtable.Table {
	t.Helper()
	var es []seqtable.Entry
	for _, r := range rows {
		es = append(es, seqtable.Entry{Name: r[0], Seqs: r[1:]})
	}
	tb, err := seqtable.New(channels, es)
	require.NoError(t, err)
	return tb
}

func TestRun_Scenario(t *testing.T) {
	ref := mk(t, []string{"i7", "i5"}, []string{"A", "ACGT", "TTTT"})
	test := mk(t, []string{"i7", "i5"}, []string{"X", "ACGT", "TTTA"}, []string{"Y", "ACGA", "TTTT"})

	lf, err := Run(ref, test, Options{})
	require.NoError(t, err)
	assert.Equal(t, []string{"i7", "i5"}, lf.Channels)
	assert.Equal(t, []longform.Record{
		{RefName: "A", TestName: "X", Distances: []int{0, 1}},
		{RefName: "A", TestName: "Y", Distances: []int{1, 0}},
	}, lf.Records)
}

func TestRun_ChannelOrder(t *testing.T) {
	ref := mk(t, []string{"i7", "i5"}, []string{"A", "ACGT", "TTTT"})
	// test table lists its columns the other way round
	test := mk(t, []string{"i5", "i7"}, []string{"X", "TTTA", "ACGT"})

	lf, err := Run(ref, test, Options{})
	require.NoError(t, err)
	assert.Equal(t, []string{"i7", "i5"}, lf.Channels)
	assert.Equal(t, []int{0, 1}, lf.Records[0].Distances)

	lf, err = Run(ref, test, Options{Channels: []string{"i5", "i7"}})
	require.NoError(t, err)
	assert.Equal(t, []string{"i5", "i7"}, lf.Channels)
	assert.Equal(t, []int{1, 0}, lf.Records[0].Distances)

	lf, err = Run(ref, test, Options{Channels: []string{"i5"}})
	require.NoError(t, err)
	assert.Equal(t, []int{1}, lf.Records[0].Distances)
}

func TestRun_SchemaErrorBeforeDistances(t *testing.T) {
	// the i7 lengths differ too; the schema error must win
	ref := mk(t, []string{"i7", "i5"}, []string{"A", "ACGT", "TTTT"})
	test := mk(t, []string{"i7", "barcode2"}, []string{"X", "ACG", "TTTA"})

	lf, err := Run(ref, test, Options{})
	assert.Nil(t, lf)
	var se *seqtable.SchemaError
	require.True(t, errors.As(err, &se), "got %v", err)
	var lm *hamming.LengthMismatchError
	assert.False(t, errors.As(err, &lm))
}

func TestRun_LengthMismatchAbortsRun(t *testing.T) {
	ref := mk(t, []string{"i7", "i5"}, []string{"A", "ACGT", "TTTT"})
	test := mk(t, []string{"i7", "i5"}, []string{"X", "ACGT", "TTTA"}, []string{"Y", "ACGT", "TTTTT"})

	for _, w := range []int{0, 1, 2} {
		lf, err := Run(ref, test, Options{Workers: w})
		assert.Nil(t, lf)
		var lm *hamming.LengthMismatchError
		require.True(t, errors.As(err, &lm), "workers=%d: %v", w, err)
		assert.Equal(t, "TTTTT", lm.B)
	}
}

func TestRun_Idempotent(t *testing.T) {
	ref := mk(t, []string{"i7", "i5"}, []string{"A", "ACGT", "TTTT"}, []string{"B", "GGTT", "CACA"})
	test := mk(t, []string{"i7", "i5"}, []string{"X", "ACGT", "TTTA"}, []string{"Y", "ACGA", "TTTT"})

	first, err := Run(ref, test, Options{})
	require.NoError(t, err)
	for _, w := range []int{1, 2} {
		again, err := Run(ref, test, Options{Workers: w})
		require.NoError(t, err)
		assert.Equal(t, first.String(), again.String())
	}
}

func TestChannels_Rejects(t *testing.T) {
	ref := mk(t, []string{"i7", "i5"}, []string{"A", "ACGT", "TTTT"})
	_, err := Channels(ref, []string{"i9"})
	assert.Error(t, err)
	_, err = Channels(ref, []string{"i7", "i7"})
	assert.Error(t, err)
}
