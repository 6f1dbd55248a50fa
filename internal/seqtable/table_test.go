package seqtable

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Accessors(t *testing.T) {
	tb, err := New([]string{"i7", "i5"}, []Entry{
		{Name: "A", Seqs: []string{"ACGT", "TTTT"}},
		{Name: "B", Seqs: []string{"GGGG", "CCCC"}},
	})
	require.NoError(t, err)

	assert.Equal(t, 2, tb.Len())
	assert.Equal(t, []string{"A", "B"}, tb.Names())
	assert.Equal(t, []string{"i7", "i5"}, tb.Channels())
	assert.Equal(t, []string{"name", "i7", "i5"}, tb.Columns())
	assert.True(t, tb.HasChannel("i5"))
	assert.False(t, tb.HasChannel("name"))

	s, ok := tb.Seq("B", "i5")
	assert.True(t, ok)
	assert.Equal(t, "CCCC", s)
	_, ok = tb.Seq("Z", "i5")
	assert.False(t, ok)

	col, ok := tb.Column("i7")
	require.True(t, ok)
	assert.Equal(t, []string{"ACGT", "GGGG"}, col)
}

func TestNew_IsolatedFromCallerSlices(t *testing.T) {
	chans := []string{"i7"}
	seqs := []string{"ACGT"}
	tb, err := New(chans, []Entry{{Name: "A", Seqs: seqs}})
	require.NoError(t, err)

	chans[0] = "x"
	seqs[0] = "TTTT"
	names := tb.Names()
	names[0] = "mutated"

	s, ok := tb.Seq("A", "i7")
	require.True(t, ok)
	assert.Equal(t, "ACGT", s)
	assert.Equal(t, "A", tb.Name(0))
}

func TestNew_Rejects(t *testing.T) {
	tests := []struct {
		name     string
		channels []string
		entries  []Entry
	}{
		{"no channels", nil, nil},
		{"name as channel", []string{"name"}, nil},
		{"duplicate channel", []string{"i7", "i7"}, nil},
		{"duplicate name", []string{"i7"}, []Entry{{"A", []string{"AC"}}, {"A", []string{"GT"}}}},
		{"empty name", []string{"i7"}, []Entry{{"", []string{"AC"}}}},
		{"ragged", []string{"i7", "i5"}, []Entry{{"A", []string{"AC"}}}},
		{"empty seq", []string{"i7"}, []Entry{{"A", []string{""}}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.channels, tt.entries)
			assert.Error(t, err)
		})
	}
}
