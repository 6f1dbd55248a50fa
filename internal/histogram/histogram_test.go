package histogram

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"indexdist/internal/longform"
)

func stacked() []longform.StackedRecord {
	t := &longform.Table{
		Channels: []string{"i7", "i5"},
		Records: []longform.Record{
			{RefName: "A", TestName: "X", Distances: []int{0, 1}},
			{RefName: "B", TestName: "X", Distances: []int{4, 1}},
			{RefName: "A", TestName: "Y", Distances: []int{1, 0}},
			{RefName: "B", TestName: "Y", Distances: []int{6, 0}},
			{RefName: "A", TestName: "Z", Distances: []int{2, 2}},
			{RefName: "B", TestName: "Z", Distances: []int{2, 8}},
			{RefName: "A", TestName: "W", Distances: []int{3, 3}},
			{RefName: "B", TestName: "W", Distances: []int{3, 3}},
		},
	}
	return t.Stack()
}

func TestPanels(t *testing.T) {
	ps := Panels(stacked())
	require.Len(t, ps, 4)
	assert.Equal(t, "X", ps[0].TestName)
	assert.Equal(t, "W", ps[3].TestName)
	assert.Equal(t, []string{"i7", "i5"}, ps[0].Channels)
	assert.Equal(t, 9, Bins(ps))
	assert.Equal(t, []int{1, 0, 0, 0, 1, 0, 0, 0, 0}, ps[0].Counts[0])
	assert.Equal(t, []int{0, 2, 0, 0, 0, 0, 0, 0, 0}, ps[0].Counts[1])
	assert.Equal(t, 2, MaxCount(ps))

	// every stacked row lands in exactly one bin
	total := 0
	for _, p := range ps {
		for _, row := range p.Counts {
			for _, c := range row {
				total += c
			}
		}
	}
	assert.Equal(t, len(stacked()), total)
}

func TestPanels_SkipsNegativeDistances(t *testing.T) {
	rows := []longform.StackedRecord{
		{RefName: "A", TestName: "X", Channel: "i7", Distance: 2},
		{RefName: "B", TestName: "X", Channel: "i7", Distance: -1},
		{RefName: "A", TestName: "Y", Channel: "i7", Distance: -3},
	}
	ps := Panels(rows)
	require.Len(t, ps, 1)
	assert.Equal(t, "X", ps[0].TestName)
	assert.Equal(t, [][]int{{0, 0, 1}}, ps[0].Counts)
}

func TestFormatOf(t *testing.T) {
	for in, want := range map[string]string{"fig.pdf": "pdf", "out/FIG.PNG": "png", "a.b.svg": "svg", "x.tiff": "tiff"} {
		got, err := FormatOf(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	for _, bad := range []string{"figure", "fig.bmp", "fig."} {
		_, err := FormatOf(bad)
		assert.Error(t, err, bad)
	}
}

func TestPanels_Empty(t *testing.T) {
	ps := Panels(nil)
	assert.Empty(t, ps)
	assert.Zero(t, Bins(ps))
}

func TestPlots_GridWraps(t *testing.T) {
	grid, err := Plots(Panels(stacked()), DefaultOptions)
	require.NoError(t, err)
	require.Len(t, grid, 2)
	require.Len(t, grid[1], 3)
	assert.NotNil(t, grid[1][0])
	assert.Nil(t, grid[1][1])
	assert.Equal(t, "test-index-name = X", grid[0][0].Title.Text)
}

func TestWrite_PNG(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, "png", stacked(), DefaultOptions))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG")), "not a PNG")
}

func TestWrite_SVG(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, "svg", stacked(), DefaultOptions))
	assert.Contains(t, buf.String(), "<svg")
}

func TestWrite_Errors(t *testing.T) {
	var buf bytes.Buffer
	assert.Error(t, Write(&buf, "bmpx", stacked(), DefaultOptions))
	assert.Error(t, Write(&buf, "png", nil, DefaultOptions))

	opts := DefaultOptions
	opts.Cols = 0
	assert.Error(t, Write(&buf, "png", stacked(), opts))
}

func TestSave_PDF(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "comparison.pdf")
	require.NoError(t, Save(fn, stacked(), DefaultOptions))
	b, err := os.ReadFile(fn)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(b), "%PDF"), "not a PDF")

	assert.Error(t, Save(filepath.Join(t.TempDir(), "noext"), stacked(), DefaultOptions))
}
