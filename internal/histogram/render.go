// internal/histogram/render.go
package histogram

import (
	"image/color"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"indexdist/internal/longform"
)

// Options controls figure layout.
type Options struct {
	// Threshold is the x position of the reference line.
	Threshold float64
	// Cols is the number of panels per row.
	Cols int
	// PanelWidth and PanelHeight size one facet.
	PanelWidth, PanelHeight vg.Length
	// GroupWidth is the width of the dodged bars of one distance bin.
	GroupWidth vg.Length
}

// DefaultOptions: 3 facets per row, 2.6 aspect at 1.8in height, red line
// at 3.5.
var DefaultOptions = Options{
	Threshold:   3.5,
	Cols:        3,
	PanelWidth:  vg.Length(2.6*1.8) * vg.Inch,
	PanelHeight: 1.8 * vg.Inch,
	GroupWidth:  vg.Points(14),
}

var thresholdColor = color.RGBA{R: 255, A: 255}

// Formats lists the figure formats, as file extensions, that Save accepts.
var Formats = []string{"eps", "jpeg", "jpg", "pdf", "png", "svg", "tif", "tiff"}

// FormatOf returns the image format implied by the extension of path.
func FormatOf(path string) (string, error) {
	format := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	if format == "" {
		return "", errors.Errorf("%s: cannot infer image format without a file extension (want %s)", path, strings.Join(Formats, " | "))
	}
	for _, f := range Formats {
		if f == format {
			return format, nil
		}
	}
	return "", errors.Errorf("%s: unsupported image format %q (want %s)", path, format, strings.Join(Formats, " | "))
}

// Save renders rows to path. The image format follows the file extension.
func Save(path string, rows []longform.StackedRecord, opts Options) error {
	format, err := FormatOf(path)
	if err != nil {
		return err
	}
	fh, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "create figure")
	}
	if err := Write(fh, format, rows, opts); err != nil {
		_ = fh.Close()
		_ = os.Remove(path)
		return errors.Wrap(err, path)
	}
	return fh.Close()
}

// Write renders rows as one histogram facet per test index and writes the
// figure to w in the given format.
func Write(w io.Writer, format string, rows []longform.StackedRecord, opts Options) error {
	if opts.Cols < 1 {
		return errors.Errorf("facet columns must be ≥ 1, got %d", opts.Cols)
	}
	panels := Panels(rows)
	if len(panels) == 0 {
		return errors.New("nothing to plot")
	}
	grid, err := Plots(panels, opts)
	if err != nil {
		return err
	}

	nRows := len(grid)
	c, err := draw.NewFormattedCanvas(vg.Length(opts.Cols)*opts.PanelWidth, vg.Length(nRows)*opts.PanelHeight, format)
	if err != nil {
		return errors.Wrap(err, "figure canvas")
	}
	tiles := draw.Tiles{
		Rows: nRows, Cols: opts.Cols,
		PadX: vg.Millimeter, PadY: vg.Millimeter,
		PadTop: vg.Points(2), PadBottom: vg.Points(2),
		PadLeft: vg.Points(2), PadRight: vg.Points(2),
	}
	canvases := plot.Align(grid, tiles, draw.New(c))
	for j := range grid {
		for i, p := range grid[j] {
			if p != nil {
				p.Draw(canvases[j][i])
			}
		}
	}
	if _, err := c.WriteTo(w); err != nil {
		return errors.Wrap(err, "write figure")
	}
	return nil
}

// Plots lays panels out row by row, opts.Cols per row. Unused cells of the
// last row are nil. All plots share the x and y ranges.
func Plots(panels []Panel, opts Options) ([][]*plot.Plot, error) {
	bins := Bins(panels)
	yMax := float64(MaxCount(panels))
	if yMax < 1 {
		yMax = 1
	}
	xMax := math.Max(float64(bins-1), math.Ceil(opts.Threshold)) + 0.5

	ticks := make([]plot.Tick, 0, int(xMax)+1)
	for d := 0; float64(d) < xMax; d++ {
		ticks = append(ticks, plot.Tick{Value: float64(d), Label: strconv.Itoa(d)})
	}

	nRows := (len(panels) + opts.Cols - 1) / opts.Cols
	grid := make([][]*plot.Plot, nRows)
	for j := range grid {
		grid[j] = make([]*plot.Plot, opts.Cols)
	}
	for n, pn := range panels {
		p, err := panelPlot(pn, opts, yMax, xMax, ticks)
		if err != nil {
			return nil, errors.Wrapf(err, "panel %q", pn.TestName)
		}
		grid[n/opts.Cols][n%opts.Cols] = p
	}
	return grid, nil
}

func panelPlot(pn Panel, opts Options, yMax, xMax float64, ticks []plot.Tick) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = longform.TestColumn + " = " + pn.TestName
	p.X.Label.Text = longform.DistanceColumn
	p.Y.Label.Text = "Count"
	p.X.Min, p.X.Max = -0.5, xMax
	p.Y.Min, p.Y.Max = 0, yMax*1.1
	p.X.Tick.Marker = plot.ConstantTicks(ticks)
	p.Legend.Top = true

	nCh := len(pn.Channels)
	barW := opts.GroupWidth / vg.Length(nCh)
	for k, ch := range pn.Channels {
		vals := make(plotter.Values, len(pn.Counts[k]))
		for d, c := range pn.Counts[k] {
			vals[d] = float64(c)
		}
		bars, err := plotter.NewBarChart(vals, barW)
		if err != nil {
			return nil, err
		}
		bars.Color = plotutil.Color(k)
		bars.LineStyle.Width = 0
		bars.Offset = (vg.Length(k) - vg.Length(nCh-1)/2) * barW
		p.Add(bars)
		p.Legend.Add(ch, bars)
	}

	line, err := plotter.NewLine(plotter.XYs{{X: opts.Threshold, Y: 0}, {X: opts.Threshold, Y: yMax * 1.1}})
	if err != nil {
		return nil, err
	}
	line.LineStyle.Color = thresholdColor
	line.LineStyle.Width = vg.Points(3)
	p.Add(line)
	return p, nil
}
