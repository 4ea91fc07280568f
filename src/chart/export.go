package chart

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/iafilius/SheetSeriesViewer/src/table"
)

// Default size of saved images.
const (
	SaveWidth  = 8 * vg.Inch
	SaveHeight = 6 * vg.Inch
)

// SaveFormats lists the formats accepted by WriteImage.
var SaveFormats = []string{"png", "svg", "pdf", "jpg", "jpeg", "eps", "tif", "tiff"}

// FormatFromPath derives a save format from a file name extension.
func FormatFromPath(path string) (string, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	for _, f := range SaveFormats {
		if ext == f {
			return ext, nil
		}
	}
	if ext == "" {
		ext = "(none)"
	}
	return "", fmt.Errorf("unsupported image format %s", ext)
}

// plotX converts an x coordinate into gonum's domain; time axes there
// use Unix seconds.
func (f *Figure) plotX(x float64) float64 {
	if f.Index.Kind == table.KindTime {
		return x / float64(time.Second)
	}
	return x
}

// Plot builds the gonum/plot version of the current view with the same
// decoration and visibility as the on-screen chart.
func (f *Figure) Plot() (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = f.Title
	p.X.Label.Text = f.XLabel
	p.Y.Label.Text = f.YLabel
	p.Legend.Top = true

	lo, hi := f.View()
	p.X.Min, p.X.Max = f.plotX(lo), f.plotX(hi)
	p.Y.Min, p.Y.Max = f.yRange()

	switch f.Index.Kind {
	case table.KindTime:
		p.X.Tick.Marker = plot.TimeTicks{Format: f.TimeLayout}
	case table.KindLabel:
		var ticks plot.ConstantTicks
		for _, t := range labelTicks(f.Index.Labels, lo, hi) {
			ticks = append(ticks, plot.Tick{Value: t.Value, Label: t.Label})
		}
		p.X.Tick.Marker = ticks
	}
	if f.Grid {
		p.Add(plotter.NewGrid())
	}

	for i, ln := range f.Lines {
		if !ln.Visible {
			continue
		}
		xs, ys := f.Points(i)
		if len(xs) == 0 {
			continue
		}
		pts := make(plotter.XYs, len(xs))
		for k := range xs {
			pts[k].X = f.plotX(xs[k])
			pts[k].Y = ys[k]
		}
		l, err := plotter.NewLine(pts)
		if err != nil {
			return nil, fmt.Errorf("line %q: %w", ln.Name, err)
		}
		l.LineStyle.Color = ln.Color
		l.LineStyle.Width = vg.Points(1.5)
		p.Add(l)
		p.Legend.Add(ln.Name, l)
	}
	return p, nil
}

// WriteImage encodes the current view in format ("png", "svg", "pdf", ...).
func (f *Figure) WriteImage(w io.Writer, format string, width, height vg.Length) error {
	p, err := f.Plot()
	if err != nil {
		return err
	}
	wt, err := p.WriterTo(width, height, strings.ToLower(format))
	if err != nil {
		return err
	}
	_, err = wt.WriteTo(w)
	return err
}
