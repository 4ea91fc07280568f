// Package chart turns a table.Table into a Figure: one Line per column
// against the table index, each with a visibility flag, an x window for
// navigation, and renderers for the screen (go-chart) and for saved
// images (gonum/plot).
package chart

import (
	"math"

	gochart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/iafilius/SheetSeriesViewer/src/table"
)

// Axis decoration defaults.
const (
	DefaultTitle  = "Data"
	DefaultXLabel = "Timestamp"
	DefaultYLabel = "Value"
)

// Line is one column drawn against the index.
type Line struct {
	Name    string
	Column  int
	Y       []float64
	Visible bool
	Color   drawing.Color
}

// Figure is the full chart state for one loaded table.
type Figure struct {
	Title      string
	XLabel     string
	YLabel     string
	TimeLayout string
	Grid       bool

	Index table.Index
	// X holds the plotted x coordinate of every row: UnixNano for time
	// indices, the value for numeric ones and 1..n for labels.
	X     []float64
	Lines []*Line

	lo, hi float64
}

// New builds a Figure with every column visible and the view at full extent.
func New(t *table.Table) *Figure {
	f := &Figure{
		Title:      DefaultTitle,
		XLabel:     DefaultXLabel,
		YLabel:     DefaultYLabel,
		TimeLayout: table.TimeLayout,
		Grid:       true,
	}
	if t == nil {
		f.Home()
		return f
	}
	f.Index = t.Index
	f.X = xCoords(t.Index)
	for i, c := range t.Columns {
		y := make([]float64, len(c.Values))
		copy(y, c.Values)
		f.Lines = append(f.Lines, &Line{
			Name:    c.Name,
			Column:  i,
			Y:       y,
			Visible: true,
			Color:   gochart.GetDefaultColor(i),
		})
	}
	f.Home()
	return f
}

func xCoords(ix table.Index) []float64 {
	xs := make([]float64, ix.Len())
	for i := range xs {
		switch ix.Kind {
		case table.KindTime:
			xs[i] = gochart.TimeToFloat64(ix.Times[i])
		case table.KindNumber:
			xs[i] = ix.Numbers[i]
		default:
			xs[i] = float64(i + 1)
		}
	}
	return xs
}

// LineNames returns line names in column order.
func (f *Figure) LineNames() []string {
	out := make([]string, len(f.Lines))
	for i, l := range f.Lines {
		out[i] = l.Name
	}
	return out
}

// SetVisible sets the visibility of line i. It reports false when i is
// out of range.
func (f *Figure) SetVisible(i int, on bool) bool {
	if i < 0 || i >= len(f.Lines) {
		return false
	}
	f.Lines[i].Visible = on
	return true
}

// VisibleCount returns how many lines are currently shown.
func (f *Figure) VisibleCount() int {
	n := 0
	for _, l := range f.Lines {
		if l.Visible {
			n++
		}
	}
	return n
}

// Points returns line i clipped to the current x window, with NaN rows
// skipped. The result does not depend on the visibility flag.
func (f *Figure) Points(i int) ([]float64, []float64) {
	if i < 0 || i >= len(f.Lines) {
		return nil, nil
	}
	return clipPolyline(f.X, f.Lines[i].Y, f.lo, f.hi)
}

// yRange covers the clipped data of all lines, hidden ones included, so
// toggling never rescales the axes.
func (f *Figure) yRange() (float64, float64) {
	minY, maxY := math.MaxFloat64, -math.MaxFloat64
	for i := range f.Lines {
		_, ys := f.Points(i)
		for _, v := range ys {
			if v < minY {
				minY = v
			}
			if v > maxY {
				maxY = v
			}
		}
	}
	if minY == math.MaxFloat64 {
		return 0, 1
	}
	return niceAxisBounds(minY, maxY)
}
