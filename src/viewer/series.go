package viewer

import (
	"errors"
	"io"

	"github.com/iafilius/SheetSeriesViewer/src/chart"
	"github.com/iafilius/SheetSeriesViewer/src/table"
)

// State of a SeriesChart.
type State int

const (
	Empty State = iota
	Rendered
)

func (s State) String() string {
	if s == Rendered {
		return "rendered"
	}
	return "empty"
}

// ErrNoChart is returned by Save before anything was plotted.
var ErrNoChart = errors.New("viewer: no chart to save")

// SeriesChart owns the figure for the loaded table and keeps the surface
// toggles in step with it.
type SeriesChart struct {
	surface Surface
	fig     *chart.Figure
	toggles []Toggle
}

// NewSeriesChart returns an empty chart drawing on s.
func NewSeriesChart(s Surface) *SeriesChart {
	return &SeriesChart{surface: s}
}

// State reports whether a table has been plotted.
func (c *SeriesChart) State() State {
	if c.fig == nil {
		return Empty
	}
	return Rendered
}

// Figure returns the current figure, nil while Empty.
func (c *SeriesChart) Figure() *chart.Figure { return c.fig }

// Plot replaces the figure with one line per column of t, rebuilds the
// toggles and shows the surface.
func (c *SeriesChart) Plot(t *table.Table) {
	c.surface.ClearToggles()
	c.toggles = nil
	c.fig = chart.New(t)
	for _, ln := range c.fig.Lines {
		c.toggles = append(c.toggles, c.bindToggle(ln))
	}
	c.Redraw()
	c.surface.Show()
}

// bindToggle registers the checkbox for ln. The callback holds ln itself,
// so a checkbox outliving its figure changes nothing.
func (c *SeriesChart) bindToggle(ln *chart.Line) Toggle {
	return c.surface.AddToggle(ln.Name, ln.Visible, func(on bool) { c.setLineVisible(ln, on) })
}

func (c *SeriesChart) setLineVisible(ln *chart.Line, on bool) {
	if c.fig == nil {
		return
	}
	for i, cur := range c.fig.Lines {
		if cur == ln {
			c.SetVisible(i, on)
			return
		}
	}
	logger.Debugf("ignoring toggle for %q from a replaced chart", ln.Name)
}

// SetVisible shows or hides line i and redraws.
func (c *SeriesChart) SetVisible(i int, on bool) {
	if c.fig == nil || !c.fig.SetVisible(i, on) {
		return
	}
	logger.Debugf("line %d visible=%v", i, on)
	c.Redraw()
}

// Toggles returns the registered toggles in line order.
func (c *SeriesChart) Toggles() []Toggle { return c.toggles }

// Redraw renders the figure at the surface size. Render failures leave a
// blank image behind.
func (c *SeriesChart) Redraw() {
	if c.fig == nil {
		return
	}
	w, h := c.surface.Size()
	img, err := c.fig.Render(w, h)
	if err != nil {
		logger.Warnf("render %dx%d failed: %v", w, h, err)
		c.surface.SetImage(chart.Blank(w, h))
		return
	}
	c.surface.SetImage(img)
}

// Home resets the view to the full data extent.
func (c *SeriesChart) Home() { c.navigate((*chart.Figure).Home) }

// ZoomIn halves the visible x range.
func (c *SeriesChart) ZoomIn() { c.navigate((*chart.Figure).ZoomIn) }

// ZoomOut doubles the visible x range.
func (c *SeriesChart) ZoomOut() { c.navigate((*chart.Figure).ZoomOut) }

// PanLeft moves the view a quarter window to the left.
func (c *SeriesChart) PanLeft() {
	c.navigate(func(f *chart.Figure) { f.Pan(-chart.PanStep) })
}

// PanRight moves the view a quarter window to the right.
func (c *SeriesChart) PanRight() {
	c.navigate(func(f *chart.Figure) { f.Pan(chart.PanStep) })
}

func (c *SeriesChart) navigate(fn func(*chart.Figure)) {
	if c.fig == nil {
		return
	}
	fn(c.fig)
	c.Redraw()
}

// Save writes the current view to w in format at the default save size.
func (c *SeriesChart) Save(w io.Writer, format string) error {
	if c.fig == nil {
		return ErrNoChart
	}
	return c.fig.WriteImage(w, format, chart.SaveWidth, chart.SaveHeight)
}
