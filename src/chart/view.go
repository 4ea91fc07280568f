package chart

import (
	"math"
	"time"

	"github.com/iafilius/SheetSeriesViewer/src/table"
)

// Navigation steps used by the toolbar.
const (
	ZoomStep = 2.0
	PanStep  = 0.25
)

// Extent returns the full x extent of the data, padded when all rows share
// one x value so the range is never empty.
func (f *Figure) Extent() (float64, float64) {
	lo, hi := math.MaxFloat64, -math.MaxFloat64
	for _, x := range f.X {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			continue
		}
		if x < lo {
			lo = x
		}
		if x > hi {
			hi = x
		}
	}
	if lo == math.MaxFloat64 {
		return 0, 1
	}
	if hi <= lo {
		pad := 0.5
		if f.Index.Kind == table.KindTime {
			pad = float64(time.Second)
		}
		lo, hi = lo-pad, hi+pad
	}
	return lo, hi
}

// View returns the current x window.
func (f *Figure) View() (float64, float64) { return f.lo, f.hi }

// Home resets the x window to the full extent.
func (f *Figure) Home() { f.lo, f.hi = f.Extent() }

// Zoomed reports whether the window is narrower than the extent.
func (f *Figure) Zoomed() bool {
	lo, hi := f.Extent()
	return f.lo > lo || f.hi < hi
}

// Zoom scales the window around its centre; factor > 1 zooms in.
func (f *Figure) Zoom(factor float64) {
	if factor <= 0 || math.IsNaN(factor) || math.IsInf(factor, 0) {
		return
	}
	extLo, extHi := f.Extent()
	full := extHi - extLo
	width := (f.hi - f.lo) / factor
	if floor := full / 1e6; width < floor {
		width = floor
	}
	if width > full {
		width = full
	}
	mid := (f.lo + f.hi) / 2
	f.setWindow(mid-width/2, mid+width/2)
}

// ZoomIn narrows the window by ZoomStep.
func (f *Figure) ZoomIn() { f.Zoom(ZoomStep) }

// ZoomOut widens the window by ZoomStep.
func (f *Figure) ZoomOut() { f.Zoom(1 / ZoomStep) }

// Pan shifts the window by frac of its width; negative moves left.
func (f *Figure) Pan(frac float64) {
	d := (f.hi - f.lo) * frac
	f.setWindow(f.lo+d, f.hi+d)
}

// setWindow keeps the window width and slides it back inside the extent.
func (f *Figure) setWindow(lo, hi float64) {
	extLo, extHi := f.Extent()
	width := hi - lo
	if width >= extHi-extLo {
		f.lo, f.hi = extLo, extHi
		return
	}
	if lo < extLo {
		lo, hi = extLo, extLo+width
	}
	if hi > extHi {
		lo, hi = extHi-width, extHi
	}
	f.lo, f.hi = lo, hi
}

// clipPolyline drops non-finite points and clips every segment to [lo, hi] in x,
// interpolating y at the window edges.
func clipPolyline(xs, ys []float64, lo, hi float64) ([]float64, []float64) {
	n := len(xs)
	if len(ys) < n {
		n = len(ys)
	}
	px := make([]float64, 0, n)
	py := make([]float64, 0, n)
	for i := 0; i < n; i++ {
		if math.IsNaN(xs[i]) || math.IsInf(xs[i], 0) || math.IsNaN(ys[i]) || math.IsInf(ys[i], 0) {
			continue
		}
		px = append(px, xs[i])
		py = append(py, ys[i])
	}
	var cx, cy []float64
	add := func(x, y float64) {
		if k := len(cx); k > 0 && cx[k-1] == x && cy[k-1] == y {
			return
		}
		cx = append(cx, x)
		cy = append(cy, y)
	}
	if len(px) == 1 {
		if px[0] >= lo && px[0] <= hi {
			add(px[0], py[0])
		}
		return cx, cy
	}
	for i := 0; i+1 < len(px); i++ {
		x0, y0, x1, y1 := px[i], py[i], px[i+1], py[i+1]
		if math.Max(x0, x1) < lo || math.Min(x0, x1) > hi {
			continue
		}
		sx, sy := clampToWindow(x0, y0, x1, y1, lo, hi)
		ex, ey := clampToWindow(x1, y1, x0, y0, lo, hi)
		add(sx, sy)
		add(ex, ey)
	}
	return cx, cy
}

// clampToWindow moves (x0,y0) along the segment towards (x1,y1) until it
// lies within [lo, hi].
func clampToWindow(x0, y0, x1, y1, lo, hi float64) (float64, float64) {
	edge := x0
	switch {
	case x0 < lo:
		edge = lo
	case x0 > hi:
		edge = hi
	default:
		return x0, y0
	}
	if x1 == x0 {
		return edge, y0
	}
	return edge, y0 + (y1-y0)*(edge-x0)/(x1-x0)
}
