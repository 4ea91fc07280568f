package chart

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/draw"
	"image/png"

	gochart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/iafilius/SheetSeriesViewer/src/table"
)

// Placeholder messages drawn when there is nothing to plot.
const (
	MsgNoData    = "No data"
	MsgAllHidden = "No visible series"
)

const (
	xTickTarget = 6
	yTickTarget = 6
	lineWidth   = 2.0
)

// ErrInvalidSize is returned for non-positive render dimensions.
var ErrInvalidSize = errors.New("chart: invalid image size")

var gridStyle = gochart.Style{
	StrokeColor: drawing.ColorFromHex("dddddd"),
	StrokeWidth: 1,
}

// Build assembles the go-chart definition for the current view. ok is
// false when no visible line has a point inside the window.
func (f *Figure) Build(w, h int) (gochart.Chart, bool) {
	lo, hi := f.View()
	ylo, yhi := f.yRange()

	xa := gochart.XAxis{
		Name:  f.XLabel,
		Range: &gochart.ContinuousRange{Min: lo, Max: hi},
	}
	switch f.Index.Kind {
	case table.KindTime:
		xa.ValueFormatter = timeFormatter(f.TimeLayout)
		xa.Ticks = makeTimeTicks(lo, hi, xTickTarget, f.TimeLayout)
	case table.KindLabel:
		xa.Ticks = labelTicks(f.Index.Labels, lo, hi)
	default:
		xa.Ticks = niceTicks(lo, hi, xTickTarget)
	}
	ya := gochart.YAxis{
		Name:  f.YLabel,
		Range: &gochart.ContinuousRange{Min: ylo, Max: yhi},
		Ticks: niceTicks(ylo, yhi, yTickTarget),
	}
	if f.Grid {
		xa.GridMajorStyle = gridStyle
		ya.GridMajorStyle = gridStyle
	}

	series := []gochart.Series{}
	for i, ln := range f.Lines {
		if !ln.Visible {
			continue
		}
		xs, ys := f.Points(i)
		if len(xs) == 0 {
			continue
		}
		st := gochart.Style{StrokeColor: ln.Color, StrokeWidth: lineWidth}
		if len(xs) == 1 {
			// a lone point has no segment to stroke
			st.DotWidth = 4
			st.DotColor = ln.Color
			xs = append(xs, xs[0])
			ys = append(ys, ys[0])
		}
		series = append(series, gochart.ContinuousSeries{Name: ln.Name, XValues: xs, YValues: ys, Style: st})
	}

	ch := gochart.Chart{
		Title:      f.Title,
		Width:      w,
		Height:     h,
		Background: gochart.Style{Padding: gochart.Box{Top: 24, Left: 16, Right: 28, Bottom: 16}},
		XAxis:      xa,
		YAxis:      ya,
		Series:     series,
	}
	if len(series) == 0 {
		return ch, false
	}
	ch.Elements = []gochart.Renderable{gochart.Legend(&ch)}
	return ch, true
}

// Render draws the current view into a w×h image. With nothing visible it
// returns a placeholder carrying MsgNoData or MsgAllHidden.
func (f *Figure) Render(w, h int) (image.Image, error) {
	if w <= 0 || h <= 0 {
		return nil, ErrInvalidSize
	}
	ch, ok := f.Build(w, h)
	if !ok {
		msg := MsgNoData
		if len(f.Lines) > 0 && f.VisibleCount() == 0 {
			msg = MsgAllHidden
		}
		return Placeholder(w, h, msg), nil
	}
	var buf bytes.Buffer
	if err := ch.Render(gochart.PNG, &buf); err != nil {
		return nil, err
	}
	return png.Decode(&buf)
}

// Blank returns a plain white image.
func Blank(w, h int) *image.RGBA {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
	return img
}

// Placeholder returns a blank image with msg drawn near the centre.
func Placeholder(w, h int, msg string) image.Image {
	img := Blank(w, h)
	face := basicfont.Face7x13
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.Gray{Y: 96}),
		Face: face,
	}
	tw := d.MeasureString(msg).Ceil()
	x := (img.Bounds().Dx() - tw) / 2
	if x < 4 {
		x = 4
	}
	y := img.Bounds().Dy()/2 + face.Ascent/2
	d.Dot = fixed.P(x, y)
	d.DrawString(msg)
	return img
}
