package main

import (
	"image"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/iafilius/SheetSeriesViewer/cmd/sheetviewer/uihelpers"
	"github.com/iafilius/SheetSeriesViewer/src/chart"
	"github.com/iafilius/SheetSeriesViewer/src/viewer"
)

// graphWindow is the secondary window: navigation toolbar, chart image
// and one checkbox per series. It implements viewer.Surface.
type graphWindow struct {
	win     fyne.Window
	toolbar *widget.Toolbar
	img     *canvas.Image
	checks  *fyne.Container
	side    *container.Scroll
}

func newGraphWindow(a fyne.App) *graphWindow {
	g := &graphWindow{
		win:     a.NewWindow(graphTitle),
		toolbar: widget.NewToolbar(),
		img:     canvas.NewImageFromImage(chart.Blank(1, 1)),
		checks:  container.NewVBox(),
	}
	g.img.FillMode = canvas.ImageFillContain
	g.side = container.NewVScroll(g.checks)
	g.side.SetMinSize(fyne.NewSize(160, 0))
	g.win.SetContent(container.NewBorder(g.toolbar, nil, nil, g.side, g.img))
	g.win.Resize(fyne.NewSize(winW, winH))
	// closing only hides; the next load shows it again
	g.win.SetCloseIntercept(g.win.Hide)
	return g
}

// setActions fills the toolbar once the chart exists.
func (g *graphWindow) setActions(c *viewer.SeriesChart, save func()) {
	g.toolbar.Items = []widget.ToolbarItem{
		widget.NewToolbarAction(theme.HomeIcon(), c.Home),
		widget.NewToolbarAction(theme.NavigateBackIcon(), c.PanLeft),
		widget.NewToolbarAction(theme.NavigateNextIcon(), c.PanRight),
		widget.NewToolbarAction(theme.ZoomInIcon(), c.ZoomIn),
		widget.NewToolbarAction(theme.ZoomOutIcon(), c.ZoomOut),
		widget.NewToolbarSeparator(),
		widget.NewToolbarAction(theme.DocumentSaveIcon(), save),
	}
	g.toolbar.Refresh()
}

func (g *graphWindow) ClearToggles() {
	g.checks.RemoveAll()
}

func (g *graphWindow) AddToggle(label string, checked bool, onChanged func(bool)) viewer.Toggle {
	chk := widget.NewCheck(label, nil)
	chk.SetChecked(checked)
	chk.OnChanged = onChanged
	g.checks.Add(chk)
	return checkToggle{chk}
}

func (g *graphWindow) SetImage(img image.Image) {
	g.img.Image = img
	w, h := g.Size()
	g.img.SetMinSize(fyne.NewSize(float32(w)/2, float32(h)/2))
	g.img.Refresh()
}

func (g *graphWindow) Size() (int, int) {
	sz := fyne.NewSize(winW, winH)
	if c := g.win.Canvas(); c != nil && c.Size().Width > 0 {
		sz = c.Size()
	}
	return uihelpers.ComputeChartDimensions(sz.Width, sz.Height, g.side.MinSize().Width, g.toolbar.MinSize().Height)
}

func (g *graphWindow) Show() {
	g.win.Show()
}

// checkToggle adapts a fyne checkbox to viewer.Toggle.
type checkToggle struct {
	chk *widget.Check
}

func (t checkToggle) SetChecked(on bool) { t.chk.SetChecked(on) }
func (t checkToggle) Checked() bool      { return t.chk.Checked }
