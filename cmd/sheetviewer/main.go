package main

import (
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/iafilius/SheetSeriesViewer/cmd/sheetviewer/uihelpers"
	"github.com/iafilius/SheetSeriesViewer/src/chart"
	"github.com/iafilius/SheetSeriesViewer/src/logging"
	"github.com/iafilius/SheetSeriesViewer/src/viewer"
)

const (
	mainTitle  = "Excel File Reader"
	graphTitle = "Graph Window"
	winW, winH = 800, 600
	logLevel   = "info"
)

var logger = logging.New("sheetviewer")

// viewerApp holds the process-wide UI state.
type viewerApp struct {
	app    fyne.App
	window fyne.Window
	status *widget.Label
	graph  *graphWindow
	chart  *viewer.SeriesChart
	loader *viewer.Loader
	done   chan struct{}
}

func main() {
	if err := logging.SetLevel(logLevel); err != nil {
		logger.Warnf("%v", err)
	}
	a := app.NewWithID("io.github.iafilius.sheetviewer")
	va := newViewerApp(a)
	va.watchResize()
	va.window.ShowAndRun()
}

func newViewerApp(a fyne.App) *viewerApp {
	w := a.NewWindow(mainTitle)
	w.Resize(fyne.NewSize(winW, winH))
	w.SetMaster()

	va := &viewerApp{
		app:    a,
		window: w,
		status: widget.NewLabel(viewer.StatusNoFile),
		graph:  newGraphWindow(a),
		done:   make(chan struct{}),
	}
	va.status.Wrapping = fyne.TextWrapWord
	va.chart = viewer.NewSeriesChart(va.graph)
	va.loader = viewer.NewLoader(&filePicker{parent: w}, va.status, va.chart)
	va.graph.setActions(va.chart, va.saveChart)

	openBtn := widget.NewButtonWithIcon("Open Excel File", theme.FolderOpenIcon(), va.loader.Open)
	w.SetContent(container.NewVBox(openBtn, va.status))
	va.buildMenus()
	w.SetOnClosed(func() {
		close(va.done)
		va.graph.win.Close()
	})
	return va
}

// menus and shortcuts
func (va *viewerApp) buildMenus() {
	fileMenu := fyne.NewMenu("File",
		fyne.NewMenuItem("Open…", va.loader.Open),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Quit", func() { va.window.Close() }),
	)
	va.window.SetMainMenu(fyne.NewMainMenu(fileMenu))

	canv := va.window.Canvas()
	if canv != nil {
		open := func(fyne.Shortcut) { va.loader.Open() }
		canv.AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyO, Modifier: fyne.KeyModifierSuper}, open)
		canv.AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyO, Modifier: fyne.KeyModifierControl}, open)
	}
}

// watchResize redraws the chart when the graph window width changes.
func (va *viewerApp) watchResize() {
	c := va.graph.win.Canvas()
	if c == nil {
		return
	}
	prevW := int(c.Size().Width)
	go func() {
		t := time.NewTicker(300 * time.Millisecond)
		defer t.Stop()
		for {
			select {
			case <-va.done:
				return
			case <-t.C:
				curW := int(c.Size().Width)
				if curW != prevW {
					prevW = curW
					fyne.Do(va.chart.Redraw)
				}
			}
		}
	}()
}

// saveChart asks for a target file and writes the current view in the
// format named by its extension.
func (va *viewerApp) saveChart() {
	win := va.graph.win
	if va.chart.State() == viewer.Empty {
		dialog.ShowInformation("Save", "No chart to save.", win)
		return
	}
	fs := dialog.NewFileSave(func(wc fyne.URIWriteCloser, err error) {
		if err != nil {
			dialog.ShowError(err, win)
			return
		}
		if wc == nil {
			return
		}
		defer wc.Close()
		format, err := chart.FormatFromPath(wc.URI().Path())
		if err != nil {
			dialog.ShowError(err, win)
			return
		}
		if err := va.chart.Save(wc, format); err != nil {
			logger.Errorf("save %s: %v", wc.URI().Path(), err)
			dialog.ShowError(err, win)
			return
		}
		logger.Infof("saved chart to %s", uihelpers.TruncatePath(wc.URI().Path(), 60))
	}, win)
	fs.SetFileName("chart.png")
	fs.Show()
}

// filePicker shows the native open dialog restricted to extensions.
type filePicker struct {
	parent fyne.Window
}

func (p *filePicker) PickFile(extensions []string, done func(string, error)) {
	d := dialog.NewFileOpen(func(rc fyne.URIReadCloser, err error) {
		if err != nil {
			done("", err)
			return
		}
		if rc == nil {
			done("", nil)
			return
		}
		path := rc.URI().Path()
		rc.Close()
		done(path, nil)
	}, p.parent)
	d.SetFilter(storage.NewExtensionFileFilter(extensions))
	d.Show()
}
