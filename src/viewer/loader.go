package viewer

import (
	"fmt"

	"github.com/iafilius/SheetSeriesViewer/src/logging"
	"github.com/iafilius/SheetSeriesViewer/src/table"
)

var logger = logging.New("viewer")

// Loader drives the open prompt and hands parsed tables to the chart.
type Loader struct {
	picker FilePicker
	status TextDisplay
	chart  *SeriesChart

	// Read parses a file; table.ReadFile unless replaced.
	Read func(path string) (*table.Table, error)
}

// NewLoader returns a Loader reading files with table.ReadFile.
func NewLoader(picker FilePicker, status TextDisplay, chart *SeriesChart) *Loader {
	return &Loader{picker: picker, status: status, chart: chart, Read: table.ReadFile}
}

// Open shows the picker. A cancelled prompt only updates the status.
func (l *Loader) Open() {
	l.picker.PickFile(Extensions, func(path string, err error) {
		if err != nil {
			l.fail(err)
			return
		}
		if path == "" {
			logger.Debugf("open prompt cancelled")
			l.status.SetText(StatusNoFile)
			return
		}
		_ = l.Load(path)
	})
}

// Load parses path and replaces the chart. On failure the status carries
// the reason and the current chart is left as it was.
func (l *Loader) Load(path string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%v", r)
			l.fail(err)
		}
	}()
	t, err := l.Read(path)
	if err != nil {
		l.fail(err)
		return err
	}
	l.chart.Plot(t)
	l.status.SetText(StatusLoaded + path)
	logger.Infof("loaded %s: %d rows, %d columns", path, t.Len(), len(t.Columns))
	return nil
}

func (l *Loader) fail(err error) {
	logger.Errorf("load failed: %v", err)
	l.status.SetText(StatusLoadFail + err.Error())
}
