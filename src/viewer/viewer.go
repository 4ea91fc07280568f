// Package viewer wires spreadsheet loading to the series chart. It talks
// to the desktop toolkit only through the small capability interfaces
// below, so the whole flow runs against fakes in tests.
package viewer

import (
	"image"

	"github.com/iafilius/SheetSeriesViewer/src/table"
)

// Status texts shown by the loader.
const (
	StatusNoFile   = "No file selected."
	StatusLoaded   = "Excel file loaded: "
	StatusLoadFail = "Error loading Excel file: "
)

// Extensions restricts the open prompt.
var Extensions = table.Extensions

// FilePicker presents an open prompt. done receives an empty path when
// the user cancels.
type FilePicker interface {
	PickFile(extensions []string, done func(path string, err error))
}

// TextDisplay shows a single line of status text.
type TextDisplay interface {
	SetText(text string)
}

// Toggle is one checkbox on the graph surface.
type Toggle interface {
	SetChecked(on bool)
	Checked() bool
}

// Surface is the graph window: a chart image plus a column of toggles.
type Surface interface {
	ClearToggles()
	AddToggle(label string, checked bool, onChanged func(bool)) Toggle
	SetImage(img image.Image)
	// Size reports the drawable chart area in pixels.
	Size() (int, int)
	Show()
}
