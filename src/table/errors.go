package table

import (
	"errors"
	"fmt"
)

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrUnsupportedFormat indicates an extension no reader handles.
var ErrUnsupportedFormat = errors.New("unsupported file format")

// ErrNoSheets indicates a workbook without worksheets.
var ErrNoSheets = errors.New("workbook has no sheets")

// ErrEmptySheet indicates the first sheet has no non-empty rows.
var ErrEmptySheet = errors.New("no columns to parse from file")

// ParseError wraps a reader failure with the file and sheet it came from.
type ParseError struct {
	Path  string
	Sheet string
	Err   error
}

func (e *ParseError) Error() string {
	if e.Sheet == "" {
		return fmt.Sprintf("parse %s: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("parse %s (sheet %q): %v", e.Path, e.Sheet, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
