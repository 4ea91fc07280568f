package table

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/iafilius/SheetSeriesViewer/src/logging"
)

// Extensions lists the file extensions ReadFile accepts.
var Extensions = []string{".xls", ".xlsx"}

var logger = logging.New("table")

// sheetReader decodes the first worksheet of a workbook into cells.
type sheetReader func(path string) (sheet string, rows [][]Cell, err error)

func readerFor(path string) (sheetReader, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".xlsx":
		return readXLSX, nil
	case ".xls":
		return readXLS, nil
	}
	if ext == "" {
		ext = "(none)"
	}
	return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, ext)
}

// ReadFile parses the first sheet of the workbook at path, using the
// first column as the index.
func ReadFile(path string) (*Table, error) {
	read, err := readerFor(path)
	if err != nil {
		return nil, err
	}
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, &ParseError{Path: path, Err: err}
	}
	sheet, rows, err := read(path)
	if err != nil {
		return nil, &ParseError{Path: path, Sheet: sheet, Err: err}
	}
	t, err := FromGrid(rows)
	if err != nil {
		return nil, &ParseError{Path: path, Sheet: sheet, Err: err}
	}
	t.Path = path
	t.Sheet = sheet
	logger.Debugf("read %s sheet %q: %d rows, %d columns, %s index", path, sheet, t.Len(), len(t.Columns), t.Index.Kind)
	return t, nil
}
