package table

import (
	"fmt"
	"strings"

	"github.com/extrame/xls"
)

const xlsCharset = "utf-8"

// readXLS decodes the first sheet of a legacy BIFF workbook. The decoder
// panics on some malformed files; that is reported as an ordinary error.
func readXLS(path string) (sheet string, rows [][]Cell, err error) {
	defer func() {
		if r := recover(); r != nil {
			rows = nil
			err = fmt.Errorf("xls decoder: %v", r)
		}
	}()
	wb, err := xls.Open(path, xlsCharset)
	if err != nil {
		return "", nil, err
	}
	if wb.NumSheets() == 0 {
		return "", nil, ErrNoSheets
	}
	ws := wb.GetSheet(0)
	if ws == nil {
		return "", nil, ErrNoSheets
	}
	sheet = ws.Name
	for i := 0; i <= int(ws.MaxRow); i++ {
		row := ws.Row(i)
		if row == nil {
			rows = append(rows, nil)
			continue
		}
		last := row.LastCol()
		if last < 0 {
			last = 0
		}
		cells := make([]Cell, last)
		for c := row.FirstCol(); c < last; c++ {
			if c < 0 {
				continue
			}
			cells[c] = Cell{Text: strings.TrimSpace(row.Col(c))}
		}
		rows = append(rows, cells)
	}
	return sheet, rows, nil
}
