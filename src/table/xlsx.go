package table

import (
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
)

// readXLSX decodes the first sheet with raw cell values so numbers keep
// full precision; date-formatted serials in the index column become times.
func readXLSX(path string) (string, [][]Cell, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return "", nil, err
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return "", nil, ErrNoSheets
	}
	sheet := sheets[0]
	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return sheet, nil, err
	}

	styles := dateStyles{f: f, known: map[int]bool{}}
	out := make([][]Cell, len(rows))
	for r, row := range rows {
		cells := make([]Cell, len(row))
		for c, v := range row {
			cells[c] = Cell{Text: v}
			if c != 0 || v == "" {
				continue
			}
			serial, err := strconv.ParseFloat(v, 64)
			if err != nil {
				continue
			}
			name, err := excelize.CoordinatesToCellName(c+1, r+1)
			if err != nil || !styles.isDate(sheet, name) {
				continue
			}
			if t, err := excelize.ExcelDateToTime(serial, false); err == nil {
				cells[c].Time = t.Round(time.Millisecond)
				cells[c].IsTime = true
			}
		}
		out[r] = cells
	}
	return sheet, out, nil
}

// dateStyles caches whether a style ID carries a date/time number format.
type dateStyles struct {
	f     *excelize.File
	known map[int]bool
}

func (d dateStyles) isDate(sheet, cell string) bool {
	id, err := d.f.GetCellStyle(sheet, cell)
	if err != nil || id == 0 {
		return false
	}
	if v, ok := d.known[id]; ok {
		return v
	}
	style, err := d.f.GetStyle(id)
	v := err == nil && style != nil && (isDateNumFmt(style.NumFmt) || (style.CustomNumFmt != nil && isDateFormatCode(*style.CustomNumFmt)))
	d.known[id] = v
	return v
}

// isDateNumFmt reports whether a built-in number format ID is a date or time.
func isDateNumFmt(id int) bool {
	switch {
	case id >= 14 && id <= 22:
		return true
	case id >= 27 && id <= 36:
		return true
	case id >= 45 && id <= 47:
		return true
	case id >= 50 && id <= 58:
		return true
	}
	return false
}

// isDateFormatCode reports whether a custom format code contains date or
// time tokens outside quoted literals and bracketed sections.
func isDateFormatCode(code string) bool {
	var b strings.Builder
	inQuote, inBracket := false, false
	for i := 0; i < len(code); i++ {
		ch := code[i]
		switch {
		case ch == '"':
			inQuote = !inQuote
		case inQuote:
		case ch == '[':
			inBracket = true
		case ch == ']':
			inBracket = false
		case inBracket:
		case ch == '\\' && i+1 < len(code):
			i++
		default:
			b.WriteByte(ch)
		}
	}
	return strings.ContainsAny(strings.ToLower(b.String()), "ydhs")
}
