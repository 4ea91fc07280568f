package table

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// Cell is one decoded spreadsheet cell. Readers set IsTime when the
// workbook itself marks the cell as a date.
type Cell struct {
	Text   string
	Time   time.Time
	IsTime bool
}

func (c Cell) empty() bool { return !c.IsTime && strings.TrimSpace(c.Text) == "" }

// timeLayouts are tried in order against index text. All parse as UTC so
// the displayed value matches the sheet.
var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02 15:04:05.999999999",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
	"2006/01/02 15:04:05",
	"2006/01/02 15:04",
	"2006/01/02",
	"2006.01.02 15:04:05",
	"2006.01.02",
	"1/2/2006 15:04:05",
	"1/2/2006 15:04",
	"1/2/2006",
	"1/2/06 15:04",
	"01-02-06",
}

// parseTimestamp parses s with the first matching layout.
func parseTimestamp(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range timeLayouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// parseNumber accepts finite numbers only; text such as "inf" stays text.
func parseNumber(s string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsInf(v, 0) || math.IsNaN(v) {
		return math.NaN(), false
	}
	return v, true
}

// FromGrid builds a Table from decoded rows. The first non-empty row is
// the header, the first column is the index and every other column is a
// data column. Fully empty rows are dropped and ragged rows are padded.
func FromGrid(rows [][]Cell) (*Table, error) {
	kept := make([][]Cell, 0, len(rows))
	width := 0
	for _, row := range rows {
		if rowEmpty(row) {
			continue
		}
		kept = append(kept, row)
		if len(row) > width {
			width = len(row)
		}
	}
	if len(kept) == 0 {
		return nil, ErrEmptySheet
	}
	header := pad(kept[0], width)
	data := kept[1:]

	for i, row := range data {
		data[i] = pad(row, width)
	}

	t := &Table{}
	names := columnNames(header)
	indexCells := make([]Cell, len(data))
	for r, row := range data {
		indexCells[r] = row[0]
	}
	t.Index = buildIndex(names[0], indexCells)

	for c := 1; c < width; c++ {
		values := make([]float64, len(data))
		for r, row := range data {
			values[r], _ = parseNumber(row[c].Text)
		}
		t.Columns = append(t.Columns, Column{Name: names[c], Values: values})
	}
	return t, nil
}

func rowEmpty(row []Cell) bool {
	for _, c := range row {
		if !c.empty() {
			return false
		}
	}
	return true
}

func pad(row []Cell, width int) []Cell {
	if len(row) >= width {
		return row
	}
	out := make([]Cell, width)
	copy(out, row)
	return out
}

// columnNames applies the header naming rules: blank cells become
// "Unnamed: <i>" and repeats get ".1", ".2" suffixes. Position 0 is the
// index name and is left blank when the sheet leaves it blank.
func columnNames(header []Cell) []string {
	names := make([]string, len(header))
	seen := map[string]int{}
	for i, c := range header {
		name := strings.TrimSpace(c.Text)
		if name == "" && c.IsTime {
			name = c.Time.Format(TimeLayout)
		}
		if i == 0 {
			names[0] = name
			continue
		}
		if name == "" {
			name = "Unnamed: " + strconv.Itoa(i)
		}
		if _, dup := seen[name]; dup {
			base := name
			for k := seen[base] + 1; ; k++ {
				candidate := base + "." + strconv.Itoa(k)
				if _, taken := seen[candidate]; !taken {
					seen[base] = k
					name = candidate
					break
				}
			}
		}
		seen[name] = 0
		names[i] = name
	}
	return names
}

func buildIndex(name string, cells []Cell) Index {
	ix := Index{Name: name, Labels: make([]string, len(cells))}
	times := make([]time.Time, len(cells))
	numbers := make([]float64, len(cells))
	allTime, allNumber := true, true
	for i, c := range cells {
		ix.Labels[i] = strings.TrimSpace(c.Text)
		if c.IsTime {
			times[i] = c.Time
		} else if t, ok := parseTimestamp(c.Text); ok {
			times[i] = t
		} else {
			allTime = false
		}
		if v, ok := parseNumber(c.Text); ok && !c.IsTime {
			numbers[i] = v
		} else {
			allNumber = false
		}
	}
	switch {
	case allTime && len(cells) > 0:
		ix.Kind = KindTime
		ix.Times = times
		for i, t := range times {
			ix.Labels[i] = t.Format(TimeLayout)
		}
	case allNumber:
		ix.Kind = KindNumber
		ix.Numbers = numbers
	default:
		ix.Kind = KindLabel
	}
	return ix
}
