// Package table holds the parsed spreadsheet model: an index plus named
// numeric columns aligned against it, and the readers that build it from
// .xlsx and .xls workbooks.
package table

import (
	"fmt"
	"time"
)

// TimeLayout is the display layout for time index values.
const TimeLayout = "2006-01-02 15:04:05"

// Kind classifies the index column.
type Kind int

const (
	// KindNumber: every index cell is numeric.
	KindNumber Kind = iota
	// KindTime: every index cell is a date or timestamp.
	KindTime
	// KindLabel: anything else; rows are plotted at positions 1..n.
	KindLabel
)

func (k Kind) String() string {
	switch k {
	case KindTime:
		return "time"
	case KindLabel:
		return "label"
	default:
		return "number"
	}
}

// Index is the shared ordering key of a Table. Labels always holds the
// display text; Times or Numbers is populated according to Kind.
type Index struct {
	Name    string
	Kind    Kind
	Times   []time.Time
	Numbers []float64
	Labels  []string
}

// Len returns the number of rows.
func (ix Index) Len() int { return len(ix.Labels) }

// Column is one named data column. Empty and non-numeric cells are NaN.
type Column struct {
	Name   string
	Values []float64
}

// Table is a parsed sheet. It is read-only once built.
type Table struct {
	Path    string
	Sheet   string
	Index   Index
	Columns []Column
}

// Len returns the number of data rows.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return t.Index.Len()
}

// ColumnNames returns the column names in order.
func (t *Table) ColumnNames() []string {
	if t == nil {
		return nil
	}
	out := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		out[i] = c.Name
	}
	return out
}

// Column looks a column up by name.
func (t *Table) Column(name string) (Column, bool) {
	if t == nil {
		return Column{}, false
	}
	for _, c := range t.Columns {
		if c.Name == name {
			return c, true
		}
	}
	return Column{}, false
}

// Validate checks that every column is aligned with the index.
func (t *Table) Validate() error {
	if t == nil {
		return fmt.Errorf("nil table")
	}
	n := t.Index.Len()
	switch t.Index.Kind {
	case KindTime:
		if len(t.Index.Times) != n {
			return fmt.Errorf("index %q: %d times for %d rows", t.Index.Name, len(t.Index.Times), n)
		}
	case KindNumber:
		if len(t.Index.Numbers) != n {
			return fmt.Errorf("index %q: %d numbers for %d rows", t.Index.Name, len(t.Index.Numbers), n)
		}
	}
	for _, c := range t.Columns {
		if len(c.Values) != n {
			return fmt.Errorf("column %q: %d values for %d rows", c.Name, len(c.Values), n)
		}
	}
	return nil
}
