package chart

import (
	"math"
	"testing"
	"time"

	gochart "github.com/wcharczuk/go-chart/v2"

	"github.com/iafilius/SheetSeriesViewer/src/table"
)

var t0 = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

// timeTable builds a table indexed every minute from t0.
func timeTable(cols map[string][]float64, order ...string) *table.Table {
	n := 0
	for _, v := range cols {
		n = len(v)
		break
	}
	ix := table.Index{Name: "Timestamp", Kind: table.KindTime}
	for i := 0; i < n; i++ {
		ts := t0.Add(time.Duration(i) * time.Minute)
		ix.Times = append(ix.Times, ts)
		ix.Labels = append(ix.Labels, ts.Format(table.TimeLayout))
	}
	t := &table.Table{Index: ix}
	for _, name := range order {
		t.Columns = append(t.Columns, table.Column{Name: name, Values: cols[name]})
	}
	return t
}

func TestNew_OneLinePerColumnInOrder(t *testing.T) {
	f := New(timeTable(map[string][]float64{
		"C": {1, 2, 3}, "A": {4, 5, 6}, "B": {7, 8, 9},
	}, "C", "A", "B"))
	names := f.LineNames()
	want := []string{"C", "A", "B"}
	if len(names) != len(want) {
		t.Fatalf("lines = %v", names)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("lines = %v, want %v", names, want)
		}
		if !f.Lines[i].Visible {
			t.Fatalf("line %d hidden by default", i)
		}
		if f.Lines[i].Column != i {
			t.Fatalf("line %d column = %d", i, f.Lines[i].Column)
		}
	}
	if f.Title != DefaultTitle || f.XLabel != DefaultXLabel || f.YLabel != DefaultYLabel || !f.Grid {
		t.Fatalf("decoration = %q %q %q grid=%v", f.Title, f.XLabel, f.YLabel, f.Grid)
	}
}

func TestNew_RoundTripValues(t *testing.T) {
	tbl := timeTable(map[string][]float64{"A": {1.5, -2, 3}, "B": {0, 0, 1}}, "A", "B")
	f := New(tbl)
	xs, ys := f.Points(0)
	if len(ys) != 3 {
		t.Fatalf("points = %v", ys)
	}
	for i, v := range tbl.Columns[0].Values {
		if ys[i] != v {
			t.Fatalf("A y[%d] = %v, want %v", i, ys[i], v)
		}
		if xs[i] != gochart.TimeToFloat64(tbl.Index.Times[i]) {
			t.Fatalf("A x[%d] = %v, want t%d", i, xs[i], i)
		}
	}
}

func TestNew_CopiesColumnValues(t *testing.T) {
	tbl := timeTable(map[string][]float64{"A": {1, 2}}, "A")
	f := New(tbl)
	f.Lines[0].Y[0] = 99
	if tbl.Columns[0].Values[0] != 1 {
		t.Fatalf("figure mutated the table")
	}
}

func TestSetVisible_OnlyTargetLine(t *testing.T) {
	f := New(timeTable(map[string][]float64{"A": {1}, "B": {2}, "C": {3}}, "A", "B", "C"))
	if !f.SetVisible(1, false) {
		t.Fatalf("SetVisible reported out of range")
	}
	for i, want := range []bool{true, false, true} {
		if f.Lines[i].Visible != want {
			t.Fatalf("line %d visible = %v, want %v", i, f.Lines[i].Visible, want)
		}
	}
	if f.VisibleCount() != 2 {
		t.Fatalf("visible count = %d", f.VisibleCount())
	}
	f.SetVisible(1, true)
	if f.VisibleCount() != 3 {
		t.Fatalf("restore failed")
	}
	if f.SetVisible(3, false) || f.SetVisible(-1, false) {
		t.Fatalf("out-of-range index accepted")
	}
}

func TestXCoords_ByIndexKind(t *testing.T) {
	num := &table.Table{
		Index:   table.Index{Kind: table.KindNumber, Numbers: []float64{10, 20}, Labels: []string{"10", "20"}},
		Columns: []table.Column{{Name: "v", Values: []float64{1, 2}}},
	}
	if f := New(num); f.X[0] != 10 || f.X[1] != 20 {
		t.Fatalf("numeric x = %v", f.X)
	}
	lab := &table.Table{
		Index:   table.Index{Kind: table.KindLabel, Labels: []string{"a", "b", "c"}},
		Columns: []table.Column{{Name: "v", Values: []float64{1, 2, 3}}},
	}
	if f := New(lab); f.X[0] != 1 || f.X[2] != 3 {
		t.Fatalf("label x = %v", f.X)
	}
}

func TestYRange_IncludesHiddenLines(t *testing.T) {
	f := New(timeTable(map[string][]float64{"A": {1, 2}, "B": {100, 200}}, "A", "B"))
	lo1, hi1 := f.yRange()
	f.SetVisible(1, false)
	lo2, hi2 := f.yRange()
	if lo1 != lo2 || hi1 != hi2 {
		t.Fatalf("y range changed on toggle: [%v,%v] -> [%v,%v]", lo1, hi1, lo2, hi2)
	}
	if hi1 < 200 || lo1 > 1 {
		t.Fatalf("y range [%v,%v] clips data", lo1, hi1)
	}
}

func TestPoints_SkipsNaN(t *testing.T) {
	f := New(timeTable(map[string][]float64{"A": {1, math.NaN(), 3}}, "A"))
	_, ys := f.Points(0)
	if len(ys) != 2 || ys[0] != 1 || ys[1] != 3 {
		t.Fatalf("points = %v", ys)
	}
}
