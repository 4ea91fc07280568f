package viewer

import (
	"image"
	"time"

	"github.com/iafilius/SheetSeriesViewer/src/table"
)

type fakePicker struct {
	path string
	err  error
	exts []string
}

func (p *fakePicker) PickFile(extensions []string, done func(string, error)) {
	p.exts = extensions
	done(p.path, p.err)
}

type fakeStatus struct{ text string }

func (s *fakeStatus) SetText(text string) { s.text = text }

type fakeToggle struct {
	label     string
	on        bool
	onChanged func(bool)
}

func (t *fakeToggle) SetChecked(on bool) {
	if t.on == on {
		return
	}
	t.on = on
	t.onChanged(on)
}

func (t *fakeToggle) Checked() bool { return t.on }

type fakeSurface struct {
	w, h    int
	toggles []*fakeToggle
	img     image.Image
	draws   int
	shown   int
}

func newFakeSurface() *fakeSurface { return &fakeSurface{w: 640, h: 360} }

func (s *fakeSurface) ClearToggles() { s.toggles = nil }

func (s *fakeSurface) AddToggle(label string, checked bool, onChanged func(bool)) Toggle {
	t := &fakeToggle{label: label, on: checked, onChanged: onChanged}
	s.toggles = append(s.toggles, t)
	return t
}

func (s *fakeSurface) SetImage(img image.Image) { s.img = img; s.draws++ }
func (s *fakeSurface) Size() (int, int)         { return s.w, s.h }
func (s *fakeSurface) Show()                    { s.shown++ }

func (s *fakeSurface) labels() []string {
	out := make([]string, len(s.toggles))
	for i, t := range s.toggles {
		out[i] = t.label
	}
	return out
}

var start = time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)

// sampleTable has a time index every hour and one column per name.
func sampleTable(rows int, names ...string) *table.Table {
	ix := table.Index{Name: "Timestamp", Kind: table.KindTime}
	for i := 0; i < rows; i++ {
		ts := start.Add(time.Duration(i) * time.Hour)
		ix.Times = append(ix.Times, ts)
		ix.Labels = append(ix.Labels, ts.Format(table.TimeLayout))
	}
	t := &table.Table{Index: ix}
	for c, name := range names {
		vals := make([]float64, rows)
		for i := range vals {
			vals[i] = float64(c*100 + i)
		}
		t.Columns = append(t.Columns, table.Column{Name: name, Values: vals})
	}
	return t
}
