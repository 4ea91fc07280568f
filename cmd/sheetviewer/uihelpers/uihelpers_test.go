package uihelpers

import (
	"strings"
	"testing"
)

func TestComputeChartDimensions(t *testing.T) {
	cases := []struct {
		winW, winH  float32
		wantW, wantH int
	}{
		{800, 600, 628, 471},
		{0, 0, MinChartWidth, MinChartHeight},
		{400, 300, MinChartWidth, MinChartHeight},
		{1600, 400, 1428, 340},
	}
	for _, c := range cases {
		w, h := ComputeChartDimensions(c.winW, c.winH, 160, 48)
		if w != c.wantW || h != c.wantH {
			t.Fatalf("window %vx%v => %dx%d want %dx%d", c.winW, c.winH, w, h, c.wantW, c.wantH)
		}
	}
}

func TestTruncatePath(t *testing.T) {
	short := "/tmp/a.xlsx"
	if got := TruncatePath(short, 40); got != short {
		t.Fatalf("short path changed: %q", got)
	}
	long := "/home/user/projects/measurements/2024/june/sensor-readings.xlsx"
	got := TruncatePath(long, 40)
	if !strings.HasSuffix(got, "/...sensor-readings.xlsx") || len(got) > 40 {
		t.Fatalf("truncated = %q (%d)", got, len(got))
	}
	if got := TruncatePath(long, 10); got != "...sensor-readings.xlsx" {
		t.Fatalf("narrow = %q", got)
	}
}
