package logging

import (
	"bytes"
	"os"
	"strings"
	"testing"
)

// capture sends log output to a buffer at level until the test ends.
func capture(t *testing.T, level string) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	SetOutput(&buf)
	if err := SetLevel(level); err != nil {
		t.Fatalf("SetLevel(%q): %v", level, err)
	}
	t.Cleanup(func() {
		SetOutput(os.Stderr)
		_ = SetLevel("info")
	})
	return &buf
}

func TestLevelFiltering(t *testing.T) {
	buf := capture(t, "warn")
	lg := New("table")
	lg.Infof("hidden %d", 1)
	lg.Warnf("shown %d", 2)
	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("info line should be filtered at warn level: %q", out)
	}
	if !strings.Contains(out, "[WARN] table: shown 2") {
		t.Fatalf("expected warn line, got %q", out)
	}
}

func TestSetLevel_UnknownNameKeepsLevel(t *testing.T) {
	capture(t, "error")
	if err := SetLevel("loud"); err == nil {
		t.Fatalf("expected error for unknown level")
	}
	if GetLevel() != LevelError {
		t.Fatalf("unknown level changed state: %v", GetLevel())
	}
}

func TestParseLevel(t *testing.T) {
	cases := map[string]Level{
		"debug":   LevelDebug,
		" INFO ":  LevelInfo,
		"warning": LevelWarn,
		"Error":   LevelError,
	}
	for in, want := range cases {
		got, err := ParseLevel(in)
		if err != nil || got != want {
			t.Fatalf("ParseLevel(%q) = %v, %v; want %v", in, got, err, want)
		}
	}
}

func TestLog_KeepsLiteralPercent(t *testing.T) {
	buf := capture(t, "debug")
	path := "/tmp/100%done.xlsx"
	New("viewer").Log(LevelDebug, "loaded "+path)
	if !strings.Contains(buf.String(), "[DEBUG] viewer: loaded /tmp/100%done.xlsx") {
		t.Fatalf("literal percent mangled: %q", buf.String())
	}
}

func TestEnabled(t *testing.T) {
	capture(t, "info")
	lg := New("chart")
	if lg.Enabled(LevelDebug) || !lg.Enabled(LevelInfo) || !lg.Enabled(LevelError) {
		t.Fatalf("Enabled disagrees with level %v", GetLevel())
	}
}
