// Package logging is a small leveled logger. Each package takes a Logger
// tagged with its component name; level and output are process-wide.
package logging

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"sync/atomic"
)

// Level represents severity.
type Level int32

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

var levelNames = map[string]Level{
	"debug":   LevelDebug,
	"info":    LevelInfo,
	"warn":    LevelWarn,
	"warning": LevelWarn,
	"error":   LevelError,
}

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	}
	return "INFO"
}

// ParseLevel maps a level name ("debug", "info", "warn", "error") to a Level.
func ParseLevel(s string) (Level, error) {
	l, ok := levelNames[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return LevelInfo, fmt.Errorf("unknown log level %q", s)
	}
	return l, nil
}

var currentLevel atomic.Int32

func init() { currentLevel.Store(int32(LevelInfo)) }

var baseLogger = log.New(os.Stderr, "", log.Ldate|log.Ltime|log.Lmicroseconds)

// SetLevel sets the global level. An unknown name leaves it unchanged.
func SetLevel(s string) error {
	l, err := ParseLevel(s)
	if err != nil {
		return err
	}
	currentLevel.Store(int32(l))
	return nil
}

// GetLevel returns the current global level.
func GetLevel() Level { return Level(currentLevel.Load()) }

// SetOutput redirects all log lines.
func SetOutput(w io.Writer) { baseLogger.SetOutput(w) }

// Logger writes lines tagged with a component name.
type Logger struct {
	component string
}

// New returns a Logger for component.
func New(component string) *Logger { return &Logger{component: component} }

// Enabled reports whether lines at l are written.
func (lg *Logger) Enabled(l Level) bool { return l >= GetLevel() }

// Log writes msg verbatim at level l.
func (lg *Logger) Log(l Level, msg string) {
	if !lg.Enabled(l) {
		return
	}
	baseLogger.Printf("[%s] %s: %s", l, lg.component, msg)
}

func (lg *Logger) Debugf(format string, a ...interface{}) {
	if lg.Enabled(LevelDebug) {
		lg.Log(LevelDebug, fmt.Sprintf(format, a...))
	}
}

func (lg *Logger) Infof(format string, a ...interface{}) {
	lg.Log(LevelInfo, fmt.Sprintf(format, a...))
}

func (lg *Logger) Warnf(format string, a ...interface{}) {
	lg.Log(LevelWarn, fmt.Sprintf(format, a...))
}

func (lg *Logger) Errorf(format string, a ...interface{}) {
	lg.Log(LevelError, fmt.Sprintf(format, a...))
}
