// Package logging implements a severity-gated line logger.
//
// Each line is formatted as "<timestamp> SEVERITY -- <progname>: <message>"
// and written to a configured sink. Messages below the logger's minimum
// level are dropped before any formatting happens, so message construction
// can be deferred with the *Func variants.
package logging

import (
	"fmt"
	"io"
	"sync"
	"time"
)

// Level is a message severity.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
	LevelFatal
)

// String returns the severity label used in formatted lines.
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	case LevelFatal:
		return "FATAL"
	default:
		return "ANY"
	}
}

// timeLayout has no internal spaces so a line's timestamp can be stripped
// by cutting at the first space.
const timeLayout = "2006-01-02T15:04:05.000000"

// Logger writes severity-gated lines to a sink. Safe for concurrent use.
type Logger struct {
	mu       sync.Mutex
	out      io.Writer
	level    Level
	progname string
}

// New creates a logger writing to out at LevelDebug with no progname.
func New(out io.Writer) *Logger {
	return &Logger{out: out, level: LevelDebug}
}

// SetLevel sets the minimum severity that will be written.
func (l *Logger) SetLevel(level Level) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.level = level
}

// Level returns the current minimum severity.
func (l *Logger) Level() Level {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.level
}

// SetProgname sets the default program name printed on each line.
func (l *Logger) SetProgname(name string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.progname = name
}

// Log writes one line at the given severity under the given progname.
// Lines below the minimum level are dropped.
func (l *Logger) Log(level Level, progname, msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if level < l.level {
		return
	}
	fmt.Fprintf(l.out, "%s %s -- %s: %s\n",
		time.Now().Format(timeLayout), level, progname, msg)
}

// logFunc evaluates fn only when the level passes the gate.
func (l *Logger) logFunc(level Level, progname string, fn func() string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if level < l.level {
		return
	}
	fmt.Fprintf(l.out, "%s %s -- %s: %s\n",
		time.Now().Format(timeLayout), level, progname, fn())
}

// Debug logs msg at LevelDebug under the logger's progname.
func (l *Logger) Debug(msg string) { l.Log(LevelDebug, l.defaultProgname(), msg) }

// Info logs msg at LevelInfo under the logger's progname.
func (l *Logger) Info(msg string) { l.Log(LevelInfo, l.defaultProgname(), msg) }

// Warn logs msg at LevelWarn under the logger's progname.
func (l *Logger) Warn(msg string) { l.Log(LevelWarn, l.defaultProgname(), msg) }

// Error logs msg at LevelError under the logger's progname.
func (l *Logger) Error(msg string) { l.Log(LevelError, l.defaultProgname(), msg) }

// Fatal logs msg at LevelFatal under the logger's progname.
// It does not terminate the process.
func (l *Logger) Fatal(msg string) { l.Log(LevelFatal, l.defaultProgname(), msg) }

// DebugFunc logs fn() at LevelDebug under progname, evaluating fn only when
// LevelDebug passes the gate.
func (l *Logger) DebugFunc(progname string, fn func() string) {
	l.logFunc(LevelDebug, progname, fn)
}

// InfoFunc logs fn() at LevelInfo under progname, evaluating fn only when
// LevelInfo passes the gate.
func (l *Logger) InfoFunc(progname string, fn func() string) {
	l.logFunc(LevelInfo, progname, fn)
}

// WarnFunc logs fn() at LevelWarn under progname.
func (l *Logger) WarnFunc(progname string, fn func() string) {
	l.logFunc(LevelWarn, progname, fn)
}

// ErrorFunc logs fn() at LevelError under progname.
func (l *Logger) ErrorFunc(progname string, fn func() string) {
	l.logFunc(LevelError, progname, fn)
}

func (l *Logger) defaultProgname() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.progname
}
