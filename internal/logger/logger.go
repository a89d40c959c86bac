package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

// DefaultFilePath is the viewer log file, relative to the working directory (project root when run via go run ./cmd/viewer).
const DefaultFilePath = "logs/viewer.txt"

// Level tags an entry. Factories only ever emit Warn; the viewer emits Info for lifecycle events.
type Level int

const (
	Info Level = iota
	Warn
)

func (l Level) String() string {
	switch l {
	case Warn:
		return "WARN"
	default:
		return "INFO"
	}
}

// Warner receives diagnostics from the scene-object factories (unknown light or material types).
// A nil Warner is allowed everywhere one is accepted; see Warnf.
type Warner interface {
	Warnf(format string, args ...any)
}

// Warnf sends a diagnostic to w, or drops it when w is nil.
func Warnf(w Warner, format string, args ...any) {
	if w == nil {
		return
	}
	w.Warnf(format, args...)
}

type entry struct {
	level Level
	line  string
}

// Logger stores log lines in memory and appends them to a file on disk.
// With an empty path the log lives in memory only (tests, throwaway scenes).
type Logger struct {
	mu      sync.Mutex
	path    string
	entries []entry
}

// New returns a Logger writing to path and ensures the log directory exists.
func New(path string) *Logger {
	if path != "" {
		_ = os.MkdirAll(filepath.Dir(path), 0755)
	}
	return &Logger{path: path}
}

// Log appends an INFO line. Each entry is prefixed with [timestamp] using computer time.
func (l *Logger) Log(line string) {
	l.add(Info, line)
}

// Infof formats and appends an INFO line.
func (l *Logger) Infof(format string, args ...any) {
	l.add(Info, fmt.Sprintf(format, args...))
}

// Warnf formats and appends a WARN line. Implements Warner.
func (l *Logger) Warnf(format string, args ...any) {
	l.add(Warn, fmt.Sprintf(format, args...))
}

func (l *Logger) add(level Level, line string) {
	if l == nil {
		return
	}
	ts := time.Now().Format("2006-01-02 15:04:05")
	stamped := "[" + ts + "] " + level.String() + " " + strings.TrimRight(line, "\n")

	l.mu.Lock()
	l.entries = append(l.entries, entry{level: level, line: stamped})
	path := l.path
	l.mu.Unlock()

	if path == "" {
		return
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return
	}
	_, _ = f.WriteString(stamped + "\n")
	_ = f.Close()
}

// Lines returns a copy of all stored lines.
func (l *Logger) Lines() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]string, len(l.entries))
	for i, e := range l.entries {
		out[i] = e.line
	}
	return out
}

// Count returns how many entries of the given level have been logged.
func (l *Logger) Count(level Level) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	n := 0
	for _, e := range l.entries {
		if e.level == level {
			n++
		}
	}
	return n
}
