package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// DefaultPath is the viewer log file, relative to the working directory (project root when run via go run ./cmd/viewer).
const DefaultPath = "logs/viewer.txt"

// Logger keeps every line in memory and appends it to a file on disk.
// Lines are formatted as "[timestamp] [prefix] LEVEL: message"; Log writes a line without a level.
type Logger struct {
	mu     sync.Mutex
	lines  []string
	path   string
	prefix string
	debug  bool
	now    func() time.Time
}

// New returns a Logger writing to path and ensures its directory exists.
// An empty path keeps lines in memory only (used by tests).
func New(path, prefix string) *Logger {
	if path != "" {
		_ = os.MkdirAll(filepath.Dir(path), 0755)
	}
	return &Logger{lines: make([]string, 0), path: path, prefix: prefix, now: time.Now}
}

// SetDebug enables or disables Debugf output.
func (l *Logger) SetDebug(enabled bool) {
	l.mu.Lock()
	l.debug = enabled
	l.mu.Unlock()
}

// DebugEnabled reports whether Debugf lines are kept.
func (l *Logger) DebugEnabled() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.debug
}

// Log appends a line prefixed with [timestamp] using computer time.
func (l *Logger) Log(line string) {
	ts := l.now().Format("2006-01-02 15:04:05")
	stamped := "[" + ts + "] " + line

	l.mu.Lock()
	l.lines = append(l.lines, stamped)
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

func (l *Logger) levelf(level, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	if l.prefix != "" {
		l.Log(fmt.Sprintf("[%s] %s: %s", l.prefix, level, msg))
		return
	}
	l.Log(level + ": " + msg)
}

func (l *Logger) Debugf(format string, args ...any) {
	if !l.DebugEnabled() {
		return
	}
	l.levelf("DEBUG", format, args...)
}

func (l *Logger) Infof(format string, args ...any) {
	l.levelf("INFO", format, args...)
}

func (l *Logger) Warnf(format string, args ...any) {
	l.levelf("WARN", format, args...)
}

func (l *Logger) Errorf(format string, args ...any) {
	l.levelf("ERROR", format, args...)
}

// Lines returns a copy of all stored lines.
func (l *Logger) Lines() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]string, len(l.lines))
	copy(out, l.lines)
	return out
}
