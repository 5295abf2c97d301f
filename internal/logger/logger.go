// Package logger provides leveled diagnostic logging for passengerpane.
//
// Diagnostics go to stderr so they never mix with the table and JSON output
// printed by the output package. By default only warnings and errors are
// shown; --verbose enables everything, and --log-level picks a level by name.
//
// Lines look like:
//
//	[DEBUG] 2026-10-19 10:30:45 installer: run /usr/bin/ruby hosts=/etc/hosts records=2
//
// Every external command passengerpane runs (the Ruby config installer,
// apachectl, touch) is logged at debug level with its arguments as fields.
package logger

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"sync"
	"time"
)

// Level represents a logging severity level.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

var levelNames = map[Level]string{
	LevelDebug: "DEBUG",
	LevelInfo:  "INFO",
	LevelWarn:  "WARN",
	LevelError: "ERROR",
}

func (l Level) String() string {
	if name, ok := levelNames[l]; ok {
		return name
	}
	return "UNKNOWN"
}

// ParseLevel maps a case-insensitive level name to a Level.
func ParseLevel(name string) (Level, error) {
	upper := strings.ToUpper(strings.TrimSpace(name))
	for level, n := range levelNames {
		if n == upper {
			return level, nil
		}
	}
	return LevelWarn, fmt.Errorf("unknown log level %q (valid: debug, info, warn, error)", name)
}

// Fields are key/value pairs appended to a log line in key order.
type Fields map[string]interface{}

// Logger writes leveled lines to an io.Writer. It is safe for concurrent use.
type Logger struct {
	mu     sync.Mutex
	level  Level
	output io.Writer
	now    func() time.Time
}

// New creates a Logger writing to w at the given minimum level.
func New(w io.Writer, level Level) *Logger {
	if w == nil {
		w = os.Stderr
	}
	return &Logger{level: level, output: w, now: time.Now}
}

var std = New(os.Stderr, LevelWarn)

// Init sets the global level from the --verbose flag.
func Init(verbose bool) {
	if verbose {
		SetLevel(LevelDebug)
		return
	}
	SetLevel(LevelWarn)
}

// SetLevel sets the minimum level of the global logger.
func SetLevel(level Level) {
	std.mu.Lock()
	defer std.mu.Unlock()
	std.level = level
}

// SetOutput redirects the global logger. A nil writer restores stderr.
func SetOutput(w io.Writer) {
	std.mu.Lock()
	defer std.mu.Unlock()
	if w == nil {
		w = os.Stderr
	}
	std.output = w
}

// GetLevel returns the level of the global logger.
func GetLevel() Level {
	std.mu.Lock()
	defer std.mu.Unlock()
	return std.level
}

// Logf writes a formatted line at level.
func (l *Logger) Logf(level Level, format string, args ...interface{}) {
	l.write(level, fmt.Sprintf(format, args...), nil)
}

// LogFields writes msg at level followed by the sorted fields.
func (l *Logger) LogFields(level Level, msg string, fields Fields) {
	l.write(level, msg, fields)
}

func (l *Logger) write(level Level, msg string, fields Fields) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if level < l.level {
		return
	}

	var b strings.Builder
	fmt.Fprintf(&b, "[%s] %s %s", level, l.now().Format("2006-01-02 15:04:05"), msg)

	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(&b, " %s=%v", k, fields[k])
	}
	b.WriteByte('\n')

	_, _ = io.WriteString(l.output, b.String())
}

func Debug(format string, args ...interface{}) { std.Logf(LevelDebug, format, args...) }
func Info(format string, args ...interface{})  { std.Logf(LevelInfo, format, args...) }
func Warn(format string, args ...interface{})  { std.Logf(LevelWarn, format, args...) }
func Error(format string, args ...interface{}) { std.Logf(LevelError, format, args...) }

func DebugFields(msg string, fields Fields) { std.LogFields(LevelDebug, msg, fields) }
func InfoFields(msg string, fields Fields)  { std.LogFields(LevelInfo, msg, fields) }
func WarnFields(msg string, fields Fields)  { std.LogFields(LevelWarn, msg, fields) }
func ErrorFields(msg string, fields Fields) { std.LogFields(LevelError, msg, fields) }

// LogError logs err at error level with a context message. Nil errors are ignored.
func LogError(err error, msg string) {
	if err == nil {
		return
	}
	std.Logf(LevelError, "%s: %v", msg, err)
}
