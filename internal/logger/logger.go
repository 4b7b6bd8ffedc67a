// Package logger provides structured JSON logging and run metrics for the
// NDR results pipeline.
//
// Log entries are single-line JSON with level, timestamp, message, optional
// structured fields, and an optional error. The metrics tracker counts
// per-run totals (events fetched, rows written, errors) and fetch timings;
// the pipeline prints a snapshot at the end of a run.
package logger

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

// Level represents log severity.
type Level string

const (
	LevelDebug Level = "DEBUG"
	LevelInfo  Level = "INFO"
	LevelWarn  Level = "WARN"
	LevelError Level = "ERROR"
)

// Fields represents structured log fields.
type Fields map[string]interface{}

// Logger writes structured log entries at or above a minimum level.
type Logger struct {
	mu       sync.Mutex
	minLevel Level
	output   io.Writer
}

// LogEntry is the wire shape of a single log line.
type LogEntry struct {
	Timestamp string `json:"timestamp"`
	Level     string `json:"level"`
	Message   string `json:"message"`
	Fields    Fields `json:"fields,omitempty"`
	Error     string `json:"error,omitempty"`
}

var defaultLogger *Logger

func init() {
	defaultLogger = New(LevelInfo, os.Stderr)
}

// New creates a logger with the given minimum level writing to output.
// Messages below the minimum level are discarded.
func New(level Level, output io.Writer) *Logger {
	return &Logger{
		minLevel: level,
		output:   output,
	}
}

// SetDefault replaces the package-level logger used by the convenience
// functions. The CLI calls this once after parsing --verbose.
func SetDefault(l *Logger) {
	defaultLogger = l
}

func (l *Logger) log(level Level, message string, fields Fields, err error) {
	if !l.shouldLog(level) {
		return
	}

	entry := LogEntry{
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Level:     string(level),
		Message:   message,
		Fields:    fields,
	}
	if err != nil {
		entry.Error = err.Error()
	}

	data, marshalErr := json.Marshal(entry)

	l.mu.Lock()
	defer l.mu.Unlock()
	if marshalErr != nil {
		// Fall back to plain text rather than dropping the entry.
		fmt.Fprintf(l.output, "[%s] %s: %s (marshal error: %v)\n",
			entry.Timestamp, entry.Level, entry.Message, marshalErr)
		return
	}
	fmt.Fprintln(l.output, string(data))
}

func (l *Logger) shouldLog(level Level) bool {
	levels := map[Level]int{
		LevelDebug: 0,
		LevelInfo:  1,
		LevelWarn:  2,
		LevelError: 3,
	}
	return levels[level] >= levels[l.minLevel]
}

// Debug logs a debug message with optional structured fields.
func (l *Logger) Debug(message string, fields Fields) {
	l.log(LevelDebug, message, fields, nil)
}

// Info logs an informational message with optional structured fields.
func (l *Logger) Info(message string, fields Fields) {
	l.log(LevelInfo, message, fields, nil)
}

// Warn logs a warning with optional structured fields.
func (l *Logger) Warn(message string, fields Fields) {
	l.log(LevelWarn, message, fields, nil)
}

// Error logs an error with optional structured fields and the error itself.
func (l *Logger) Error(message string, fields Fields, err error) {
	l.log(LevelError, message, fields, err)
}

// Package-level convenience functions using the default logger.

// Debug logs a debug message with the default logger.
func Debug(message string, fields Fields) {
	defaultLogger.Debug(message, fields)
}

// Info logs an info message with the default logger.
func Info(message string, fields Fields) {
	defaultLogger.Info(message, fields)
}

// Warn logs a warning with the default logger.
func Warn(message string, fields Fields) {
	defaultLogger.Warn(message, fields)
}

// Error logs an error with the default logger.
func Error(message string, fields Fields, err error) {
	defaultLogger.Error(message, fields, err)
}
