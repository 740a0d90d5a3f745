// Package logging provides structured JSON logging with per-component and
// per-request trace support.
package logging

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"
)

// Logger is the logging interface used across the pipeline.
type Logger interface {
	Debug(msg string, fields ...interface{})
	Info(msg string, fields ...interface{})
	Warn(msg string, fields ...interface{})
	Error(msg string, fields ...interface{})

	WithComponent(component string) Logger
	WithTraceID(traceID string) Logger
}

// Level represents a logging level.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

// ParseLevel converts a config string into a Level, defaulting to info.
func ParseLevel(s string) Level {
	switch strings.ToLower(s) {
	case "debug":
		return LevelDebug
	case "warn", "warning":
		return LevelWarn
	case "error":
		return LevelError
	default:
		return LevelInfo
	}
}

// entry is one emitted log line.
type entry struct {
	Timestamp string                 `json:"timestamp"`
	Level     string                 `json:"level"`
	Message   string                 `json:"message"`
	Component string                 `json:"component,omitempty"`
	TraceID   string                 `json:"trace_id,omitempty"`
	Fields    map[string]interface{} `json:"fields,omitempty"`
}

// StructuredLogger emits JSON log lines to stdout (or plain text when
// format is "text").
type StructuredLogger struct {
	level     Level
	component string
	traceID   string
	useJSON   bool
}

// New creates a logger at the given level. Format "text" disables JSON
// output; anything else means JSON lines.
func New(level Level, format string) Logger {
	return &StructuredLogger{
		level:   level,
		useJSON: format != "text",
	}
}

// WithComponent returns a copy of the logger tagged with a component name.
func (l *StructuredLogger) WithComponent(component string) Logger {
	clone := *l
	clone.component = component
	return &clone
}

// WithTraceID returns a copy of the logger tagged with a trace ID.
func (l *StructuredLogger) WithTraceID(traceID string) Logger {
	clone := *l
	clone.traceID = traceID
	return &clone
}

// Debug logs a debug message.
func (l *StructuredLogger) Debug(msg string, fields ...interface{}) {
	l.log(LevelDebug, "DEBUG", msg, fields...)
}

// Info logs an info message.
func (l *StructuredLogger) Info(msg string, fields ...interface{}) {
	l.log(LevelInfo, "INFO", msg, fields...)
}

// Warn logs a warning message.
func (l *StructuredLogger) Warn(msg string, fields ...interface{}) {
	l.log(LevelWarn, "WARN", msg, fields...)
}

// Error logs an error message.
func (l *StructuredLogger) Error(msg string, fields ...interface{}) {
	l.log(LevelError, "ERROR", msg, fields...)
}

func (l *StructuredLogger) log(level Level, name, msg string, fields ...interface{}) {
	if level < l.level {
		return
	}

	// Fields arrive as alternating key/value pairs.
	var fieldMap map[string]interface{}
	if len(fields) > 0 {
		fieldMap = make(map[string]interface{}, len(fields)/2)
		for i := 0; i+1 < len(fields); i += 2 {
			fieldMap[fmt.Sprintf("%v", fields[i])] = fields[i+1]
		}
	}

	e := entry{
		Timestamp: time.Now().UTC().Format(time.RFC3339Nano),
		Level:     name,
		Message:   msg,
		Component: l.component,
		TraceID:   l.traceID,
		Fields:    fieldMap,
	}

	if l.useJSON {
		if data, err := json.Marshal(e); err == nil {
			fmt.Fprintln(os.Stdout, string(data))
			return
		}
	}
	fmt.Fprintf(os.Stdout, "%s [%s] %s %s\n", e.Timestamp, e.Level, e.Component, e.Message)
}
