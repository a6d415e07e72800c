package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
	"time"
)

type Logger struct {
	debugEnabled bool
	pretty       bool
	mu           sync.Mutex
	out          io.Writer
}

type Event struct {
	Time    time.Time
	Level   slog.Level
	Message string
	Fields  map[string]any
}

// New returns a logger writing to stderr, styled when stderr looks like a colour terminal.
func New(debug bool) *Logger {
	return &Logger{
		debugEnabled: debug,
		pretty:       shouldPrettyPrint(),
		out:          os.Stderr,
	}
}

// NewPlain writes unstyled lines to w.
func NewPlain(w io.Writer, debug bool) *Logger {
	return &Logger{debugEnabled: debug, out: w}
}

func Field(key string, value any) slog.Attr {
	return slog.Any(key, value)
}

func shouldPrettyPrint() bool {
	term := strings.TrimSpace(os.Getenv("TERM"))
	if term == "" || term == "dumb" {
		return false
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	return true
}

func (l *Logger) Debugf(format string, args ...any) {
	l.Debug(fmt.Sprintf(format, args...))
}

func (l *Logger) Debug(msg string, fields ...slog.Attr) {
	if l == nil || !l.debugEnabled {
		return
	}
	l.log(slog.LevelDebug, msg, fields)
}

func (l *Logger) Info(msg string, fields ...slog.Attr) {
	if l == nil {
		return
	}
	l.log(slog.LevelInfo, msg, fields)
}

func (l *Logger) Warn(msg string, fields ...slog.Attr) {
	if l == nil {
		return
	}
	l.log(slog.LevelWarn, msg, fields)
}

func (l *Logger) Error(msg string, fields ...slog.Attr) {
	if l == nil {
		return
	}
	l.log(slog.LevelError, msg, fields)
}

func (l *Logger) log(level slog.Level, msg string, attrs []slog.Attr) {
	event := Event{
		Time:    time.Now(),
		Level:   level,
		Message: msg,
		Fields:  attrsToMap(attrs),
	}
	var line string
	if l.pretty {
		line = FormatEventANSI(event)
	} else {
		line = FormatEventLine(event)
	}
	l.mu.Lock()
	_, _ = io.WriteString(l.out, line)
	l.mu.Unlock()
}
