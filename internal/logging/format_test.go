package logging

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"
)

func TestFormatEventLine(t *testing.T) {
	event := Event{
		Time:    time.Date(2026, 3, 1, 9, 4, 5, 0, time.UTC),
		Level:   slog.LevelInfo,
		Message: "wrote sprite",
		Fields: map[string]any{
			"path":  "assets/obstacles/obstacle.png",
			"error": errors.New("disk full"),
			"bytes": 812,
		},
	}
	got := FormatEventLine(event)
	want := `09:04:05 [INFO] wrote sprite bytes=812 path=assets/obstacles/obstacle.png error="disk full"` + "\n"
	if got != want {
		t.Fatalf("FormatEventLine() = %q, want %q", got, want)
	}
}

func TestFormatEventLine_StripsANSI(t *testing.T) {
	event := Event{
		Time:    time.Date(2026, 3, 1, 9, 4, 5, 0, time.UTC),
		Level:   slog.LevelWarn,
		Message: "\x1b[1mbold\x1b[0m",
	}
	if got := FormatEventLine(event); got != "09:04:05 [WARN] bold\n" {
		t.Fatalf("FormatEventLine() = %q", got)
	}
}

func TestOrderedFieldKeys_ErrorLast(t *testing.T) {
	keys := orderedFieldKeys(map[string]any{"zeta": 1, "error": "x", "alpha": 2})
	if strings.Join(keys, ",") != "alpha,zeta,error" {
		t.Fatalf("orderedFieldKeys = %v", keys)
	}
}

func TestLoggerDebugSuppressed(t *testing.T) {
	var buf bytes.Buffer
	logger := NewPlain(&buf, false)
	logger.Debug("hidden")
	logger.Info("shown", Field("kind", "obstacle"))
	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("debug line leaked: %q", out)
	}
	if !strings.Contains(out, "[INFO] shown kind=obstacle") {
		t.Fatalf("info line missing: %q", out)
	}

	buf.Reset()
	NewPlain(&buf, true).Debugf("rendered %d pixels", 4096)
	if !strings.Contains(buf.String(), "[DEBUG] rendered 4096 pixels") {
		t.Fatalf("debug line missing: %q", buf.String())
	}
}

func TestNilLoggerIsNoop(t *testing.T) {
	var logger *Logger
	logger.Info("ignored")
	logger.Error("ignored")
}

func TestFormatEventANSI_ContainsMessage(t *testing.T) {
	event := Event{Time: time.Now(), Level: slog.LevelError, Message: "encode failed", Fields: map[string]any{"kind": "speed_boost"}}
	out := FormatEventANSI(event)
	plain := FormatEventLine(Event{Time: event.Time, Level: event.Level, Message: out})
	if !strings.Contains(plain, "encode failed") || !strings.Contains(plain, "kind=speed_boost") {
		t.Fatalf("styled output lost content: %q", plain)
	}
}
