package logging

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"
)

// captureLogOutput temporarily points the global logger at a JSON buffer.
func captureLogOutput(f func()) string {
	var buf bytes.Buffer
	old := defaultLogger
	defaultLogger = slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	f()
	defaultLogger = old
	return buf.String()
}

func decodeLine(t *testing.T, out string) map[string]any {
	t.Helper()
	var m map[string]any
	if err := json.Unmarshal([]byte(strings.TrimSpace(out)), &m); err != nil {
		t.Fatalf("invalid JSON %q: %v", out, err)
	}
	return m
}

func TestInitLogger(t *testing.T) {
	tests := []struct {
		name      string
		level     Level
		format    Format
		logFunc   func()
		wantEmpty bool
		contains  string
	}{
		{name: "debug below info", level: LevelInfo, format: FormatText, logFunc: func() { Debug("hidden") }, wantEmpty: true},
		{name: "info text", level: LevelInfo, format: FormatText, logFunc: func() { Info("shown", "k", 1) }, contains: "msg=shown k=1"},
		{name: "warn json", level: LevelWarn, format: FormatJSON, logFunc: func() { Warn("careful") }, contains: `"msg":"careful"`},
		{name: "error passes warn", level: LevelWarn, format: FormatText, logFunc: func() { Error("boom") }, contains: "level=ERROR"},
		{name: "info below error", level: LevelError, format: FormatJSON, logFunc: func() { Info("hidden") }, wantEmpty: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			InitLogger(tt.level, tt.format, &buf)
			defer InitLogger(LevelWarn, FormatText, nil)

			tt.logFunc()
			out := buf.String()
			if tt.wantEmpty {
				if out != "" {
					t.Fatalf("output=%q, want empty", out)
				}
				return
			}
			if !strings.Contains(out, tt.contains) {
				t.Fatalf("output=%q, want substring %q", out, tt.contains)
			}
		})
	}
}

func TestInitLogger_TimestampRFC3339(t *testing.T) {
	var buf bytes.Buffer
	InitLogger(LevelInfo, FormatJSON, &buf)
	defer InitLogger(LevelWarn, FormatText, nil)

	Info("tick")
	m := decodeLine(t, buf.String())
	ts, _ := m["time"].(string)
	if _, err := time.Parse(time.RFC3339, ts); err != nil {
		t.Fatalf("time=%q is not RFC3339: %v", ts, err)
	}
}

func TestParseLevelAndFormat(t *testing.T) {
	for in, want := range map[string]Level{"debug": LevelDebug, "INFO": LevelInfo, "warning": LevelWarn, " error ": LevelError} {
		got, err := ParseLevel(in)
		if err != nil || got != want {
			t.Fatalf("ParseLevel(%q)=%v,%v, want %v", in, got, err, want)
		}
	}
	if _, err := ParseLevel("loud"); err == nil {
		t.Fatalf("expected error for unknown level")
	}
	if got, err := ParseFormat("JSON"); err != nil || got != FormatJSON {
		t.Fatalf("ParseFormat(JSON)=%v,%v", got, err)
	}
	if _, err := ParseFormat("xml"); err == nil {
		t.Fatalf("expected error for unknown format")
	}
	if got := LevelWarn.String(); got != "warn" {
		t.Fatalf("String()=%q, want warn", got)
	}
}

func TestDomainHelpers(t *testing.T) {
	out := captureLogOutput(func() { Retag("cat", "NN", "NNS") })
	m := decodeLine(t, out)
	if m["msg"] != "retag" || m["word"] != "cat" || m["old_tag"] != "NN" || m["new_tag"] != "NNS" {
		t.Fatalf("retag record=%v", m)
	}

	out = captureLogOutput(func() { Conversion("storage", "display", 42) })
	m = decodeLine(t, out)
	if m["msg"] != "conversion" || m["bytes"] != float64(42) {
		t.Fatalf("conversion record=%v", m)
	}

	out = captureLogOutput(func() { TaggerCall("tag", 3, 1500*time.Millisecond, nil) })
	m = decodeLine(t, out)
	if m["level"] != "INFO" || m["duration_ms"] != float64(1500) || m["items"] != float64(3) {
		t.Fatalf("tagger record=%v", m)
	}

	out = captureLogOutput(func() { TaggerCall("split", 1, 0, errors.New("exit status 2")) })
	m = decodeLine(t, out)
	if m["level"] != "ERROR" || m["error"] != "exit status 2" {
		t.Fatalf("tagger error record=%v", m)
	}
}
