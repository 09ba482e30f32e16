package logging

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/rs/zerolog"
)

func decode(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("decode %q: %v", buf.String(), err)
	}
	return entry
}

func TestNewLogger_TagsComponent(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	NewLogger(&buf, "sampler").Info("tick")

	entry := decode(t, &buf)
	if entry["component"] != "sampler" || entry["message"] != "tick" || entry["level"] != "info" {
		t.Errorf("entry = %v", entry)
	}
	if _, ok := entry["time"]; !ok {
		t.Error("entry has no timestamp")
	}
}

func TestZerologAdapter_Fields(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	logger := NewZerologAdapter(zerolog.New(&buf))
	logger.Warn("slow tick",
		String("duration", "612ms"),
		Int("adapters", 2),
		Float64("cpu", 12.5),
		Bool("compat", true),
		Field{Key: "instances", Value: []string{"eth0"}},
	)

	entry := decode(t, &buf)
	want := map[string]any{
		"level":    "warn",
		"duration": "612ms",
		"adapters": float64(2),
		"cpu":      12.5,
		"compat":   true,
	}
	for k, v := range want {
		if entry[k] != v {
			t.Errorf("%s = %v, want %v", k, entry[k], v)
		}
	}
	if got, ok := entry["instances"].([]any); !ok || len(got) != 1 {
		t.Errorf("instances = %v", entry["instances"])
	}
}

func TestZerologAdapter_Error(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	NewZerologAdapter(zerolog.New(&buf)).Error("sample failed", errors.New("PDH_NO_DATA"),
		String("metric", "cpu"))

	entry := decode(t, &buf)
	if entry["level"] != "error" || entry["error"] != "PDH_NO_DATA" || entry["metric"] != "cpu" {
		t.Errorf("entry = %v", entry)
	}
}

func TestParseLevel(t *testing.T) {
	t.Parallel()
	tests := []struct {
		in   string
		want zerolog.Level
	}{
		{"", zerolog.InfoLevel},
		{"INFO", zerolog.InfoLevel},
		{"debug", zerolog.DebugLevel},
		{"warning", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"off", zerolog.Disabled},
	}
	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		if err != nil || got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, %v; want %v", tt.in, got, err, tt.want)
		}
	}
	if _, err := ParseLevel("verbose"); err == nil {
		t.Error("ParseLevel(verbose) should fail")
	}
}

func TestWithLevel_Filters(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	logger := NewLogger(&buf, "app").WithLevel(zerolog.WarnLevel)
	logger.Debug("hidden")
	logger.Info("hidden")
	if buf.Len() != 0 {
		t.Fatalf("below-level entries written: %q", buf.String())
	}
	logger.Warn("shown")
	if decode(t, &buf)["message"] != "shown" {
		t.Errorf("output = %q", buf.String())
	}
}

func TestNop(t *testing.T) {
	t.Parallel()
	var _ Logger = Nop()
	Nop().Error("discarded", errors.New("x"))
}
