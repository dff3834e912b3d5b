package logging_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/hsiuhsiu/rsablock-go/pkg/rsablock/logging"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"", slog.LevelInfo},
		{"info", slog.LevelInfo},
		{"DEBUG", slog.LevelDebug},
		{" warn ", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
	}

	for _, tt := range tests {
		got, err := logging.ParseLevel(tt.in)
		if err != nil {
			t.Fatalf("ParseLevel(%q) failed: %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}

	if _, err := logging.ParseLevel("verbose"); err == nil {
		t.Error("ParseLevel should reject unknown levels")
	}
}

func TestNewJSONRedacted(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.NewJSON(&buf, slog.LevelInfo).With("component", "test")

	logger.Debug(context.Background(), "hidden")
	logger.Info(context.Background(), "key loaded", logging.Redacted("d"))

	var record map[string]any
	if err := json.Unmarshal(buf.Bytes(), &record); err != nil {
		t.Fatalf("expected exactly one JSON record, got %q: %v", buf.String(), err)
	}
	if record["msg"] != "key loaded" {
		t.Errorf("unexpected msg: %v", record["msg"])
	}
	if record["d"] != logging.Placeholder() {
		t.Errorf("expected redacted d, got %v", record["d"])
	}
	if record["component"] != "test" {
		t.Errorf("expected component attribute, got %v", record["component"])
	}
}

func TestDiscard(t *testing.T) {
	logger := logging.Discard()
	logger.Error(context.Background(), "dropped", "n", 1)
}
