package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/Carmen-Shannon/oxy-sleeve/internal/appconfig"
)

func TestNewDefaultsToJSONOffTerminal(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{Level: "info", Output: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	logger.Info("hello", "side", "front")
	logger.Debug("hidden")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("got %d lines want 1: %q", len(lines), buf.String())
	}
	var record map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &record); err != nil {
		t.Fatalf("not json: %v", err)
	}
	if record["msg"] != "hello" || record["level"] != "info" || record["side"] != "front" {
		t.Fatalf("record got %v", record)
	}
	if _, ok := record["ts"]; !ok {
		t.Fatalf("expected ts key, got %v", record)
	}
}

func TestNewConsoleFormat(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{Level: "debug", Format: "console", Output: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	logger.Debug("frame stats", "fps", 60)
	if out := buf.String(); !strings.Contains(out, "msg=\"frame stats\"") || !strings.Contains(out, "fps=60") {
		t.Fatalf("console output got %q", out)
	}
}

func TestNewRejectsUnknownFormat(t *testing.T) {
	if _, err := New(Options{Format: "xml"}); err == nil {
		t.Fatal("expected an error for an unknown format")
	}
}

func TestNewFromConfig(t *testing.T) {
	cfg := appconfig.Default()
	cfg.Logging.Format = "json"
	if _, err := NewFromConfig(&cfg); err != nil {
		t.Fatalf("NewFromConfig returned error: %v", err)
	}
	if _, err := NewFromConfig(nil); err != nil {
		t.Fatalf("NewFromConfig(nil) returned error: %v", err)
	}
}
