package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestNew_defaultLevelIsWarn(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, Options{})

	logger.Info("hidden")
	if buf.Len() != 0 {
		t.Errorf("info should be suppressed at default level, got %q", buf.String())
	}

	logger.Warn("visible")
	if !strings.Contains(buf.String(), "visible") {
		t.Errorf("warn should be logged, got %q", buf.String())
	}
}

func TestNew_debugLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, Options{Level: "debug"})

	logger.Debug("details")
	if !strings.Contains(buf.String(), "details") {
		t.Errorf("debug should be logged, got %q", buf.String())
	}
}

func TestNew_unknownLevelFallsBack(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, Options{Level: "loud"})

	logger.Info("hidden")
	if buf.Len() != 0 {
		t.Errorf("unknown level should behave like warn, got %q", buf.String())
	}
}

func TestNew_json(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, Options{Level: "info", JSON: true})

	logger.Info("structured", "key", "value")

	var record map[string]any
	if err := json.Unmarshal(buf.Bytes(), &record); err != nil {
		t.Fatalf("output is not JSON: %v (%q)", err, buf.String())
	}
	if record["msg"] != "structured" {
		t.Errorf("msg = %v, want %q", record["msg"], "structured")
	}
	if record["key"] != "value" {
		t.Errorf("key = %v, want %q", record["key"], "value")
	}
}
