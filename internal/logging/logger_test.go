package logging_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"fermi/internal/logging"
)

func TestConsoleLoggerWritesAttrsToFile(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "console.log")

	logger, err := logging.New(logging.Options{
		Format:      "console",
		Level:       "info",
		OutputPaths: []string{logPath},
	})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	logger.Warn("deprecated field", "field", "cross_sections")
	logger.Debug("suppressed below info")

	content, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	text := string(content)
	if !strings.Contains(text, "WARN") || !strings.Contains(text, "deprecated field") {
		t.Fatalf("expected warning line, got %q", text)
	}
	if !strings.Contains(text, "field=cross_sections") {
		t.Fatalf("expected key=value attribute, got %q", text)
	}
	if strings.Contains(text, "suppressed below info") {
		t.Fatalf("debug line should be filtered at info level: %q", text)
	}
	if strings.Contains(text, "\x1b[") {
		t.Fatalf("file output must not contain color escapes: %q", text)
	}
}

func TestJSONLoggerEmitsCanonicalKeys(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "run.log")

	logger, err := logging.New(logging.Options{
		Format:      "json",
		Level:       "debug",
		OutputPaths: []string{logPath},
	})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	logger.Info("settings loaded", "sources", 2)

	content, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}

	var record map[string]any
	if err := json.Unmarshal(content, &record); err != nil {
		t.Fatalf("log line is not JSON: %v (%q)", err, content)
	}
	if record["msg"] != "settings loaded" {
		t.Fatalf("expected msg key, got %v", record)
	}
	if record["level"] != "info" {
		t.Fatalf("expected lowercase level, got %v", record["level"])
	}
	if _, ok := record["ts"]; !ok {
		t.Fatalf("expected ts key, got %v", record)
	}
}

func TestNewRejectsUnknownFormat(t *testing.T) {
	if _, err := logging.New(logging.Options{Format: "xml"}); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}

func TestNewNopDiscards(t *testing.T) {
	logger := logging.NewNop()
	logger.Error("goes nowhere")
}
