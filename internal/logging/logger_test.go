package logging_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"jekyllwind/internal/config"
	"jekyllwind/internal/logging"
)

func noColor() *bool {
	v := false
	return &v
}

func TestConsoleLoggerFormatsLine(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Format: "console", Output: &buf, Color: noColor()})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	logger = logging.NewComponentLogger(logger, "config")
	logger.Info("config loaded", logging.String("path", "/site/jekyllwind.toml"), logging.String("note", "two words"))

	line := buf.String()
	for _, want := range []string{"INFO", "config: config loaded", "path=/site/jekyllwind.toml", `note="two words"`} {
		if !strings.Contains(line, want) {
			t.Fatalf("expected %q in %q", want, line)
		}
	}
	if strings.Contains(line, "component=") {
		t.Fatalf("component should render as prefix: %q", line)
	}
	if strings.Contains(line, "\x1b[") {
		t.Fatalf("expected no ANSI codes: %q", line)
	}
	if strings.Contains(line, ".go:") {
		t.Fatalf("expected no source location at info level: %q", line)
	}
}

func TestConsoleLoggerColor(t *testing.T) {
	var buf bytes.Buffer
	color := true
	logger, err := logging.New(logging.Options{Output: &buf, Color: &color})
	if err != nil {
		t.Fatal(err)
	}
	logger.Warn("unknown environment")
	if !strings.Contains(buf.String(), "\x1b[33m") {
		t.Fatalf("expected yellow warn label: %q", buf.String())
	}
}

func TestConsoleLoggerGroups(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Output: &buf, Color: noColor()})
	if err != nil {
		t.Fatal(err)
	}
	logger.WithGroup("css").Info("resolved", logging.Bool("minify", true))
	if !strings.Contains(buf.String(), "css.minify=true") {
		t.Fatalf("expected grouped key: %q", buf.String())
	}
}

func TestJSONLogger(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Format: "json", Level: "debug", Output: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	logger = logging.WithRunID(logger, "run-123")
	logger.Debug("checking", logging.Error(errors.New("boom")))

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("decode json log: %v (%q)", err, buf.String())
	}
	if entry["level"] != "debug" || entry["msg"] != "checking" {
		t.Fatalf("unexpected entry: %v", entry)
	}
	if entry[logging.FieldRunID] != "run-123" || entry["error"] != "boom" {
		t.Fatalf("missing attributes: %v", entry)
	}
	if _, ok := entry["ts"]; !ok {
		t.Fatalf("expected ts key: %v", entry)
	}
	if src, _ := entry["source"].(string); !strings.HasPrefix(src, "logger_test.go:") {
		t.Fatalf("expected source at debug level, got %v", entry["source"])
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Level: "warn", Output: &buf, Color: noColor()})
	if err != nil {
		t.Fatal(err)
	}
	logger.Info("hidden")
	logger.Error("shown")
	if strings.Contains(buf.String(), "hidden") || !strings.Contains(buf.String(), "shown") {
		t.Fatalf("unexpected output: %q", buf.String())
	}
}

func TestNewRejectsUnknownOptions(t *testing.T) {
	if _, err := logging.New(logging.Options{Format: "xml"}); err == nil {
		t.Fatal("expected error for unknown format")
	}
	if _, err := logging.New(logging.Options{Level: "loud"}); err == nil {
		t.Fatal("expected error for unknown level")
	}
}

func TestNewFromConfigVerbose(t *testing.T) {
	snap, err := config.LoadDevConfig("production")
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	logger, err := logging.NewFromConfig(snap, logging.Options{Format: "json", Output: &buf})
	if err != nil {
		t.Fatal(err)
	}
	logger.Debug("quiet")
	if buf.Len() != 0 {
		t.Fatalf("debug should be hidden without verbose: %q", buf.String())
	}

	snap.Workflow.Verbose = true
	logger, err = logging.NewFromConfig(snap, logging.Options{Format: "json", Output: &buf})
	if err != nil {
		t.Fatal(err)
	}
	logger.Debug("loud")
	if !strings.Contains(buf.String(), `"environment":"production"`) {
		t.Fatalf("expected debug line tagged with environment: %q", buf.String())
	}
}

func TestOutputPathsReceiveCopy(t *testing.T) {
	var buf bytes.Buffer
	logPath := filepath.Join(t.TempDir(), "logs", "jekyllwind.log")
	logger, err := logging.New(logging.Options{Output: &buf, OutputPaths: []string{logPath, logPath}, Color: noColor()})
	if err != nil {
		t.Fatal(err)
	}
	logger.Info("mirrored")

	content, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	if strings.Count(string(content), "mirrored") != 1 || !strings.Contains(buf.String(), "mirrored") {
		t.Fatalf("expected one copy in each sink, file=%q buf=%q", content, buf.String())
	}
}

func TestNewNop(t *testing.T) {
	logger := logging.NewNop()
	logger.Error("discarded")
	if logging.NewComponentLogger(nil, "x") == nil {
		t.Fatal("expected logger from nil base")
	}
}
