package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestLevelFromString(t *testing.T) {
	tests := map[string]zapcore.Level{
		"debug":   zapcore.DebugLevel,
		"info":    zapcore.InfoLevel,
		"warn":    zapcore.WarnLevel,
		"error":   zapcore.ErrorLevel,
		"verbose": zapcore.InfoLevel,
		"":        zapcore.InfoLevel,
	}
	for in, want := range tests {
		if got := LevelFromString(in); got != want {
			t.Errorf("LevelFromString(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestNewLogger_WritesJSONFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")
	logger, err := NewLogger(&Config{
		LogDir:    dir,
		FileLevel: zapcore.InfoLevel,
	})
	if err != nil {
		t.Fatalf("NewLogger failed: %v", err)
	}

	logger.Debug("dropped")
	logger.Named("editor").Info("field appended", String("id", "title"), Int("count", 1))
	_ = logger.Sync()

	data, err := os.ReadFile(filepath.Join(dir, LogFileName))
	if err != nil {
		t.Fatalf("Expected log file: %v", err)
	}
	out := string(data)
	if strings.Contains(out, "dropped") {
		t.Error("Debug entry should be filtered at info level")
	}
	for _, want := range []string{`"msg":"field appended"`, `"logger":"editor"`, `"id":"title"`, `"timestamp"`} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected %s in log output, got %s", want, out)
		}
	}
}

func TestNewObservedLogger_RecordsEntries(t *testing.T) {
	logger, logs := NewObservedLogger(zapcore.WarnLevel)

	logger.Info("ignored")
	logger.With(String("property", "options")).Warn("edit rejected")

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("Expected 1 entry, got %d", len(entries))
	}
	if entries[0].Message != "edit rejected" {
		t.Errorf("unexpected message %q", entries[0].Message)
	}
	if entries[0].ContextMap()["property"] != "options" {
		t.Errorf("Expected property field, got %v", entries[0].ContextMap())
	}
}
