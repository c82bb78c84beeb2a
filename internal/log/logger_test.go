package log

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goccy/go-json"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{" DEBUG ", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelInfo},
		{"verbose", slog.LevelInfo},
	}
	for _, tt := range tests {
		if got := ParseLevel(tt.in); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestNewTextConsole(t *testing.T) {
	var buf bytes.Buffer
	l, c := New(Options{Level: "debug"}, &buf)
	defer c.Close()

	l.Debug("layout", "items", 3)
	out := buf.String()
	for _, want := range []string{"level=DEBUG", "msg=layout", "items=3", "app=piechart"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q: %s", want, out)
		}
	}
}

func TestNewLevelFilters(t *testing.T) {
	var buf bytes.Buffer
	l, _ := New(Options{Level: "warn"}, &buf)
	l.Info("hidden")
	if buf.Len() != 0 {
		t.Errorf("info record written at warn level: %s", buf.String())
	}
}

func TestNewJSONConsole(t *testing.T) {
	var buf bytes.Buffer
	l, _ := New(Options{Format: "json"}, &buf)
	l.Info("rendered", "format", "svg")

	var rec map[string]any
	if err := json.Unmarshal(buf.Bytes(), &rec); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, buf.String())
	}
	if rec["msg"] != "rendered" || rec["format"] != "svg" {
		t.Errorf("record = %v", rec)
	}
}

func TestNewFileRotation(t *testing.T) {
	path := filepath.Join(t.TempDir(), "piechart.log")
	var console bytes.Buffer
	l, c := New(Options{File: path}, &console)
	l.Info("to both")
	if err := c.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("log file not written: %v", err)
	}
	if !strings.Contains(string(data), `"msg":"to both"`) {
		t.Errorf("file output = %s", data)
	}
	if !strings.Contains(console.String(), "to both") {
		t.Errorf("console output = %s", console.String())
	}
}

func TestNewNoSinks(t *testing.T) {
	l, c := New(Options{}, nil)
	l.Error("discarded")
	if err := c.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
}
