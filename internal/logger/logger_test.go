package logger

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in     string
		want   zapcore.Level
		wantOK bool
	}{
		{"debug", zapcore.DebugLevel, true},
		{"info", zapcore.InfoLevel, true},
		{"warn", zapcore.WarnLevel, true},
		{"error", zapcore.ErrorLevel, true},
		{"", zapcore.InfoLevel, false},
		{"verbose", zapcore.InfoLevel, false},
	}
	for _, tt := range tests {
		got, ok := parseLevel(tt.in)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("parseLevel(%q) = %v, %v, want %v, %v", tt.in, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestNewWithOptions_OutputPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "folio.log")

	log, err := NewWithOptions(Options{Level: "warn", OutputPath: path})
	if err != nil {
		t.Fatalf("NewWithOptions failed: %v", err)
	}

	log.Info("dropped below level")
	log.With(String("component", "content")).Warn("content load failed",
		String("path", "content/projects.json"),
		Error(errors.New("boom")))
	_ = log.Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	out := string(data)
	if strings.Contains(out, "dropped below level") {
		t.Error("info entry written at warn level")
	}
	for _, want := range []string{"content load failed", `"component":"content"`, `"path":"content/projects.json"`, "boom"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q: %s", want, out)
		}
	}
}

func TestNewWithOptions_BadPath(t *testing.T) {
	_, err := NewWithOptions(Options{OutputPath: filepath.Join(t.TempDir(), "missing", "dir", "x.log")})
	if err == nil {
		t.Error("expected an error for an unwritable output path")
	}
}
