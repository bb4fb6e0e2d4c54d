package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/javiermolinar/slotcheck/internal/config"
)

func TestNew_DisabledIsNop(t *testing.T) {
	path := filepath.Join(t.TempDir(), "debug.log")
	logger, err := New(config.LogConfig{Level: "debug", Path: path}, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	logger.Info("ignored")
	_ = logger.Sync()

	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("expected no log file, stat err = %v", err)
	}
}

func TestNew_WritesJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "debug.log")
	logger, err := New(config.LogConfig{Level: "info", Path: path}, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	logger.Debug("hidden")
	logger.Info("event added", zap.String("name", "Standup"))
	_ = logger.Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading log: %v", err)
	}
	out := string(data)
	if !strings.Contains(out, `"msg":"event added"`) {
		t.Errorf("expected info entry, got %s", out)
	}
	if !strings.Contains(out, `"name":"Standup"`) {
		t.Errorf("expected name field, got %s", out)
	}
	if strings.Contains(out, "hidden") {
		t.Errorf("debug entry should be filtered at info level, got %s", out)
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input   string
		want    zapcore.Level
		wantErr bool
	}{
		{input: "debug", want: zapcore.DebugLevel},
		{input: "INFO", want: zapcore.InfoLevel},
		{input: "warn", want: zapcore.WarnLevel},
		{input: "error", want: zapcore.ErrorLevel},
		{input: "loud", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseLevel(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Error("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
