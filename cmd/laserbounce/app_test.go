package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestOpenLoggerWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "laserbounce.log")

	logger, closer, err := openLogger(path, "debug")
	if err != nil {
		t.Fatalf("openLogger() failed: %v", err)
	}
	logger.Debug("run started", "preset", "hard")
	closer.Close()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("log file not written: %v", err)
	}
	if !strings.Contains(string(data), "run started") || !strings.Contains(string(data), "laserbounce") {
		t.Errorf("log contents = %q", data)
	}
}

func TestOpenLoggerLevels(t *testing.T) {
	tests := []struct {
		level   string
		want    log.Level
		wantErr bool
	}{
		{"debug", log.DebugLevel, false},
		{"INFO", log.InfoLevel, false},
		{"warn", log.WarnLevel, false},
		{"error", log.ErrorLevel, false},
		{"loud", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			logger, _, err := openLogger("", tt.level)
			if tt.wantErr {
				if err == nil {
					t.Error("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("openLogger() failed: %v", err)
			}
			if logger.GetLevel() != tt.want {
				t.Errorf("level = %v, want %v", logger.GetLevel(), tt.want)
			}
		})
	}
}

func TestOpenLoggerEmptyPathDiscards(t *testing.T) {
	logger, closer, err := openLogger("", "info")
	if err != nil {
		t.Fatalf("openLogger() failed: %v", err)
	}
	if closer != nil {
		t.Error("closer returned for a discarded log")
	}
	logger.Info("nowhere")
}
