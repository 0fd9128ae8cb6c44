package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestSetupLogger(t *testing.T) {
	tests := []struct {
		name      string
		verbosity int
		wantLevel zerolog.Level
	}{
		{"default warn level", 0, zerolog.WarnLevel},
		{"info level", 1, zerolog.InfoLevel},
		{"debug level", 2, zerolog.DebugLevel},
		{"trace level", 3, zerolog.TraceLevel},
		{"high verbosity defaults to trace", 5, zerolog.TraceLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tempDir := t.TempDir()
			t.Setenv("XDG_STATE_HOME", tempDir)

			SetupLoggerWithOutput(tt.verbosity, &bytes.Buffer{})

			if zerolog.GlobalLevel() != tt.wantLevel {
				t.Errorf("SetupLogger(%d) set level to %v, want %v",
					tt.verbosity, zerolog.GlobalLevel(), tt.wantLevel)
			}

			logPath := filepath.Join(tempDir, "filesort", "filesort.log")
			if _, err := os.Stat(logPath); os.IsNotExist(err) {
				t.Errorf("Log file was not created at %s", logPath)
			}
		})
	}
}

func TestGetLogFilePath(t *testing.T) {
	t.Setenv("XDG_STATE_HOME", "/custom/state")

	got := getLogFilePath()
	want := filepath.ToSlash("/custom/state/filesort/filesort.log")
	if !strings.Contains(filepath.ToSlash(got), want) {
		t.Errorf("getLogFilePath() = %s, want to contain %s", got, want)
	}
}

func TestGetLoggerAddsComponent(t *testing.T) {
	tempDir := t.TempDir()
	t.Setenv("XDG_STATE_HOME", tempDir)

	var buf bytes.Buffer
	SetupLoggerWithOutput(1, &buf)

	logger := GetLogger("test-component")
	logger.Info().Msg("test message")

	if !strings.Contains(buf.String(), "test-component") {
		t.Errorf("expected component in output, got %q", buf.String())
	}
}

func TestWithFields(t *testing.T) {
	tempDir := t.TempDir()
	t.Setenv("XDG_STATE_HOME", tempDir)

	var buf bytes.Buffer
	SetupLoggerWithOutput(1, &buf)

	logger := WithFields(map[string]interface{}{"rule": ".txt"})
	logger.Info().Msg("test message with fields")

	if !strings.Contains(buf.String(), ".txt") {
		t.Errorf("expected field in output, got %q", buf.String())
	}
}
