package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-playground/assert/v2"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"WARN", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelInfo},
		{"verbose", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLevel(tt.input))
		})
	}
}

func TestNewWritesJSONAboveLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, "warn")

	logger.Info("dropped")
	logger.Warn("kept", "stage", "select")

	var line map[string]interface{}
	err := json.Unmarshal(buf.Bytes(), &line)

	assert.Equal(t, nil, err)
	assert.Equal(t, "kept", line["msg"])
	assert.Equal(t, "select", line["stage"])
}

func TestSetupWithFile(t *testing.T) {
	prev := slog.Default()
	defer slog.SetDefault(prev)

	path := filepath.Join(t.TempDir(), "logs", "api.log")
	logger, closer, err := Setup(Options{Level: "info", File: path, MaxSizeMB: 1, MaxBackups: 1, MaxAgeDays: 1})
	assert.Equal(t, nil, err)

	logger.Info("hello")
	closer.Close()

	data, err := os.ReadFile(path)
	assert.Equal(t, nil, err)
	assert.MatchRegex(t, string(data), `"msg":"hello"`)
}
