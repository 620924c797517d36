package logging

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"streetinterview/internal/config"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected log.Level
	}{
		{input: "debug", expected: log.DebugLevel},
		{input: "INFO", expected: log.InfoLevel},
		{input: "warning", expected: log.WarnLevel},
		{input: "error", expected: log.ErrorLevel},
		{input: "bogus", expected: log.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, parseLevel(tt.input))
		})
	}
}

func TestNew_JSONFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := New(config.LogConfig{Level: "info", Format: "json"}, &buf)

	logger.Info("question added", "id", "q1")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "question added", entry["msg"])
	assert.Equal(t, "q1", entry["id"])
}

func TestNew_LevelFilters(t *testing.T) {
	var buf bytes.Buffer
	logger := New(config.LogConfig{Level: "warn", Format: "text"}, &buf)

	logger.Info("hidden")
	assert.Empty(t, buf.String())

	logger.Warn("shown")
	assert.Contains(t, buf.String(), "shown")
}

func TestNewFile_WritesToPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state", "app.log")
	cfg := config.LogConfig{
		Level:  "info",
		Format: "logfmt",
		File:   config.LogFileConfig{Path: path, MaxSizeMB: 1},
	}

	logger, closer, err := NewFile(cfg)
	require.NoError(t, err)
	logger.Info("interview started")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "interview started")
}
