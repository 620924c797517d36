// Package logging builds charm loggers for the terminal and the rolling log file.
package logging

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"gopkg.in/natefinch/lumberjack.v2"

	"streetinterview/internal/config"
)

// New creates a logger writing to w with the configured level and format.
func New(cfg config.LogConfig, w io.Writer) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Level:           parseLevel(cfg.Level),
		Formatter:       parseFormatter(cfg.Format),
		ReportTimestamp: true,
		Prefix:          config.AppName,
	})
}

// NewStderr creates a logger for the CLI and MCP server.
func NewStderr(cfg config.LogConfig) *log.Logger {
	return New(cfg, os.Stderr)
}

// NewFile creates a logger writing to a size-rotated file, for the TUI whose
// terminal belongs to the renderer. Close the returned closer on exit.
func NewFile(cfg config.LogConfig) (*log.Logger, io.Closer, error) {
	if err := os.MkdirAll(filepath.Dir(cfg.File.Path), 0755); err != nil {
		return nil, nil, err
	}
	w := &lumberjack.Logger{
		Filename:   cfg.File.Path,
		MaxSize:    cfg.File.MaxSizeMB,
		MaxBackups: cfg.File.MaxBackups,
		MaxAge:     cfg.File.MaxAgeDays,
		Compress:   cfg.File.Compress,
	}
	return New(cfg, w), w, nil
}

// Discard returns a logger that drops everything
func Discard() *log.Logger {
	return log.New(io.Discard)
}

// parseLevel converts a string log level to a charm level, defaulting to info.
func parseLevel(level string) log.Level {
	switch strings.ToLower(level) {
	case "debug":
		return log.DebugLevel
	case "warn", "warning":
		return log.WarnLevel
	case "error":
		return log.ErrorLevel
	default:
		return log.InfoLevel
	}
}

func parseFormatter(format string) log.Formatter {
	switch strings.ToLower(format) {
	case "json":
		return log.JSONFormatter
	case "logfmt":
		return log.LogfmtFormatter
	default:
		return log.TextFormatter
	}
}
