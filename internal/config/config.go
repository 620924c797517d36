// Package config loads settings from defaults, a YAML file and the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	// AppName names the config, data and state directories
	AppName = "streetinterview"

	// EnvPrefix prefixes every environment override, e.g. STREETINTERVIEW_STORAGE_BACKEND
	EnvPrefix = "STREETINTERVIEW_"

	// DefaultLogFileMaxSizeMB is the default max log file size in megabytes.
	DefaultLogFileMaxSizeMB = 10

	// DefaultLogFileMaxBackups is the default number of old log files to retain.
	DefaultLogFileMaxBackups = 3

	// DefaultLogFileMaxAgeDays is the default max days to retain old log files.
	DefaultLogFileMaxAgeDays = 28
)

// Config is the root configuration structure.
type Config struct {
	Storage StorageConfig `koanf:"storage" validate:"required"`
	Export  ExportConfig  `koanf:"export"  validate:"required"`
	Editor  EditorConfig  `koanf:"editor"`
	Log     LogConfig     `koanf:"log"     validate:"required"`
}

// StorageConfig selects where questions and the session live.
type StorageConfig struct {
	Backend string `koanf:"backend" validate:"required,oneof=file sqlite memory"`
	Path    string `koanf:"path"    validate:"required"`
}

// ExportConfig controls where transcripts are saved.
type ExportConfig struct {
	Dir string `koanf:"dir" validate:"required"`
}

// EditorConfig overrides $VISUAL/$EDITOR for opening transcripts.
type EditorConfig struct {
	Command string `koanf:"command"`
}

// LogConfig contains logging settings.
type LogConfig struct {
	Level  string        `koanf:"level"  validate:"required,oneof=debug info warn error"`
	Format string        `koanf:"format" validate:"required,oneof=text json logfmt"`
	File   LogFileConfig `koanf:"file"`
}

// LogFileConfig contains rolling log file settings used by the TUI.
type LogFileConfig struct {
	Path       string `koanf:"path"        validate:"required"`
	MaxSizeMB  int    `koanf:"max_size"    validate:"min=1,max=1024"`
	MaxBackups int    `koanf:"max_backups" validate:"min=0,max=100"`
	MaxAgeDays int    `koanf:"max_age"     validate:"min=0,max=365"`
	Compress   bool   `koanf:"compress"`
}

// defaults returns the default configuration values.
func defaults() map[string]any {
	return map[string]any{
		"storage.backend": "file",
		"storage.path":    filepath.Join(xdgDir("XDG_DATA_HOME", ".local", "share"), AppName),

		"export.dir": ".",

		"editor.command": "",

		"log.level":            "info",
		"log.format":           "text",
		"log.file.path":        filepath.Join(xdgDir("XDG_STATE_HOME", ".local", "state"), AppName, AppName+".log"),
		"log.file.max_size":    DefaultLogFileMaxSizeMB,
		"log.file.max_backups": DefaultLogFileMaxBackups,
		"log.file.max_age":     DefaultLogFileMaxAgeDays,
		"log.file.compress":    false,
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/streetinterview/config.yaml
func DefaultPath() string {
	return filepath.Join(xdgDir("XDG_CONFIG_HOME", ".config"), AppName, "config.yaml")
}

// Load loads configuration with the following precedence (highest to lowest):
//  1. Environment variables (STREETINTERVIEW_ prefix, .env included)
//  2. Config file (path, or DefaultPath when path is empty)
//  3. Default values
//
// An explicit path must exist; the default one is optional.
func Load(path string) (*Config, error) {
	if err := loadDotEnv(".env"); err != nil {
		return nil, fmt.Errorf("loading .env: %w", err)
	}

	k := koanf.New(".")

	defs := defaults()
	if err := k.Load(confmap.Provider(defs, "."), nil); err != nil {
		return nil, fmt.Errorf("loading defaults: %w", err)
	}

	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("loading config %s: %w", path, err)
		}
	} else if err := loadFileIfExists(k, DefaultPath()); err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKeyMapper(defs)), nil); err != nil {
		return nil, fmt.Errorf("loading env vars: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	cfg.Storage.Path = ExpandPath(cfg.Storage.Path)
	cfg.Export.Dir = ExpandPath(cfg.Export.Dir)
	cfg.Log.File.Path = ExpandPath(cfg.Log.File.Path)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// envKeyMapper maps STREETINTERVIEW_LOG_FILE_MAX_SIZE to log.file.max_size.
// Underscores are ambiguous, so known keys are matched first; anything else
// falls back to treating every underscore as a level separator.
func envKeyMapper(known map[string]any) func(string) string {
	byEnv := make(map[string]string, len(known))
	for key := range known {
		byEnv[strings.ReplaceAll(key, ".", "_")] = key
	}
	return func(s string) string {
		name := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
		if key, ok := byEnv[name]; ok {
			return key
		}
		return strings.ReplaceAll(name, "_", ".")
	}
}

// loadFileIfExists loads a YAML config file if it exists.
func loadFileIfExists(k *koanf.Koanf, path string) error {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return k.Load(file.Provider(path), yaml.Parser())
}

// loadDotEnv reads KEY=value pairs without overriding variables already set.
func loadDotEnv(path string) error {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return godotenv.Load(path)
}

// ExpandPath replaces a leading ~ with the user's home directory.
func ExpandPath(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}

func xdgDir(envVar string, fallback ...string) string {
	if dir := os.Getenv(envVar); dir != "" {
		return dir
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(append([]string{home}, fallback...)...)
}
