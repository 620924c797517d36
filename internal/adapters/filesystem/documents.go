package filesystem

import (
	"fmt"
	"os"
	"path/filepath"

	"streetinterview/internal/ports"
)

// Documents implements ports.TextFiles on the local filesystem
type Documents struct{}

var _ ports.TextFiles = (*Documents)(nil)

// NewDocuments creates a text file reader/writer
func NewDocuments() *Documents {
	return &Documents{}
}

// ReadText returns the whole file as a string
func (d *Documents) ReadText(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// WriteText writes content, creating parent directories, and returns the absolute path
func (d *Documents) WriteText(path, content string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(filepath.Dir(abs), 0755); err != nil {
		return "", fmt.Errorf("failed to create directory: %w", err)
	}
	if err := writeAtomic(abs, []byte(content)); err != nil {
		return "", err
	}
	return abs, nil
}
