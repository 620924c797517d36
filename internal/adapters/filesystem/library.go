package filesystem

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"streetinterview/internal/domain"
	"streetinterview/internal/ports"
)

const libraryVersion = 1

// libraryFile is the on-disk layout of a question backup
type libraryFile struct {
	Version   int               `yaml:"version"`
	Questions []domain.Question `yaml:"questions"`
}

// Library implements ports.LibraryArchive as YAML files
type Library struct{}

var _ ports.LibraryArchive = (*Library)(nil)

// NewLibrary creates a YAML backup reader/writer
func NewLibrary() *Library {
	return &Library{}
}

// ReadLibrary decodes a backup written by WriteLibrary
func (l *Library) ReadLibrary(path string) ([]domain.Question, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var file libraryFile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
	}
	if file.Version != libraryVersion {
		return nil, fmt.Errorf("%s: unsupported library version %d", filepath.Base(path), file.Version)
	}
	return file.Questions, nil
}

// WriteLibrary encodes questions as YAML, replacing path
func (l *Library) WriteLibrary(path string, questions []domain.Question) error {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(libraryFile{Version: libraryVersion, Questions: questions}); err != nil {
		return fmt.Errorf("failed to encode library: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("failed to encode library: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}
	return writeAtomic(path, buf.Bytes())
}
