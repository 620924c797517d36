package filesystem

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"streetinterview/internal/ports"
)

var keyPattern = regexp.MustCompile(`^[a-z0-9][a-z0-9-]*$`)

// Store implements ports.KeyValueStore as one JSON file per key
type Store struct {
	dir string
}

// Ensure Store implements KeyValueStore
var _ ports.KeyValueStore = (*Store)(nil)

// NewStore creates a store rooted at dir, creating the directory if needed
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}
	return &Store{dir: dir}, nil
}

// Location returns the directory holding the key files
func (s *Store) Location() string {
	return s.dir
}

// Get reads the file for key
func (s *Store) Get(key string) ([]byte, bool, error) {
	path, err := s.keyPath(key)
	if err != nil {
		return nil, false, err
	}
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read %s: %w", key, err)
	}
	return data, true, nil
}

// Put replaces the file for key atomically
func (s *Store) Put(key string, value []byte) error {
	path, err := s.keyPath(key)
	if err != nil {
		return err
	}
	return writeAtomic(path, value)
}

// Delete removes the file for key
func (s *Store) Delete(key string) error {
	path, err := s.keyPath(key)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete %s: %w", key, err)
	}
	return nil
}

// Close is a no-op; every write is already on disk
func (s *Store) Close() error {
	return nil
}

func (s *Store) keyPath(key string) (string, error) {
	if !keyPattern.MatchString(key) {
		return "", fmt.Errorf("invalid storage key %q", key)
	}
	return filepath.Join(s.dir, key+".json"), nil
}

// writeAtomic writes to a temp file in the same directory and renames it over path
func writeAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+"-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to replace %s: %w", path, err)
	}
	return nil
}
