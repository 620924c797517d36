package storage

import (
	"fmt"
	"path/filepath"

	"streetinterview/internal/adapters/filesystem"
	"streetinterview/internal/adapters/memory"
	"streetinterview/internal/adapters/sqlite"
	"streetinterview/internal/ports"
)

// Backend names accepted by Open
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
	BackendMemory = "memory"
)

// DatabaseName is the SQLite file created inside the data directory
const DatabaseName = "streetinterview.db"

// Open creates the key-value store for backend rooted at dataDir and wraps it in a Repository.
func Open(backend, dataDir string) (*Repository, error) {
	var (
		store ports.KeyValueStore
		err   error
	)
	switch backend {
	case BackendFile:
		store, err = filesystem.NewStore(dataDir)
	case BackendSQLite:
		store, err = sqlite.Open(filepath.Join(dataDir, DatabaseName))
	case BackendMemory:
		store = memory.NewStore()
	default:
		return nil, fmt.Errorf("unknown storage backend %q", backend)
	}
	if err != nil {
		return nil, err
	}
	return NewRepository(store), nil
}
