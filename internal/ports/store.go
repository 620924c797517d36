package ports

// KeyValueStore persists opaque values under string keys.
// Get reports ok=false for a missing key rather than an error.
type KeyValueStore interface {
	Get(key string) (value []byte, ok bool, err error)
	Put(key string, value []byte) error
	Delete(key string) error
	Close() error

	// Location names where the data lives, for logs
	Location() string
}

// BatchStore is implemented by stores that can apply several writes atomically
type BatchStore interface {
	KeyValueStore
	BeginTx() (StoreTx, error)
}

// StoreTx represents a transaction for atomic multi-key updates
type StoreTx interface {
	Put(key string, value []byte) error
	Delete(key string) error

	// Transaction control
	Commit() error
	Rollback() error
}
