// Package memory keeps key-value data in process memory.
package memory

import (
	"errors"
	"sync"

	"streetinterview/internal/ports"
)

var errTxDone = errors.New("transaction already finished")

// Store implements ports.BatchStore with a map
type Store struct {
	mu   sync.RWMutex
	data map[string][]byte
}

var _ ports.BatchStore = (*Store)(nil)

// NewStore creates an empty store
func NewStore() *Store {
	return &Store{data: make(map[string][]byte)}
}

// Get returns a copy of the value stored under key
func (s *Store) Get(key string) ([]byte, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	value, ok := s.data[key]
	if !ok {
		return nil, false, nil
	}
	return clone(value), true, nil
}

// Put stores a copy of value under key
func (s *Store) Put(key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = clone(value)
	return nil
}

// Delete removes key; a missing key is not an error
func (s *Store) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, key)
	return nil
}

// Close is a no-op; the data is dropped with the store
func (s *Store) Close() error {
	return nil
}

// Location reports that nothing is written to disk
func (s *Store) Location() string {
	return "memory"
}

// BeginTx buffers writes until Commit applies them under one lock
func (s *Store) BeginTx() (ports.StoreTx, error) {
	return &storeTx{store: s}, nil
}

type op struct {
	key    string
	value  []byte
	delete bool
}

type storeTx struct {
	store *Store
	ops   []op
	done  bool
}

// Put buffers a write
func (t *storeTx) Put(key string, value []byte) error {
	if t.done {
		return errTxDone
	}
	t.ops = append(t.ops, op{key: key, value: clone(value)})
	return nil
}

// Delete buffers a removal
func (t *storeTx) Delete(key string) error {
	if t.done {
		return errTxDone
	}
	t.ops = append(t.ops, op{key: key, delete: true})
	return nil
}

// Commit applies the buffered writes
func (t *storeTx) Commit() error {
	if t.done {
		return errTxDone
	}
	t.done = true

	t.store.mu.Lock()
	defer t.store.mu.Unlock()
	for _, o := range t.ops {
		if o.delete {
			delete(t.store.data, o.key)
		} else {
			t.store.data[o.key] = o.value
		}
	}
	return nil
}

// Rollback discards the buffered writes
func (t *storeTx) Rollback() error {
	t.done = true
	t.ops = nil
	return nil
}

func clone(b []byte) []byte {
	if b == nil {
		return []byte{}
	}
	out := make([]byte, len(b))
	copy(out, b)
	return out
}
