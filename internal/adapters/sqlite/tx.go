package sqlite

import (
	"database/sql"
	"fmt"

	"streetinterview/internal/ports"
)

// storeTx implements ports.StoreTx
type storeTx struct {
	tx *sql.Tx
}

// Ensure storeTx implements StoreTx
var _ ports.StoreTx = (*storeTx)(nil)

// Put stores value under key inside the transaction
func (t *storeTx) Put(key string, value []byte) error {
	if _, err := t.tx.Exec(upsertSQL, key, value); err != nil {
		return fmt.Errorf("put %s: %w", key, err)
	}
	return nil
}

// Delete removes key inside the transaction
func (t *storeTx) Delete(key string) error {
	if _, err := t.tx.Exec(`DELETE FROM kv WHERE key = ?`, key); err != nil {
		return fmt.Errorf("delete %s: %w", key, err)
	}
	return nil
}

// Commit commits the transaction
func (t *storeTx) Commit() error {
	return t.tx.Commit()
}

// Rollback aborts the transaction
func (t *storeTx) Rollback() error {
	return t.tx.Rollback()
}
