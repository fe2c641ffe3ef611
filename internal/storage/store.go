// Package storage persists the ledger in a local SQLite database.
package storage

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// dateFormat is how calendar dates are stored (SQLite has no date type).
const dateFormat = "2006-01-02"

// Store is the SQLite-backed ledger store.
type Store struct {
	db *sql.DB
}

// Open opens the SQLite database at path, creating it if missing, and
// applies any pending schema migrations.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", fmt.Sprintf("file:%s?_pragma=foreign_keys(1)", path))
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	if err := runMigrations(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrating database: %w", err)
	}
	return &Store{db: db}, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// newID mints a time-ordered globally unique identifier for a new row.
// Ids sort by creation order but nothing here depends on that ordering.
func newID() (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", fmt.Errorf("generating id: %w", err)
	}
	return id.String(), nil
}
