// Package db provides SQLite persistence for named themes.
package db

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// DB wraps the SQLite handle.
type DB struct {
	*sql.DB
}

// Open opens the database at path, creating the file if needed.
func Open(path string) (*DB, error) {
	handle, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if _, err := handle.Exec("PRAGMA foreign_keys = ON"); err != nil {
		handle.Close()
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}
	return &DB{handle}, nil
}

// OpenInMemory opens a private in-memory database. Used by tests.
func OpenInMemory() (*DB, error) {
	return Open(":memory:")
}

// Migrate creates the schema when missing.
func (d *DB) Migrate(ctx context.Context) error {
	if _, err := d.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}

const schema = `
CREATE TABLE IF NOT EXISTS themes (
	id TEXT PRIMARY KEY,
	name TEXT NOT NULL UNIQUE,
	background TEXT NOT NULL,
	anchor TEXT,
	created_at TEXT NOT NULL,
	updated_at TEXT NOT NULL
);
`
