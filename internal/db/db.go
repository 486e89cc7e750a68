// Package db owns the SQLite connection, the authoritative schema and the
// migration procedure that evolves legacy databases to it.
package db

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
)

// SchemaError indicates schema initialization or migration failed. It is
// fatal: startup must abort rather than run against a half-migrated store.
type SchemaError struct {
	Err error
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("schema: %v", e.Err)
}

func (e *SchemaError) Unwrap() error {
	return e.Err
}

// DefaultPath returns the default database location under the user's home
// directory.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".taskmeister", "taskmeister.db"), nil
}

// Open opens the database at path, creating the parent directory when
// needed. The returned handle is owned by the caller and is meant to be
// injected into the repositories; no package-level connection exists.
func Open(path string) (*sql.DB, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	database, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if _, err := database.Exec("PRAGMA foreign_keys = ON"); err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	return database, nil
}

// Init brings the database to the current schema. The migration chain
// runs first so a store created by the legacy tool gains its missing
// columns before the authoritative schema is applied; SchemaSQL then
// no-ops on the tables and creates the indexes, which reference migrated
// columns. Safe to run on every startup.
func Init(database *sql.DB) error {
	if err := RunMigrations(database); err != nil {
		return &SchemaError{Err: err}
	}

	if _, err := database.Exec(SchemaSQL); err != nil {
		return &SchemaError{Err: fmt.Errorf("failed to apply schema: %w", err)}
	}

	return nil
}
