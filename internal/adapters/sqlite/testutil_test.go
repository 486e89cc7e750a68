// Package sqlite_test contains integration tests for SQLite repositories.
//
// All test setup uses db.GetSchemaSQL() so tests run against the
// authoritative schema and cannot drift from production. Do not hardcode
// CREATE TABLE statements here; use setupTestDB() and the seed* helpers.
package sqlite_test

import (
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"

	"github.com/example/taskmeister/internal/db"
)

// setupTestDB creates an in-memory database with the authoritative schema.
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	testDB, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}

	if _, err := testDB.Exec(db.GetSchemaSQL()); err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}

	t.Cleanup(func() {
		testDB.Close()
	})

	return testDB
}

// seedWorker inserts a test worker and returns its ID.
func seedWorker(t *testing.T, db *sql.DB, name, email string) int64 {
	t.Helper()
	if name == "" {
		name = "Test Worker"
	}
	if email == "" {
		email = "worker@example.com"
	}
	result, err := db.Exec("INSERT INTO workers (name, email) VALUES (?, ?)", name, email)
	if err != nil {
		t.Fatalf("failed to seed worker: %v", err)
	}
	id, _ := result.LastInsertId()
	return id
}

// seedHouse inserts a test house and returns its ID.
func seedHouse(t *testing.T, db *sql.DB, name string) int64 {
	t.Helper()
	if name == "" {
		name = "Test House"
	}
	result, err := db.Exec("INSERT INTO houses (name) VALUES (?)", name)
	if err != nil {
		t.Fatalf("failed to seed house: %v", err)
	}
	id, _ := result.LastInsertId()
	return id
}
