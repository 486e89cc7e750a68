package db

import (
	"database/sql"
	"fmt"
)

// Migration represents a database migration. Up runs inside a transaction
// together with the schema_version bookkeeping: a failing migration rolls
// back wholly and leaves no partially applied columns behind.
type Migration struct {
	Version int
	Name    string
	Up      func(*sql.Tx) error
}

// migrations is the list of all migrations in order. Each Up is written
// against the live column set (PRAGMA table_info), so the chain is additive
// and idempotent even when pointed at a database created by the legacy
// tool or at a fresh database that already carries the full schema.
var migrations = []Migration{
	{
		Version: 1,
		Name:    "create_base_tables",
		Up:      migrationV1,
	},
	{
		Version: 2,
		Name:    "add_assignment_date_column",
		Up:      migrationV2,
	},
	{
		Version: 3,
		Name:    "add_email_sent_column",
		Up:      migrationV3,
	},
	{
		Version: 4,
		Name:    "add_batch_id_and_name_snapshots",
		Up:      migrationV4,
	},
}

// RunMigrations executes all pending migrations against database.
func RunMigrations(database *sql.DB) error {
	_, err := database.Exec(`
		CREATE TABLE IF NOT EXISTS schema_version (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to create schema_version table: %w", err)
	}

	var currentVersion int
	err = database.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_version").Scan(&currentVersion)
	if err != nil {
		return fmt.Errorf("failed to get current schema version: %w", err)
	}

	for _, migration := range migrations {
		if migration.Version <= currentVersion {
			continue
		}

		tx, err := database.Begin()
		if err != nil {
			return fmt.Errorf("failed to begin transaction for migration %d: %w", migration.Version, err)
		}

		if err := migration.Up(tx); err != nil {
			tx.Rollback()
			return fmt.Errorf("migration %d (%s) failed: %w", migration.Version, migration.Name, err)
		}

		if _, err := tx.Exec("INSERT INTO schema_version (version) VALUES (?)", migration.Version); err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to record migration %d: %w", migration.Version, err)
		}

		if err := tx.Commit(); err != nil {
			return fmt.Errorf("failed to commit migration %d: %w", migration.Version, err)
		}
	}

	return nil
}

// hasColumn reports whether table carries the named column.
func hasColumn(tx *sql.Tx, table, column string) (bool, error) {
	rows, err := tx.Query(fmt.Sprintf("PRAGMA table_info(%s)", table))
	if err != nil {
		return false, fmt.Errorf("failed to inspect %s: %w", table, err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			cid        int
			name       string
			colType    string
			notNull    int
			defaultVal sql.NullString
			pk         int
		)
		if err := rows.Scan(&cid, &name, &colType, &notNull, &defaultVal, &pk); err != nil {
			return false, fmt.Errorf("failed to scan column info: %w", err)
		}
		if name == column {
			return true, nil
		}
	}

	return false, rows.Err()
}

// migrationV1 creates the base tables in their original shape. On a store
// that already ran SchemaSQL (or the legacy tool) this is a no-op.
func migrationV1(tx *sql.Tx) error {
	_, err := tx.Exec(`
		CREATE TABLE IF NOT EXISTS workers (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL,
			email TEXT NOT NULL
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to create workers: %w", err)
	}

	_, err = tx.Exec(`
		CREATE TABLE IF NOT EXISTS houses (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to create houses: %w", err)
	}

	_, err = tx.Exec(`
		CREATE TABLE IF NOT EXISTS assignment_history (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			worker_id INTEGER,
			house_id INTEGER,
			quantity INTEGER DEFAULT 1,
			note TEXT,
			date_assigned TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY(worker_id) REFERENCES workers(id),
			FOREIGN KEY(house_id) REFERENCES houses(id)
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to create assignment_history: %w", err)
	}

	return nil
}

// migrationV2 adds the assignment_date column (target service date,
// distinct from the record timestamp) and backfills it from the date
// component of date_assigned.
func migrationV2(tx *sql.Tx) error {
	exists, err := hasColumn(tx, "assignment_history", "assignment_date")
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	if _, err := tx.Exec("ALTER TABLE assignment_history ADD COLUMN assignment_date DATE"); err != nil {
		return fmt.Errorf("failed to add assignment_date: %w", err)
	}

	_, err = tx.Exec(`
		UPDATE assignment_history
		SET assignment_date = DATE(date_assigned)
		WHERE assignment_date IS NULL
	`)
	if err != nil {
		return fmt.Errorf("failed to backfill assignment_date: %w", err)
	}

	return nil
}

// migrationV3 adds the email_sent delivery flag. Pre-existing rows default
// to 1: legacy data is treated as already notified.
func migrationV3(tx *sql.Tx) error {
	exists, err := hasColumn(tx, "assignment_history", "email_sent")
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	if _, err := tx.Exec("ALTER TABLE assignment_history ADD COLUMN email_sent BOOLEAN DEFAULT 1"); err != nil {
		return fmt.Errorf("failed to add email_sent: %w", err)
	}

	if _, err := tx.Exec("UPDATE assignment_history SET email_sent = 1 WHERE email_sent IS NULL"); err != nil {
		return fmt.Errorf("failed to backfill email_sent: %w", err)
	}

	return nil
}

// migrationV4 adds the batch grouping ID and the worker/house name
// snapshots. Snapshots for existing rows are backfilled from the live
// tables; rows whose worker or house was already deleted keep NULL and
// render as empty names.
func migrationV4(tx *sql.Tx) error {
	for _, column := range []string{"batch_id", "worker_name", "house_name"} {
		exists, err := hasColumn(tx, "assignment_history", column)
		if err != nil {
			return err
		}
		if exists {
			continue
		}

		if _, err := tx.Exec(fmt.Sprintf("ALTER TABLE assignment_history ADD COLUMN %s TEXT", column)); err != nil {
			return fmt.Errorf("failed to add %s: %w", column, err)
		}
	}

	_, err := tx.Exec(`
		UPDATE assignment_history
		SET worker_name = (SELECT name FROM workers WHERE workers.id = assignment_history.worker_id)
		WHERE worker_name IS NULL
	`)
	if err != nil {
		return fmt.Errorf("failed to backfill worker_name: %w", err)
	}

	_, err = tx.Exec(`
		UPDATE assignment_history
		SET house_name = (SELECT name FROM houses WHERE houses.id = assignment_history.house_id)
		WHERE house_name IS NULL
	`)
	if err != nil {
		return fmt.Errorf("failed to backfill house_name: %w", err)
	}

	return nil
}
