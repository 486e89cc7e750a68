// +build ignore

package main

import (
	"database/sql"
	"flag"
	"fmt"
	"os"

	_ "github.com/mattn/go-sqlite3"
)

// One-off helper: creates a database with the pre-release schema, the
// shape older installs carry before the migration chain adds
// assignment_date, email_sent, batch_id and the name snapshots. Useful
// for exercising 'taskmeister init' against a legacy store by hand.
//
// Usage: go run scripts/seed_legacy_db.go -db /tmp/legacy.db

const legacySchema = `
CREATE TABLE IF NOT EXISTS workers (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    name TEXT NOT NULL,
    email TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS houses (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    name TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS assignment_history (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    worker_id INTEGER NOT NULL,
    house_id INTEGER NOT NULL,
    quantity INTEGER NOT NULL DEFAULT 1,
    note TEXT,
    date_assigned TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
    FOREIGN KEY (worker_id) REFERENCES workers(id),
    FOREIGN KEY (house_id) REFERENCES houses(id)
);
`

func main() {
	dbPath := flag.String("db", "", "Path for the legacy database (required)")
	force := flag.Bool("force", false, "Overwrite an existing file")
	flag.Parse()

	if *dbPath == "" {
		fmt.Fprintln(os.Stderr, "usage: go run scripts/seed_legacy_db.go -db <path> [-force]")
		os.Exit(1)
	}

	if _, err := os.Stat(*dbPath); err == nil && !*force {
		fmt.Fprintf(os.Stderr, "refusing to overwrite %s (use -force)\n", *dbPath)
		os.Exit(1)
	}
	os.Remove(*dbPath)

	database, err := sql.Open("sqlite3", *dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to open database: %v\n", err)
		os.Exit(1)
	}
	defer database.Close()

	if _, err := database.Exec(legacySchema); err != nil {
		fmt.Fprintf(os.Stderr, "failed to create legacy schema: %v\n", err)
		os.Exit(1)
	}

	seed := []string{
		`INSERT INTO workers (name, email) VALUES ('Ana', 'ana@example.com')`,
		`INSERT INTO workers (name, email) VALUES ('Bela', 'bela@example.com')`,
		`INSERT INTO houses (name) VALUES ('Northgate')`,
		`INSERT INTO houses (name) VALUES ('Aspen Court')`,
		`INSERT INTO assignment_history (worker_id, house_id, quantity, note, date_assigned)
		 VALUES (1, 1, 2, 'legacy row', '2023-11-05 14:30:00')`,
		`INSERT INTO assignment_history (worker_id, house_id, quantity, date_assigned)
		 VALUES (2, 2, 1, '2023-12-01 09:00:00')`,
	}
	for _, stmt := range seed {
		if _, err := database.Exec(stmt); err != nil {
			fmt.Fprintf(os.Stderr, "failed to seed data: %v\n", err)
			os.Exit(1)
		}
	}

	fmt.Printf("✓ Legacy database created at %s\n", *dbPath)
	fmt.Println("Run the migration chain against it with the db path in config.json")
}
