package db

// SchemaSQL is the complete modern schema for fresh installs. It reflects
// the state after all migrations and is the single source of truth: tests
// load it via GetSchemaSQL() so repository code and test databases cannot
// drift apart.
//
// Every statement is IF NOT EXISTS, so applying it against an existing
// database is a no-op. The migration chain in migrations.go runs before
// this schema is applied: the index statements reference columns a
// legacy store only has after migrating.
//
// assignment_history is an append-only audit log: rows are inserted by
// batch commits and never deleted. The only mutation is the one-way
// email_sent flip from 0 (pending) to 1 (delivered). worker_name and
// house_name are snapshots taken at commit time so history survives
// worker or house deletion.
const SchemaSQL = `
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
	worker_id INTEGER,
	house_id INTEGER,
	quantity INTEGER DEFAULT 1,
	note TEXT,
	date_assigned TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
	assignment_date DATE,
	email_sent BOOLEAN DEFAULT 1,
	batch_id TEXT,
	worker_name TEXT,
	house_name TEXT,
	FOREIGN KEY(worker_id) REFERENCES workers(id),
	FOREIGN KEY(house_id) REFERENCES houses(id)
);

CREATE INDEX IF NOT EXISTS idx_assignment_history_date
	ON assignment_history(assignment_date, email_sent);

CREATE INDEX IF NOT EXISTS idx_assignment_history_batch
	ON assignment_history(batch_id);
`

// GetSchemaSQL returns the authoritative schema for use in tests.
func GetSchemaSQL() string {
	return SchemaSQL
}
