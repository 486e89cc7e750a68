// Package sqlite contains SQLite implementations of repository interfaces.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/example/taskmeister/internal/ports/secondary"
)

// WorkerRepository implements secondary.WorkerRepository with SQLite.
type WorkerRepository struct {
	db *sql.DB
}

// NewWorkerRepository creates a new SQLite worker repository.
func NewWorkerRepository(db *sql.DB) *WorkerRepository {
	return &WorkerRepository{db: db}
}

// Create persists a new worker and returns its assigned ID.
func (r *WorkerRepository) Create(ctx context.Context, name, email string) (int64, error) {
	result, err := r.db.ExecContext(ctx,
		"INSERT INTO workers (name, email) VALUES (?, ?)",
		name, email,
	)
	if err != nil {
		return 0, &secondary.StorageError{Op: "create worker", Err: err}
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, &secondary.StorageError{Op: "create worker", Err: err}
	}

	return id, nil
}

// GetByID retrieves a worker by its ID.
func (r *WorkerRepository) GetByID(ctx context.Context, id int64) (*secondary.WorkerRecord, error) {
	record := &secondary.WorkerRecord{}
	err := r.db.QueryRowContext(ctx,
		"SELECT id, name, email FROM workers WHERE id = ?",
		id,
	).Scan(&record.ID, &record.Name, &record.Email)

	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("worker %d not found", id)
	}
	if err != nil {
		return nil, &secondary.StorageError{Op: "get worker", Err: err}
	}

	return record, nil
}

// Update updates a worker's name and email.
func (r *WorkerRepository) Update(ctx context.Context, id int64, name, email string) error {
	result, err := r.db.ExecContext(ctx,
		"UPDATE workers SET name = ?, email = ? WHERE id = ?",
		name, email, id,
	)
	if err != nil {
		return &secondary.StorageError{Op: "update worker", Err: err}
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return fmt.Errorf("worker %d not found", id)
	}

	return nil
}

// Delete removes a worker. History rows keep their name snapshot.
func (r *WorkerRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM workers WHERE id = ?", id)
	if err != nil {
		return &secondary.StorageError{Op: "delete worker", Err: err}
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return fmt.Errorf("worker %d not found", id)
	}

	return nil
}

// List retrieves all workers ordered by name.
func (r *WorkerRepository) List(ctx context.Context) ([]*secondary.WorkerRecord, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT id, name, email FROM workers ORDER BY name ASC")
	if err != nil {
		return nil, &secondary.StorageError{Op: "list workers", Err: err}
	}
	defer rows.Close()

	var workers []*secondary.WorkerRecord
	for rows.Next() {
		record := &secondary.WorkerRecord{}
		if err := rows.Scan(&record.ID, &record.Name, &record.Email); err != nil {
			return nil, &secondary.StorageError{Op: "scan worker", Err: err}
		}
		workers = append(workers, record)
	}
	if err := rows.Err(); err != nil {
		return nil, &secondary.StorageError{Op: "list workers", Err: err}
	}

	return workers, nil
}

// Ensure WorkerRepository implements the interface
var _ secondary.WorkerRepository = (*WorkerRepository)(nil)
