package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/example/taskmeister/internal/ports/secondary"
)

// HouseRepository implements secondary.HouseRepository with SQLite.
type HouseRepository struct {
	db *sql.DB
}

// NewHouseRepository creates a new SQLite house repository.
func NewHouseRepository(db *sql.DB) *HouseRepository {
	return &HouseRepository{db: db}
}

// Create persists a new house and returns its assigned ID.
func (r *HouseRepository) Create(ctx context.Context, name string) (int64, error) {
	result, err := r.db.ExecContext(ctx, "INSERT INTO houses (name) VALUES (?)", name)
	if err != nil {
		return 0, &secondary.StorageError{Op: "create house", Err: err}
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, &secondary.StorageError{Op: "create house", Err: err}
	}

	return id, nil
}

// GetByID retrieves a house by its ID.
func (r *HouseRepository) GetByID(ctx context.Context, id int64) (*secondary.HouseRecord, error) {
	record := &secondary.HouseRecord{}
	err := r.db.QueryRowContext(ctx,
		"SELECT id, name FROM houses WHERE id = ?",
		id,
	).Scan(&record.ID, &record.Name)

	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("house %d not found", id)
	}
	if err != nil {
		return nil, &secondary.StorageError{Op: "get house", Err: err}
	}

	return record, nil
}

// Update renames a house.
func (r *HouseRepository) Update(ctx context.Context, id int64, name string) error {
	result, err := r.db.ExecContext(ctx, "UPDATE houses SET name = ? WHERE id = ?", name, id)
	if err != nil {
		return &secondary.StorageError{Op: "update house", Err: err}
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return fmt.Errorf("house %d not found", id)
	}

	return nil
}

// Delete removes a house. History rows keep their name snapshot.
func (r *HouseRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM houses WHERE id = ?", id)
	if err != nil {
		return &secondary.StorageError{Op: "delete house", Err: err}
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return fmt.Errorf("house %d not found", id)
	}

	return nil
}

// List retrieves all houses ordered by name.
func (r *HouseRepository) List(ctx context.Context) ([]*secondary.HouseRecord, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT id, name FROM houses ORDER BY name ASC")
	if err != nil {
		return nil, &secondary.StorageError{Op: "list houses", Err: err}
	}
	defer rows.Close()

	var houses []*secondary.HouseRecord
	for rows.Next() {
		record := &secondary.HouseRecord{}
		if err := rows.Scan(&record.ID, &record.Name); err != nil {
			return nil, &secondary.StorageError{Op: "scan house", Err: err}
		}
		houses = append(houses, record)
	}
	if err := rows.Err(); err != nil {
		return nil, &secondary.StorageError{Op: "list houses", Err: err}
	}

	return houses, nil
}

// Ensure HouseRepository implements the interface
var _ secondary.HouseRepository = (*HouseRepository)(nil)
