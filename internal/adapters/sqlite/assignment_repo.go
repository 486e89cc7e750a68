package sqlite

import (
	"context"
	"database/sql"

	"github.com/example/taskmeister/internal/ports/secondary"
)

// dateLayout is the stored form of assignment_date values.
const dateLayout = "2006-01-02"

// AssignmentRepository implements secondary.AssignmentRepository with
// SQLite. assignment_history is append-only: this repository inserts,
// flips the delivery flag and reads, but never deletes.
type AssignmentRepository struct {
	db *sql.DB
}

// NewAssignmentRepository creates a new SQLite assignment repository.
func NewAssignmentRepository(db *sql.DB) *AssignmentRepository {
	return &AssignmentRepository{db: db}
}

// CreateBatch persists all records of one commit in a single transaction.
func (r *AssignmentRepository) CreateBatch(ctx context.Context, records []*secondary.AssignmentRecord) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return &secondary.StorageError{Op: "begin batch", Err: err}
	}

	for _, record := range records {
		var note sql.NullString
		if record.Note != "" {
			note = sql.NullString{String: record.Note, Valid: true}
		}

		_, err := tx.ExecContext(ctx, `
			INSERT INTO assignment_history
				(worker_id, house_id, quantity, note, assignment_date, email_sent, batch_id, worker_name, house_name)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			record.WorkerID, record.HouseID, record.Quantity, note,
			record.AssignmentDate, record.EmailSent, record.BatchID,
			record.WorkerName, record.HouseName,
		)
		if err != nil {
			tx.Rollback()
			return &secondary.StorageError{Op: "create assignment", Err: err}
		}
	}

	if err := tx.Commit(); err != nil {
		return &secondary.StorageError{Op: "commit batch", Err: err}
	}

	return nil
}

// AssignedHouseIDs returns the IDs of houses with a delivered record for
// the given date. Pending records do not block a house.
func (r *AssignmentRepository) AssignedHouseIDs(ctx context.Context, date string) ([]int64, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT DISTINCT house_id FROM assignment_history
		WHERE assignment_date = ? AND email_sent = 1`,
		date,
	)
	if err != nil {
		return nil, &secondary.StorageError{Op: "get assigned houses", Err: err}
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, &secondary.StorageError{Op: "scan assigned house", Err: err}
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, &secondary.StorageError{Op: "get assigned houses", Err: err}
	}

	return ids, nil
}

// GetBatch retrieves all records sharing a batch ID.
func (r *AssignmentRepository) GetBatch(ctx context.Context, batchID string) ([]*secondary.AssignmentRecord, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, batch_id, worker_id, house_id, worker_name, house_name,
			quantity, note, assignment_date, date_assigned, email_sent
		FROM assignment_history
		WHERE batch_id = ?
		ORDER BY id ASC`,
		batchID,
	)
	if err != nil {
		return nil, &secondary.StorageError{Op: "get batch", Err: err}
	}
	defer rows.Close()

	var records []*secondary.AssignmentRecord
	for rows.Next() {
		record, err := scanAssignment(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, &secondary.StorageError{Op: "get batch", Err: err}
	}

	return records, nil
}

// MarkBatchDelivered flips every record of a batch to delivered. The flip
// is one-way; there is no path back to pending.
func (r *AssignmentRepository) MarkBatchDelivered(ctx context.Context, batchID string) error {
	_, err := r.db.ExecContext(ctx,
		"UPDATE assignment_history SET email_sent = 1 WHERE batch_id = ?",
		batchID,
	)
	if err != nil {
		return &secondary.StorageError{Op: "mark batch delivered", Err: err}
	}

	return nil
}

// ListHistory retrieves the full audit trail, most recent record first.
// Names come from the live worker/house rows when present and fall back
// to the snapshot taken at commit time, so deleted entities stay legible.
func (r *AssignmentRepository) ListHistory(ctx context.Context) ([]*secondary.HistoryRecord, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT COALESCE(a.batch_id, ''),
			COALESCE(w.name, a.worker_name, ''),
			COALESCE(h.name, a.house_name, ''),
			a.quantity, a.note, a.assignment_date, a.date_assigned, a.email_sent
		FROM assignment_history a
		LEFT JOIN workers w ON a.worker_id = w.id
		LEFT JOIN houses h ON a.house_id = h.id
		ORDER BY a.date_assigned DESC, a.id DESC`,
	)
	if err != nil {
		return nil, &secondary.StorageError{Op: "list history", Err: err}
	}
	defer rows.Close()

	var history []*secondary.HistoryRecord
	for rows.Next() {
		var (
			record         secondary.HistoryRecord
			note           sql.NullString
			assignmentDate sql.NullTime
			dateAssigned   sql.NullTime
		)
		err := rows.Scan(&record.BatchID, &record.WorkerName, &record.HouseName,
			&record.Quantity, &note, &assignmentDate, &dateAssigned, &record.EmailSent)
		if err != nil {
			return nil, &secondary.StorageError{Op: "scan history", Err: err}
		}

		record.Note = note.String
		if assignmentDate.Valid {
			record.AssignmentDate = assignmentDate.Time.Format(dateLayout)
		}
		if dateAssigned.Valid {
			record.DateAssigned = dateAssigned.Time
		}

		history = append(history, &record)
	}
	if err := rows.Err(); err != nil {
		return nil, &secondary.StorageError{Op: "list history", Err: err}
	}

	return history, nil
}

// scanAssignment reads one assignment_history row.
func scanAssignment(rows *sql.Rows) (*secondary.AssignmentRecord, error) {
	var (
		record         secondary.AssignmentRecord
		batchID        sql.NullString
		workerID       sql.NullInt64
		houseID        sql.NullInt64
		workerName     sql.NullString
		houseName      sql.NullString
		note           sql.NullString
		assignmentDate sql.NullTime
		dateAssigned   sql.NullTime
	)

	err := rows.Scan(&record.ID, &batchID, &workerID, &houseID, &workerName, &houseName,
		&record.Quantity, &note, &assignmentDate, &dateAssigned, &record.EmailSent)
	if err != nil {
		return nil, &secondary.StorageError{Op: "scan assignment", Err: err}
	}

	record.BatchID = batchID.String
	record.WorkerID = workerID.Int64
	record.HouseID = houseID.Int64
	record.WorkerName = workerName.String
	record.HouseName = houseName.String
	record.Note = note.String
	if assignmentDate.Valid {
		record.AssignmentDate = assignmentDate.Time.Format(dateLayout)
	}
	if dateAssigned.Valid {
		record.DateAssigned = dateAssigned.Time
	}

	return &record, nil
}

// Ensure AssignmentRepository implements the interface
var _ secondary.AssignmentRepository = (*AssignmentRepository)(nil)
