package sqlite_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/example/taskmeister/internal/adapters/sqlite"
	"github.com/example/taskmeister/internal/ports/secondary"
)

// seedBatch creates a worker, a house and one pending assignment batch,
// returning the batch ID.
func seedBatch(t *testing.T, db *sql.DB, repo *sqlite.AssignmentRepository, batchID, date string, delivered bool) (int64, int64) {
	t.Helper()
	ctx := context.Background()

	workerID := seedWorker(t, db, "Ana", "ana@x.com")
	houseID := seedHouse(t, db, "Northgate")

	records := []*secondary.AssignmentRecord{
		{
			BatchID:        batchID,
			WorkerID:       workerID,
			HouseID:        houseID,
			WorkerName:     "Ana",
			HouseName:      "Northgate",
			Quantity:       1,
			AssignmentDate: date,
			EmailSent:      delivered,
		},
	}
	if err := repo.CreateBatch(ctx, records); err != nil {
		t.Fatalf("CreateBatch failed: %v", err)
	}
	return workerID, houseID
}

func TestAssignmentRepository_CreateBatch(t *testing.T) {
	db := setupTestDB(t)
	repo := sqlite.NewAssignmentRepository(db)
	ctx := context.Background()

	workerID := seedWorker(t, db, "Ana", "ana@x.com")
	houseA := seedHouse(t, db, "Aspen Court")
	houseB := seedHouse(t, db, "Northgate")

	records := []*secondary.AssignmentRecord{
		{
			BatchID: "batch-1", WorkerID: workerID, HouseID: houseA,
			WorkerName: "Ana", HouseName: "Aspen Court",
			Quantity: 1, AssignmentDate: "2024-05-01",
		},
		{
			BatchID: "batch-1", WorkerID: workerID, HouseID: houseB,
			WorkerName: "Ana", HouseName: "Northgate",
			Quantity: 2, Note: "late ok", AssignmentDate: "2024-05-01",
		},
	}

	if err := repo.CreateBatch(ctx, records); err != nil {
		t.Fatalf("CreateBatch failed: %v", err)
	}

	batch, err := repo.GetBatch(ctx, "batch-1")
	if err != nil {
		t.Fatalf("GetBatch failed: %v", err)
	}
	if len(batch) != 2 {
		t.Fatalf("expected 2 records, got %d", len(batch))
	}
	if batch[0].EmailSent || batch[1].EmailSent {
		t.Error("fresh batch records must be pending")
	}
	if batch[1].Note != "late ok" {
		t.Errorf("expected note 'late ok', got '%s'", batch[1].Note)
	}
	if batch[0].AssignmentDate != "2024-05-01" {
		t.Errorf("expected assignment date 2024-05-01, got %s", batch[0].AssignmentDate)
	}
	if batch[0].DateAssigned.IsZero() {
		t.Error("expected record timestamp to be set by the store")
	}
}

func TestAssignmentRepository_AssignedHouseIDs_DeliveredOnly(t *testing.T) {
	db := setupTestDB(t)
	repo := sqlite.NewAssignmentRepository(db)
	ctx := context.Background()

	workerID := seedWorker(t, db, "Ana", "ana@x.com")
	delivered := seedHouse(t, db, "Delivered House")
	pending := seedHouse(t, db, "Pending House")

	records := []*secondary.AssignmentRecord{
		{
			BatchID: "batch-d", WorkerID: workerID, HouseID: delivered,
			WorkerName: "Ana", HouseName: "Delivered House",
			Quantity: 1, AssignmentDate: "2024-05-01", EmailSent: true,
		},
		{
			BatchID: "batch-p", WorkerID: workerID, HouseID: pending,
			WorkerName: "Ana", HouseName: "Pending House",
			Quantity: 1, AssignmentDate: "2024-05-01", EmailSent: false,
		},
	}
	if err := repo.CreateBatch(ctx, records); err != nil {
		t.Fatalf("CreateBatch failed: %v", err)
	}

	ids, err := repo.AssignedHouseIDs(ctx, "2024-05-01")
	if err != nil {
		t.Fatalf("AssignedHouseIDs failed: %v", err)
	}

	if len(ids) != 1 || ids[0] != delivered {
		t.Errorf("expected only the delivered house %d, got %v", delivered, ids)
	}

	// A different date excludes everything.
	ids, err = repo.AssignedHouseIDs(ctx, "2024-05-02")
	if err != nil {
		t.Fatalf("AssignedHouseIDs failed: %v", err)
	}
	if len(ids) != 0 {
		t.Errorf("expected no assigned houses for another date, got %v", ids)
	}
}

func TestAssignmentRepository_MarkBatchDelivered(t *testing.T) {
	db := setupTestDB(t)
	repo := sqlite.NewAssignmentRepository(db)
	ctx := context.Background()

	_, houseID := seedBatch(t, db, repo, "batch-1", "2024-05-01", false)

	if err := repo.MarkBatchDelivered(ctx, "batch-1"); err != nil {
		t.Fatalf("MarkBatchDelivered failed: %v", err)
	}

	batch, _ := repo.GetBatch(ctx, "batch-1")
	if !batch[0].EmailSent {
		t.Error("expected record to be delivered after flip")
	}

	ids, _ := repo.AssignedHouseIDs(ctx, "2024-05-01")
	if len(ids) != 1 || ids[0] != houseID {
		t.Errorf("expected house %d assigned after delivery, got %v", houseID, ids)
	}
}

func TestAssignmentRepository_ListHistory_SnapshotSurvivesDelete(t *testing.T) {
	db := setupTestDB(t)
	repo := sqlite.NewAssignmentRepository(db)
	ctx := context.Background()

	workerID, houseID := seedBatch(t, db, repo, "batch-1", "2024-05-01", true)

	// Deleting the live rows must not lose the history names.
	if _, err := db.Exec("DELETE FROM workers WHERE id = ?", workerID); err != nil {
		t.Fatalf("failed to delete worker: %v", err)
	}
	if _, err := db.Exec("DELETE FROM houses WHERE id = ?", houseID); err != nil {
		t.Fatalf("failed to delete house: %v", err)
	}

	history, err := repo.ListHistory(ctx)
	if err != nil {
		t.Fatalf("ListHistory failed: %v", err)
	}

	if len(history) != 1 {
		t.Fatalf("expected 1 history row, got %d", len(history))
	}
	if history[0].WorkerName != "Ana" {
		t.Errorf("expected snapshot worker name 'Ana', got '%s'", history[0].WorkerName)
	}
	if history[0].HouseName != "Northgate" {
		t.Errorf("expected snapshot house name 'Northgate', got '%s'", history[0].HouseName)
	}
}

func TestAssignmentRepository_ListHistory_PrefersLiveName(t *testing.T) {
	db := setupTestDB(t)
	repo := sqlite.NewAssignmentRepository(db)
	ctx := context.Background()

	workerID, _ := seedBatch(t, db, repo, "batch-1", "2024-05-01", true)

	// Renaming the worker after the commit shows the live name in history.
	if _, err := db.Exec("UPDATE workers SET name = 'Ana Maria' WHERE id = ?", workerID); err != nil {
		t.Fatalf("failed to rename worker: %v", err)
	}

	history, err := repo.ListHistory(ctx)
	if err != nil {
		t.Fatalf("ListHistory failed: %v", err)
	}
	if history[0].WorkerName != "Ana Maria" {
		t.Errorf("expected live worker name, got '%s'", history[0].WorkerName)
	}
}

func TestAssignmentRepository_ListHistory_MostRecentFirst(t *testing.T) {
	db := setupTestDB(t)
	repo := sqlite.NewAssignmentRepository(db)
	ctx := context.Background()

	workerID := seedWorker(t, db, "Ana", "ana@x.com")
	houseID := seedHouse(t, db, "Northgate")

	// Insert with explicit timestamps so the ordering is deterministic.
	stmts := []struct {
		note string
		ts   string
	}{
		{"older", "2024-05-01 08:00:00"},
		{"newer", "2024-05-02 08:00:00"},
	}
	for _, s := range stmts {
		_, err := db.Exec(`
			INSERT INTO assignment_history
				(worker_id, house_id, quantity, note, date_assigned, assignment_date, email_sent, batch_id, worker_name, house_name)
			VALUES (?, ?, 1, ?, ?, '2024-05-03', 1, 'b', 'Ana', 'Northgate')`,
			workerID, houseID, s.note, s.ts,
		)
		if err != nil {
			t.Fatalf("failed to insert history row: %v", err)
		}
	}

	history, err := repo.ListHistory(ctx)
	if err != nil {
		t.Fatalf("ListHistory failed: %v", err)
	}

	if len(history) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(history))
	}
	if history[0].Note != "newer" || history[1].Note != "older" {
		t.Errorf("expected most recent first, got %q then %q", history[0].Note, history[1].Note)
	}
}
