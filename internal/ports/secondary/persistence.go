// Package secondary defines the secondary ports (driven adapters) for the
// application. These are the interfaces through which the application drives
// external systems.
package secondary

import (
	"context"
	"fmt"
	"time"
)

// StorageError wraps a failed read or write with the underlying driver
// error. A single failed call persists no partial state; callers decide
// whether to retry (none do automatically).
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage: %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// WorkerRepository defines the secondary port for worker persistence.
type WorkerRepository interface {
	// Create persists a new worker and returns its assigned ID.
	Create(ctx context.Context, name, email string) (int64, error)

	// GetByID retrieves a worker by its ID.
	GetByID(ctx context.Context, id int64) (*WorkerRecord, error)

	// Update updates a worker's name and email.
	Update(ctx context.Context, id int64, name, email string) error

	// Delete removes a worker. History rows keep their name snapshot.
	Delete(ctx context.Context, id int64) error

	// List retrieves all workers ordered by name.
	List(ctx context.Context) ([]*WorkerRecord, error)
}

// WorkerRecord represents a worker as stored in persistence.
type WorkerRecord struct {
	ID    int64
	Name  string
	Email string
}

// HouseRepository defines the secondary port for house persistence.
type HouseRepository interface {
	// Create persists a new house and returns its assigned ID.
	Create(ctx context.Context, name string) (int64, error)

	// GetByID retrieves a house by its ID.
	GetByID(ctx context.Context, id int64) (*HouseRecord, error)

	// Update renames a house.
	Update(ctx context.Context, id int64, name string) error

	// Delete removes a house. History rows keep their name snapshot.
	Delete(ctx context.Context, id int64) error

	// List retrieves all houses ordered by name.
	List(ctx context.Context) ([]*HouseRecord, error)
}

// HouseRecord represents a house as stored in persistence.
type HouseRecord struct {
	ID   int64
	Name string
}

// AssignmentRepository defines the secondary port for the append-only
// assignment audit trail. Records are created by batch commits and never
// mutated afterwards, except for the one-way pending-to-delivered flip.
type AssignmentRepository interface {
	// CreateBatch persists all records of one commit in a single
	// transaction. Either every record is written or none is.
	CreateBatch(ctx context.Context, records []*AssignmentRecord) error

	// AssignedHouseIDs returns the IDs of houses that have a delivered
	// record for the given date (YYYY-MM-DD).
	AssignedHouseIDs(ctx context.Context, date string) ([]int64, error)

	// GetBatch retrieves all records sharing a batch ID.
	GetBatch(ctx context.Context, batchID string) ([]*AssignmentRecord, error)

	// MarkBatchDelivered flips every record of a batch to delivered.
	MarkBatchDelivered(ctx context.Context, batchID string) error

	// ListHistory retrieves the full audit trail joined with worker and
	// house names (live name when the row still exists, snapshot
	// otherwise), most recent record first.
	ListHistory(ctx context.Context) ([]*HistoryRecord, error)
}

// AssignmentRecord represents one audit trail row as stored in
// persistence.
type AssignmentRecord struct {
	ID             int64
	BatchID        string
	WorkerID       int64
	HouseID        int64
	WorkerName     string // snapshot taken at commit time
	HouseName      string // snapshot taken at commit time
	Quantity       int
	Note           string
	AssignmentDate string // target service date, YYYY-MM-DD
	DateAssigned   time.Time
	EmailSent      bool
}

// HistoryRecord is an audit trail row joined with its display names.
type HistoryRecord struct {
	BatchID        string
	WorkerName     string
	HouseName      string
	Quantity       int
	Note           string
	AssignmentDate string
	DateAssigned   time.Time
	EmailSent      bool
}
