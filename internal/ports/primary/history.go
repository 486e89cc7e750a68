package primary

import (
	"context"
	"io"
)

// HistoryService defines the primary port for the assignment audit trail.
type HistoryService interface {
	// List returns the full history, most recent record first. filter,
	// when non-empty, is a case-insensitive substring match applied to
	// worker name, house name and note (OR across the three).
	List(ctx context.Context, filter string) ([]*HistoryRow, error)

	// Export writes the same rows List would return for filter as CSV to
	// w and reports the number of data rows written.
	Export(ctx context.Context, w io.Writer, filter string) (int, error)
}

// HistoryRow is one audit trail entry joined with its worker and house
// names. Dates are pre-formatted for display: AssignmentDate as
// DD.MM.YYYY, RecordDate as DD.MM.YYYY HH:MM.
type HistoryRow struct {
	BatchID        string
	WorkerName     string
	HouseName      string
	Quantity       int
	Note           string
	AssignmentDate string
	RecordDate     string
	Status         string
}

// History status labels derived from the delivery flag.
const (
	StatusDelivered = "Delivered"
	StatusPending   = "Pending"
)
