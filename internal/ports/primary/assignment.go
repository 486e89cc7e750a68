package primary

import "context"

// AssignmentService defines the primary port for assignment operations.
// It is the sole enforcement point for the double-booking guard: a house
// with a delivered assignment for a date cannot be assigned again for
// that date.
type AssignmentService interface {
	// AvailableHouses returns the houses that have no delivered assignment
	// for the given date (YYYY-MM-DD), ordered by name. Houses whose only
	// records for the date are pending remain available: a failed
	// notification means the worker never received the commitment.
	AvailableHouses(ctx context.Context, date string) ([]*House, error)

	// Commit assigns the selected houses to one worker for one date.
	// Records are inserted as pending, the notification is sent once for
	// the whole batch, and the batch is marked delivered only after the
	// send is confirmed. On notification failure Commit returns the
	// receipt together with a *NotificationError: the rows stay pending
	// and can be resent by batch ID.
	Commit(ctx context.Context, req CommitRequest) (*Receipt, error)

	// Resend re-sends the notification for a pending batch and marks it
	// delivered on success.
	Resend(ctx context.Context, batchID string) (*Receipt, error)
}

// Selection is one house chosen for assignment.
type Selection struct {
	HouseID  int64
	Quantity int
	Note     string
}

// CommitRequest contains parameters for committing a batch assignment.
type CommitRequest struct {
	WorkerID   int64
	Date       string // target service date, YYYY-MM-DD
	Selections []Selection
}

// ReceiptLine is one house entry on a receipt.
type ReceiptLine struct {
	HouseName string
	Quantity  int
	Note      string
}

// Receipt summarizes a committed batch. The same content feeds the
// notification body and the CLI confirmation output.
type Receipt struct {
	BatchID       string
	WorkerName    string
	WorkerEmail   string
	Date          string // YYYY-MM-DD
	DateFormatted string // DD.MM.YYYY
	Lines         []ReceiptLine
	Delivered     bool
}
