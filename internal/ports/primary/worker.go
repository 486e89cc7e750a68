// Package primary defines the primary ports (driving interfaces) for the
// application along with their request/response types.
package primary

import "context"

// WorkerService defines the primary port for worker operations.
type WorkerService interface {
	// CreateWorker creates a new worker.
	CreateWorker(ctx context.Context, req CreateWorkerRequest) (*Worker, error)

	// GetWorker retrieves a worker by ID.
	GetWorker(ctx context.Context, id int64) (*Worker, error)

	// UpdateWorker updates a worker's name and email.
	UpdateWorker(ctx context.Context, req UpdateWorkerRequest) error

	// DeleteWorker deletes a worker. Assignment history keeps the worker's
	// name snapshot, so past assignments remain readable.
	DeleteWorker(ctx context.Context, id int64) error

	// ListWorkers lists all workers ordered by name.
	ListWorkers(ctx context.Context) ([]*Worker, error)
}

// CreateWorkerRequest contains parameters for creating a worker.
type CreateWorkerRequest struct {
	Name  string
	Email string
}

// UpdateWorkerRequest contains parameters for updating a worker.
type UpdateWorkerRequest struct {
	WorkerID int64
	Name     string
	Email    string
}

// Worker represents a worker entity at the port boundary.
type Worker struct {
	ID    int64
	Name  string
	Email string
}
