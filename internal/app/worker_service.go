// Package app implements the primary ports on top of the secondary ports.
package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/example/taskmeister/internal/ports/primary"
	"github.com/example/taskmeister/internal/ports/secondary"
)

// WorkerServiceImpl implements the WorkerService interface.
type WorkerServiceImpl struct {
	workerRepo secondary.WorkerRepository
}

// NewWorkerService creates a new WorkerService with injected dependencies.
func NewWorkerService(workerRepo secondary.WorkerRepository) *WorkerServiceImpl {
	return &WorkerServiceImpl{workerRepo: workerRepo}
}

// CreateWorker creates a new worker.
func (s *WorkerServiceImpl) CreateWorker(ctx context.Context, req primary.CreateWorkerRequest) (*primary.Worker, error) {
	name := strings.TrimSpace(req.Name)
	email := strings.TrimSpace(req.Email)
	if name == "" || email == "" {
		return nil, &primary.ValidationError{Reason: "worker name and email are required"}
	}

	id, err := s.workerRepo.Create(ctx, name, email)
	if err != nil {
		return nil, fmt.Errorf("failed to create worker: %w", err)
	}

	return &primary.Worker{ID: id, Name: name, Email: email}, nil
}

// GetWorker retrieves a worker by ID.
func (s *WorkerServiceImpl) GetWorker(ctx context.Context, id int64) (*primary.Worker, error) {
	record, err := s.workerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &primary.Worker{ID: record.ID, Name: record.Name, Email: record.Email}, nil
}

// UpdateWorker updates a worker's name and email.
func (s *WorkerServiceImpl) UpdateWorker(ctx context.Context, req primary.UpdateWorkerRequest) error {
	name := strings.TrimSpace(req.Name)
	email := strings.TrimSpace(req.Email)
	if name == "" || email == "" {
		return &primary.ValidationError{Reason: "worker name and email are required"}
	}

	if err := s.workerRepo.Update(ctx, req.WorkerID, name, email); err != nil {
		return fmt.Errorf("failed to update worker: %w", err)
	}
	return nil
}

// DeleteWorker deletes a worker. History keeps the name snapshot.
func (s *WorkerServiceImpl) DeleteWorker(ctx context.Context, id int64) error {
	if err := s.workerRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete worker: %w", err)
	}
	return nil
}

// ListWorkers lists all workers ordered by name.
func (s *WorkerServiceImpl) ListWorkers(ctx context.Context) ([]*primary.Worker, error) {
	records, err := s.workerRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list workers: %w", err)
	}

	workers := make([]*primary.Worker, len(records))
	for i, r := range records {
		workers[i] = &primary.Worker{ID: r.ID, Name: r.Name, Email: r.Email}
	}
	return workers, nil
}

// Ensure WorkerServiceImpl implements the interface
var _ primary.WorkerService = (*WorkerServiceImpl)(nil)
