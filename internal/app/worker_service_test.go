package app

import (
	"context"
	"errors"
	"testing"

	"github.com/example/taskmeister/internal/ports/primary"
)

func TestCreateWorker(t *testing.T) {
	repo := newMockWorkerRepository()
	service := NewWorkerService(repo)

	worker, err := service.CreateWorker(context.Background(), primary.CreateWorkerRequest{
		Name:  "  Ana  ",
		Email: "ana@x.com",
	})
	if err != nil {
		t.Fatalf("CreateWorker failed: %v", err)
	}

	if worker.Name != "Ana" {
		t.Errorf("expected trimmed name Ana, got %q", worker.Name)
	}
	if worker.ID == 0 {
		t.Error("expected a non-zero id")
	}
	if len(repo.workers) != 1 {
		t.Errorf("expected 1 stored worker, got %d", len(repo.workers))
	}
}

func TestCreateWorker_RequiresNameAndEmail(t *testing.T) {
	repo := newMockWorkerRepository()
	service := NewWorkerService(repo)

	tests := []struct {
		name string
		req  primary.CreateWorkerRequest
	}{
		{name: "empty name", req: primary.CreateWorkerRequest{Email: "ana@x.com"}},
		{name: "empty email", req: primary.CreateWorkerRequest{Name: "Ana"}},
		{name: "blank name", req: primary.CreateWorkerRequest{Name: "   ", Email: "ana@x.com"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.CreateWorker(context.Background(), tt.req)
			var validationErr *primary.ValidationError
			if !errors.As(err, &validationErr) {
				t.Errorf("expected ValidationError, got %v", err)
			}
		})
	}
	if len(repo.workers) != 0 {
		t.Error("rejected requests must not touch storage")
	}
}

func TestUpdateWorker(t *testing.T) {
	repo := newMockWorkerRepository()
	id := repo.add("Ana", "ana@x.com")
	service := NewWorkerService(repo)

	err := service.UpdateWorker(context.Background(), primary.UpdateWorkerRequest{
		WorkerID: id,
		Name:     "Ana B",
		Email:    "ana.b@x.com",
	})
	if err != nil {
		t.Fatalf("UpdateWorker failed: %v", err)
	}

	if repo.workers[id].Email != "ana.b@x.com" {
		t.Errorf("expected updated email, got %s", repo.workers[id].Email)
	}
}

func TestUpdateWorker_RequiresNameAndEmail(t *testing.T) {
	repo := newMockWorkerRepository()
	id := repo.add("Ana", "ana@x.com")
	service := NewWorkerService(repo)

	err := service.UpdateWorker(context.Background(), primary.UpdateWorkerRequest{WorkerID: id, Name: "Ana"})
	var validationErr *primary.ValidationError
	if !errors.As(err, &validationErr) {
		t.Errorf("expected ValidationError, got %v", err)
	}
	if repo.workers[id].Name != "Ana" {
		t.Error("rejected update must not change the record")
	}
}

func TestGetWorker_NotFound(t *testing.T) {
	service := NewWorkerService(newMockWorkerRepository())

	if _, err := service.GetWorker(context.Background(), 42); err == nil {
		t.Error("expected error for missing worker")
	}
}

func TestDeleteWorker(t *testing.T) {
	repo := newMockWorkerRepository()
	id := repo.add("Ana", "ana@x.com")
	service := NewWorkerService(repo)

	if err := service.DeleteWorker(context.Background(), id); err != nil {
		t.Fatalf("DeleteWorker failed: %v", err)
	}
	if len(repo.workers) != 0 {
		t.Error("expected worker removed")
	}
}
