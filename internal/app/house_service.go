package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/example/taskmeister/internal/ports/primary"
	"github.com/example/taskmeister/internal/ports/secondary"
)

// HouseServiceImpl implements the HouseService interface.
type HouseServiceImpl struct {
	houseRepo secondary.HouseRepository
}

// NewHouseService creates a new HouseService with injected dependencies.
func NewHouseService(houseRepo secondary.HouseRepository) *HouseServiceImpl {
	return &HouseServiceImpl{houseRepo: houseRepo}
}

// CreateHouse creates a new house.
func (s *HouseServiceImpl) CreateHouse(ctx context.Context, name string) (*primary.House, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, &primary.ValidationError{Reason: "house name is required"}
	}

	id, err := s.houseRepo.Create(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("failed to create house: %w", err)
	}

	return &primary.House{ID: id, Name: name}, nil
}

// GetHouse retrieves a house by ID.
func (s *HouseServiceImpl) GetHouse(ctx context.Context, id int64) (*primary.House, error) {
	record, err := s.houseRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &primary.House{ID: record.ID, Name: record.Name}, nil
}

// UpdateHouse renames a house.
func (s *HouseServiceImpl) UpdateHouse(ctx context.Context, id int64, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return &primary.ValidationError{Reason: "house name is required"}
	}

	if err := s.houseRepo.Update(ctx, id, name); err != nil {
		return fmt.Errorf("failed to update house: %w", err)
	}
	return nil
}

// DeleteHouse deletes a house. History keeps the name snapshot.
func (s *HouseServiceImpl) DeleteHouse(ctx context.Context, id int64) error {
	if err := s.houseRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete house: %w", err)
	}
	return nil
}

// ListHouses lists all houses ordered by name.
func (s *HouseServiceImpl) ListHouses(ctx context.Context) ([]*primary.House, error) {
	records, err := s.houseRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list houses: %w", err)
	}

	houses := make([]*primary.House, len(records))
	for i, r := range records {
		houses[i] = &primary.House{ID: r.ID, Name: r.Name}
	}
	return houses, nil
}

// Ensure HouseServiceImpl implements the interface
var _ primary.HouseService = (*HouseServiceImpl)(nil)
