package primary

import "context"

// HouseService defines the primary port for house operations.
type HouseService interface {
	// CreateHouse creates a new house.
	CreateHouse(ctx context.Context, name string) (*House, error)

	// GetHouse retrieves a house by ID.
	GetHouse(ctx context.Context, id int64) (*House, error)

	// UpdateHouse renames a house.
	UpdateHouse(ctx context.Context, id int64, name string) error

	// DeleteHouse deletes a house. Assignment history keeps the house's
	// name snapshot, so past assignments remain readable.
	DeleteHouse(ctx context.Context, id int64) error

	// ListHouses lists all houses ordered by name.
	ListHouses(ctx context.Context) ([]*House, error)
}

// House represents a house entity at the port boundary.
type House struct {
	ID   int64
	Name string
}
