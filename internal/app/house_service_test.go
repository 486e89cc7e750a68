package app

import (
	"context"
	"errors"
	"testing"

	"github.com/example/taskmeister/internal/ports/primary"
)

func TestCreateHouse(t *testing.T) {
	repo := newMockHouseRepository()
	service := NewHouseService(repo)

	house, err := service.CreateHouse(context.Background(), " Northgate ")
	if err != nil {
		t.Fatalf("CreateHouse failed: %v", err)
	}

	if house.Name != "Northgate" {
		t.Errorf("expected trimmed name Northgate, got %q", house.Name)
	}
	if len(repo.houses) != 1 {
		t.Errorf("expected 1 stored house, got %d", len(repo.houses))
	}
}

func TestCreateHouse_RequiresName(t *testing.T) {
	repo := newMockHouseRepository()
	service := NewHouseService(repo)

	_, err := service.CreateHouse(context.Background(), "   ")
	var validationErr *primary.ValidationError
	if !errors.As(err, &validationErr) {
		t.Errorf("expected ValidationError, got %v", err)
	}
	if len(repo.houses) != 0 {
		t.Error("rejected request must not touch storage")
	}
}

func TestUpdateHouse(t *testing.T) {
	repo := newMockHouseRepository()
	id := repo.add("Northgate")
	service := NewHouseService(repo)

	if err := service.UpdateHouse(context.Background(), id, "Northgate II"); err != nil {
		t.Fatalf("UpdateHouse failed: %v", err)
	}
	if repo.houses[0].Name != "Northgate II" {
		t.Errorf("expected renamed house, got %s", repo.houses[0].Name)
	}
}

func TestUpdateHouse_RequiresName(t *testing.T) {
	repo := newMockHouseRepository()
	id := repo.add("Northgate")
	service := NewHouseService(repo)

	err := service.UpdateHouse(context.Background(), id, "")
	var validationErr *primary.ValidationError
	if !errors.As(err, &validationErr) {
		t.Errorf("expected ValidationError, got %v", err)
	}
}

func TestDeleteHouse(t *testing.T) {
	repo := newMockHouseRepository()
	id := repo.add("Northgate")
	service := NewHouseService(repo)

	if err := service.DeleteHouse(context.Background(), id); err != nil {
		t.Fatalf("DeleteHouse failed: %v", err)
	}
	if len(repo.houses) != 0 {
		t.Error("expected house removed")
	}
}

func TestListHouses(t *testing.T) {
	repo := newMockHouseRepository()
	repo.add("Aspen Court")
	repo.add("Northgate")
	service := NewHouseService(repo)

	houses, err := service.ListHouses(context.Background())
	if err != nil {
		t.Fatalf("ListHouses failed: %v", err)
	}
	if len(houses) != 2 {
		t.Fatalf("expected 2 houses, got %d", len(houses))
	}
	if houses[0].Name != "Aspen Court" {
		t.Errorf("expected repository ordering preserved, got %s first", houses[0].Name)
	}
}
