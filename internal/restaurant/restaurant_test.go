package restaurant

import (
	"context"
	"testing"
)

func seededService(t *testing.T) *Service {
	t.Helper()
	service := NewService(NewInMemoryRepository())
	if err := service.SeedDefaults(context.Background()); err != nil {
		t.Fatalf("seeding restaurants: %v", err)
	}
	return service
}

func TestListByCityReturnsDemoSet(t *testing.T) {
	service := seededService(t)

	restaurants, err := service.ListByCity(context.Background(), "mumbai")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(restaurants) != len(DefaultRestaurants()) {
		t.Fatalf("expected %d restaurants, got %d", len(DefaultRestaurants()), len(restaurants))
	}
}

func TestEveryCityShowsTheSameRestaurants(t *testing.T) {
	service := seededService(t)

	var prev []*Restaurant
	for _, city := range Cities() {
		restaurants, err := service.ListByCity(context.Background(), city.ID)
		if err != nil {
			t.Fatalf("city %s: %v", city.ID, err)
		}
		if prev != nil && len(restaurants) != len(prev) {
			t.Fatalf("city %s shows a different restaurant set", city.ID)
		}
		prev = restaurants
	}
}

func TestListByCityRejectsUnknownCity(t *testing.T) {
	service := seededService(t)

	if _, err := service.ListByCity(context.Background(), "atlantis"); err == nil {
		t.Fatal("expected unknown city to be rejected")
	}
	if _, err := service.ListByCity(context.Background(), ""); err == nil {
		t.Fatal("expected missing city to be rejected")
	}
}

func TestSeedIsIdempotent(t *testing.T) {
	service := seededService(t)
	if err := service.SeedDefaults(context.Background()); err != nil {
		t.Fatalf("second seed: %v", err)
	}

	restaurants, err := service.ListByCity(context.Background(), "delhi")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(restaurants) != len(DefaultRestaurants()) {
		t.Fatalf("re-seeding must not duplicate rows, got %d", len(restaurants))
	}
}
