package restaurant

import (
	"context"
	"errors"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) ListCities() []City {
	return Cities()
}

// ListByCity returns the restaurants for a city. The demo set is the
// same everywhere, but an unknown city is still rejected so the client
// can't skip the selection step.
func (s *Service) ListByCity(ctx context.Context, cityID string) ([]*Restaurant, error) {
	if cityID == "" {
		return nil, errors.New("missing city")
	}

	known := false
	for _, city := range Cities() {
		if city.ID == cityID {
			known = true
			break
		}
	}
	if !known {
		return nil, errors.New("unknown city")
	}

	return s.repo.List(ctx)
}

func (s *Service) SeedDefaults(ctx context.Context) error {
	return s.repo.Seed(ctx, DefaultRestaurants())
}
