package restaurant

import (
	"context"
	"sort"
)

type InMemoryRepository struct {
	restaurants map[string]*Restaurant
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		restaurants: make(map[string]*Restaurant),
	}
}

func (r *InMemoryRepository) List(ctx context.Context) ([]*Restaurant, error) {
	var restaurants []*Restaurant
	for _, rest := range r.restaurants {
		restaurants = append(restaurants, rest)
	}
	sort.Slice(restaurants, func(i, j int) bool {
		return restaurants[i].Name < restaurants[j].Name
	})
	return restaurants, nil
}

func (r *InMemoryRepository) Seed(ctx context.Context, restaurants []*Restaurant) error {
	for _, rest := range restaurants {
		if _, exists := r.restaurants[rest.ID]; exists {
			continue
		}
		copied := *rest
		r.restaurants[rest.ID] = &copied
	}
	return nil
}
