package menu

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
)

type InMemoryRepository struct {
	items map[string]*Item
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		items: make(map[string]*Item),
	}
}

func (r *InMemoryRepository) ListAvailable(ctx context.Context) ([]*Item, error) {
	var items []*Item
	for _, item := range r.items {
		if item.IsAvailable {
			items = append(items, item)
		}
	}
	sort.Slice(items, func(i, j int) bool {
		if !items[i].CreatedAt.Equal(items[j].CreatedAt) {
			return items[i].CreatedAt.Before(items[j].CreatedAt)
		}
		return items[i].Name < items[j].Name
	})
	return items, nil
}

func (r *InMemoryRepository) GetByID(ctx context.Context, id string) (*Item, error) {
	item, ok := r.items[id]
	if !ok {
		return nil, ErrItemNotFound
	}
	return item, nil
}

func (r *InMemoryRepository) Seed(ctx context.Context, items []*Item) error {
	existing := make(map[string]bool, len(r.items))
	for _, item := range r.items {
		existing[item.Name] = true
	}

	now := time.Now()
	for i, item := range items {
		if existing[item.Name] {
			continue
		}
		copied := *item
		if copied.ID == "" {
			copied.ID = uuid.New().String()
		}
		// Stagger timestamps so listing keeps seed order.
		copied.CreatedAt = now.Add(time.Duration(i) * time.Millisecond)
		r.items[copied.ID] = &copied
	}
	return nil
}

func (r *InMemoryRepository) SetImageURL(ctx context.Context, id string, imageURL string) error {
	item, ok := r.items[id]
	if !ok {
		return ErrItemNotFound
	}
	item.ImageURL = imageURL
	return nil
}
