package order

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

type InMemoryRepository struct {
	mu     sync.Mutex
	orders []*Order
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{}
}

func (r *InMemoryRepository) Save(ctx context.Context, o *Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if o.ID == "" {
		o.ID = uuid.New().String()
	}
	now := time.Now()
	o.CreatedAt = now
	o.UpdatedAt = now
	r.orders = append(r.orders, o)
	return nil
}

func (r *InMemoryRepository) ListByUser(ctx context.Context, userID string) ([]*Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	// Newest first, matching the Postgres ordering.
	var out []*Order
	for i := len(r.orders) - 1; i >= 0; i-- {
		if r.orders[i].UserID == userID {
			out = append(out, r.orders[i])
		}
	}
	return out, nil
}

func (r *InMemoryRepository) GetByID(ctx context.Context, id string) (*Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, o := range r.orders {
		if o.ID == id {
			return o, nil
		}
	}
	return nil, ErrOrderNotFound
}

func (r *InMemoryRepository) OldestUndelivered(ctx context.Context) (*Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, o := range r.orders {
		if o.Status != StatusDelivered {
			return o, nil
		}
	}
	return nil, ErrOrderNotFound
}

func (r *InMemoryRepository) UpdateStatus(ctx context.Context, id, status string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, o := range r.orders {
		if o.ID == id {
			o.Status = status
			o.UpdatedAt = time.Now()
			return nil
		}
	}
	return ErrOrderNotFound
}
