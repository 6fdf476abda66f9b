package address

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type InMemoryRepository struct {
	byUser map[string][]*Address
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		byUser: make(map[string][]*Address),
	}
}

func (r *InMemoryRepository) Save(ctx context.Context, addr *Address) error {
	if addr.ID == "" {
		addr.ID = uuid.New().String()
	}
	addr.CreatedAt = time.Now()
	r.byUser[addr.UserID] = append(r.byUser[addr.UserID], addr)
	return nil
}

func (r *InMemoryRepository) ListByUser(ctx context.Context, userID string) ([]*Address, error) {
	return r.byUser[userID], nil
}

func (r *InMemoryRepository) GetByID(ctx context.Context, userID, id string) (*Address, error) {
	for _, addr := range r.byUser[userID] {
		if addr.ID == id {
			return addr, nil
		}
	}
	return nil, ErrAddressNotFound
}
