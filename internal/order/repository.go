package order

import (
	"context"
	"errors"
)

var ErrOrderNotFound = errors.New("order not found")

// Repository defines the data-access contract.
// Service depends ONLY on this interface.
type Repository interface {
	Save(ctx context.Context, o *Order) error
	ListByUser(ctx context.Context, userID string) ([]*Order, error)
	GetByID(ctx context.Context, id string) (*Order, error)

	// OldestUndelivered returns the oldest order whose status is not
	// yet DELIVERED, or ErrOrderNotFound when every order has arrived.
	OldestUndelivered(ctx context.Context) (*Order, error)
	UpdateStatus(ctx context.Context, id, status string) error
}
