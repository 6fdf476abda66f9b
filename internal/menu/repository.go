package menu

import (
	"context"
	"errors"
)

var ErrItemNotFound = errors.New("menu item not found")

type Repository interface {
	ListAvailable(ctx context.Context) ([]*Item, error)
	GetByID(ctx context.Context, id string) (*Item, error)

	// Seed inserts any of the given items whose name is not yet
	// present. Idempotent across restarts.
	Seed(ctx context.Context, items []*Item) error

	SetImageURL(ctx context.Context, id string, imageURL string) error
}
