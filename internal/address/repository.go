package address

import (
	"context"
	"errors"
)

var ErrAddressNotFound = errors.New("address not found")

type Repository interface {
	Save(ctx context.Context, addr *Address) error
	ListByUser(ctx context.Context, userID string) ([]*Address, error)
	GetByID(ctx context.Context, userID, id string) (*Address, error)
}
