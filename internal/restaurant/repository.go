package restaurant

import "context"

type Repository interface {
	List(ctx context.Context) ([]*Restaurant, error)

	// Seed inserts missing demo restaurants; idempotent by id.
	Seed(ctx context.Context, restaurants []*Restaurant) error
}
