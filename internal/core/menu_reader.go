package core

import (
	"context"

	"github.com/deep4nsh/order-plus-rn-new/internal/menu"
)

// MenuReader is the narrow read surface the cart flow needs from the
// menu module.
type MenuReader interface {
	GetItem(ctx context.Context, id string) (*menu.Item, error)
}
