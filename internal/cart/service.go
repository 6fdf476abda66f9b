package cart

import (
	"context"
	"errors"

	"github.com/deep4nsh/order-plus-rn-new/internal/core"
	"github.com/deep4nsh/order-plus-rn-new/internal/menu"
	"github.com/deep4nsh/order-plus-rn-new/internal/pricing"
)

var ErrItemUnavailable = errors.New("menu item is not available")

// Service composes the menu lookup, the pricing resolver and the cart
// engine: the "add to cart" a screen actually calls.
type Service struct {
	store *Store
	menu  core.MenuReader
}

func NewService(store *Store, menuReader core.MenuReader) *Service {
	return &Service{store: store, menu: menuReader}
}

// AddItem prices the selection, derives the line key and merges the
// resulting line into the user's cart.
func (s *Service) AddItem(
	ctx context.Context,
	userID string,
	menuItemID string,
	sel pricing.Selection,
) (Snapshot, error) {

	item, err := s.menu.GetItem(ctx, menuItemID)
	if err != nil {
		return Snapshot{}, err
	}
	if !item.IsAvailable {
		return Snapshot{}, ErrItemUnavailable
	}

	sel = withDefaults(item, sel)

	res, err := pricing.Resolve(item, sel)
	if err != nil {
		return Snapshot{}, err
	}

	c := s.store.ForUser(userID)
	c.Add(Line{
		LineKey:     pricing.LineKey(item, sel),
		MenuItemID:  item.ID,
		Name:        item.Name,
		Description: item.Description,
		ImageURL:    item.ImageURL,
		BasePrice:   item.Price,
		UnitPrice:   res.UnitPrice,
		Addons:      res.Addons,
	})

	return c.Snapshot(), nil
}

func (s *Service) RemoveItem(userID, lineKey string) Snapshot {
	c := s.store.ForUser(userID)
	c.Remove(lineKey)
	return c.Snapshot()
}

func (s *Service) AdjustQuantity(userID, lineKey string, delta int) Snapshot {
	c := s.store.ForUser(userID)
	c.AdjustQuantity(lineKey, delta)
	return c.Snapshot()
}

// Clear empties the cart and releases its slot in the store; the next
// request recreates an empty one on demand.
func (s *Service) Clear(userID string) Snapshot {
	s.store.Drop(userID)
	return Snapshot{Lines: []Line{}}
}

func (s *Service) Snapshot(userID string) Snapshot {
	return s.store.ForUser(userID).Snapshot()
}

// withDefaults fills unset option fields with the customizer's initial
// state, the same defaults the item sheet opens with.
func withDefaults(item *menu.Item, sel pricing.Selection) pricing.Selection {
	if !pricing.Customizable(item) {
		return sel
	}
	if sel.Crust == "" {
		sel.Crust = pricing.CrustClassic
	}
	if sel.Cheese == "" {
		sel.Cheese = pricing.CheeseRegular
	}
	if sel.PortionSize == "" {
		sel.PortionSize = pricing.SizeRegular
	}
	if sel.DrinkSize == "" {
		sel.DrinkSize = pricing.SizeRegular
	}
	return sel
}
