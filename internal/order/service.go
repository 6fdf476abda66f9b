package order

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/deep4nsh/order-plus-rn-new/internal/address"
	"github.com/deep4nsh/order-plus-rn-new/internal/auth"
	"github.com/deep4nsh/order-plus-rn-new/internal/cart"
	"github.com/deep4nsh/order-plus-rn-new/internal/payment"
)

var (
	ErrEmptyCart = errors.New("cart is empty")
	ErrForbidden = errors.New("not your order")
)

// Customer is the identity an order is placed under, taken from the
// authenticated request.
type Customer struct {
	ID    string
	Email string
	Name  string
}

// Carts is the slice of the cart service an order needs: read the
// user's cart at checkout and empty it after a successful payment.
type Carts interface {
	Snapshot(userID string) cart.Snapshot
	Clear(userID string) cart.Snapshot
}

// Addresses resolves a saved delivery address, scoped to its owner.
type Addresses interface {
	Get(ctx context.Context, userID, id string) (*address.Address, error)
}

type Service struct {
	repo      Repository
	carts     Carts
	gateway   payment.Gateway
	addresses Addresses
}

func NewService(repo Repository, carts Carts, gateway payment.Gateway, addresses Addresses) *Service {
	return &Service{repo: repo, carts: carts, gateway: gateway, addresses: addresses}
}

// PlaceOrder charges the user's cart total and persists the paid
// order. The payment amount is in paise; cart prices are whole rupees.
// On any failure before persistence the cart is left untouched.
func (s *Service) PlaceOrder(ctx context.Context, cust Customer, addressID string) (*Order, error) {
	snap := s.carts.Snapshot(cust.ID)
	if len(snap.Lines) == 0 {
		return nil, ErrEmptyCart
	}

	o := &Order{
		UserID:     cust.ID,
		UserEmail:  cust.Email,
		UserName:   cust.Name,
		Items:      snap.Lines,
		TotalPrice: snap.TotalPrice,
		Status:     StatusPaid,
		DriverName: DemoDriverName,
	}

	if addressID != "" {
		addr, err := s.addresses.Get(ctx, cust.ID, addressID)
		if err != nil {
			return nil, err
		}
		o.DeliveryAddressID = addr.ID
		o.DeliveryAddressLabel = addr.Label
		o.DeliveryAddressText = addr.Text
		o.DeliveryLat = addr.Location.Lat
		o.DeliveryLng = addr.Location.Lng
	}

	receipt := fmt.Sprintf("rcpt_%s", uuid.New().String())
	paymentID, err := s.gateway.Create(ctx, snap.TotalPrice*100, "INR", receipt)
	if err != nil {
		return nil, err
	}
	o.PaymentID = paymentID

	if err := s.repo.Save(ctx, o); err != nil {
		return nil, err
	}

	s.carts.Clear(cust.ID)

	log.Info().
		Str("orderID", o.ID).
		Str("paymentID", o.PaymentID).
		Int64("totalPrice", o.TotalPrice).
		Msg("order placed")

	return o, nil
}

func (s *Service) ListByUser(ctx context.Context, userID string) ([]*Order, error) {
	return s.repo.ListByUser(ctx, userID)
}

// Get returns the order when the caller owns it or is an admin.
func (s *Service) Get(ctx context.Context, userID, role, orderID string) (*Order, error) {
	o, err := s.repo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if o.UserID != userID && role != auth.RoleAdmin {
		return nil, ErrForbidden
	}
	return o, nil
}

// AdvanceOne promotes the oldest undelivered order one status step.
// It reports whether any order was advanced.
func (s *Service) AdvanceOne(ctx context.Context) (bool, error) {
	o, err := s.repo.OldestUndelivered(ctx)
	if err != nil {
		if errors.Is(err, ErrOrderNotFound) {
			return false, nil
		}
		return false, err
	}

	next := NextStatus(o.Status)
	if next == "" {
		return false, nil
	}

	if err := s.repo.UpdateStatus(ctx, o.ID, next); err != nil {
		return false, err
	}

	log.Info().
		Str("orderID", o.ID).
		Str("from", o.Status).
		Str("to", next).
		Msg("order advanced")

	return true, nil
}
