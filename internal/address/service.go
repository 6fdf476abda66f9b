package address

import (
	"context"
	"errors"

	"github.com/deep4nsh/order-plus-rn-new/internal/geocode"
)

type Service struct {
	repo     Repository
	geocoder geocode.Reverse
}

func NewService(repo Repository, geocoder geocode.Reverse) *Service {
	return &Service{repo: repo, geocoder: geocoder}
}

func (s *Service) List(ctx context.Context, userID string) ([]*Address, error) {
	return s.repo.ListByUser(ctx, userID)
}

func (s *Service) Get(ctx context.Context, userID, id string) (*Address, error) {
	return s.repo.GetByID(ctx, userID, id)
}

// Save stores an address the user typed in directly.
func (s *Service) Save(ctx context.Context, userID, label, text string, loc Location) (*Address, error) {
	if text == "" {
		return nil, errors.New("missing address text")
	}

	addr := &Address{
		UserID:   userID,
		Label:    label,
		Text:     text,
		Location: loc,
	}
	if err := s.repo.Save(ctx, addr); err != nil {
		return nil, err
	}
	return addr, nil
}

// SaveFromLocation reverse-geocodes a picked map location and stores
// the resulting display address.
func (s *Service) SaveFromLocation(ctx context.Context, userID, label string, lat, lng float64) (*Address, error) {
	if s.geocoder == nil {
		return nil, errors.New("geocoding not configured")
	}

	text, err := s.geocoder.ReverseGeocode(ctx, lat, lng)
	if err != nil {
		return nil, err
	}

	return s.Save(ctx, userID, label, text, Location{Lat: lat, Lng: lng})
}
