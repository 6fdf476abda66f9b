package menu

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

type Storage interface {
	Upload(ctx context.Context, key string, file multipart.File) (string, error)
}

type Service struct {
	repo    Repository
	storage Storage
}

func NewService(repo Repository, storage Storage) *Service {
	return &Service{repo: repo, storage: storage}
}

func (s *Service) ListMenu(ctx context.Context) ([]*Item, error) {
	return s.repo.ListAvailable(ctx)
}

func (s *Service) GetItem(ctx context.Context, id string) (*Item, error) {
	if id == "" {
		return nil, errors.New("missing menu item id")
	}
	return s.repo.GetByID(ctx, id)
}

// SeedDefaults makes sure the demo menu exists. Safe to call on every
// startup; items already present (by name) are left untouched.
func (s *Service) SeedDefaults(ctx context.Context) error {
	return s.repo.Seed(ctx, DefaultItems())
}

// --------------------------------------------------
// ADMIN: REPLACE ITEM IMAGE
// --------------------------------------------------
func (s *Service) UploadItemImage(
	ctx context.Context,
	itemID string,
	file multipart.File,
	filename string,
) (string, error) {

	if s.storage == nil {
		return "", errors.New("image storage not configured")
	}

	if _, err := s.repo.GetByID(ctx, itemID); err != nil {
		return "", err
	}

	ext := strings.ToLower(filepath.Ext(filename))
	if ext == "" {
		return "", errors.New("invalid file")
	}

	key := fmt.Sprintf(
		"menu-items/%s/%s%s",
		itemID,
		uuid.New().String(),
		ext,
	)

	url, err := s.storage.Upload(ctx, key, file)
	if err != nil {
		return "", err
	}

	if err := s.repo.SetImageURL(ctx, itemID, url); err != nil {
		return "", err
	}

	return url, nil
}
