package menu

import (
	"context"
	"errors"
	"mime/multipart"
	"testing"
)

type fakeStorage struct {
	lastKey string
	url     string
	err     error
}

func (f *fakeStorage) Upload(ctx context.Context, key string, file multipart.File) (string, error) {
	f.lastKey = key
	if f.err != nil {
		return "", f.err
	}
	return f.url, nil
}

func seededService(t *testing.T, storage Storage) *Service {
	t.Helper()
	service := NewService(NewInMemoryRepository(), storage)
	if err := service.SeedDefaults(context.Background()); err != nil {
		t.Fatalf("seeding menu: %v", err)
	}
	return service
}

func TestSeedDefaults(t *testing.T) {
	service := seededService(t, nil)

	items, err := service.ListMenu(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != len(DefaultItems()) {
		t.Fatalf("expected %d items, got %d", len(DefaultItems()), len(items))
	}

	// Listing keeps seed order.
	if items[0].Name != "Margherita Pizza" {
		t.Fatalf("expected Margherita Pizza first, got %q", items[0].Name)
	}

	byName := make(map[string]*Item, len(items))
	for _, item := range items {
		byName[item.Name] = item
	}
	if pizza := byName["Margherita Pizza"]; pizza == nil || pizza.Price != 299 || pizza.Category != CategoryPizza {
		t.Fatalf("unexpected pizza: %+v", pizza)
	}
	if fries := byName["French Fries"]; fries == nil || fries.Price != 99 || fries.Category != CategorySides {
		t.Fatalf("unexpected fries: %+v", fries)
	}
}

func TestSeedDefaultsIdempotent(t *testing.T) {
	service := seededService(t, nil)

	if err := service.SeedDefaults(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	items, _ := service.ListMenu(context.Background())
	if len(items) != len(DefaultItems()) {
		t.Fatalf("reseeding must not duplicate items, got %d", len(items))
	}
}

func TestGetItem(t *testing.T) {
	service := seededService(t, nil)

	items, _ := service.ListMenu(context.Background())
	got, err := service.GetItem(context.Background(), items[0].ID)
	if err != nil || got.Name != items[0].Name {
		t.Fatalf("expected %q, got %+v (%v)", items[0].Name, got, err)
	}

	if _, err := service.GetItem(context.Background(), "missing"); !errors.Is(err, ErrItemNotFound) {
		t.Fatalf("expected ErrItemNotFound, got %v", err)
	}
	if _, err := service.GetItem(context.Background(), ""); err == nil {
		t.Fatal("expected empty id to be rejected")
	}
}

func TestUploadItemImage(t *testing.T) {
	storage := &fakeStorage{url: "https://cdn.example.com/menu/pizza.jpg"}
	service := seededService(t, storage)

	items, _ := service.ListMenu(context.Background())
	itemID := items[0].ID

	url, err := service.UploadItemImage(context.Background(), itemID, nil, "pizza.JPG")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if url != storage.url {
		t.Fatalf("expected storage url, got %q", url)
	}

	got, _ := service.GetItem(context.Background(), itemID)
	if got.ImageURL != storage.url {
		t.Fatalf("image url not persisted, got %q", got.ImageURL)
	}

	if _, err := service.UploadItemImage(context.Background(), itemID, nil, "noext"); err == nil {
		t.Fatal("expected missing extension to be rejected")
	}
	if _, err := service.UploadItemImage(context.Background(), "missing", nil, "a.png"); !errors.Is(err, ErrItemNotFound) {
		t.Fatalf("expected ErrItemNotFound, got %v", err)
	}
}

func TestUploadItemImageWithoutStorage(t *testing.T) {
	service := seededService(t, nil)
	items, _ := service.ListMenu(context.Background())

	if _, err := service.UploadItemImage(context.Background(), items[0].ID, nil, "a.png"); err == nil {
		t.Fatal("expected error when storage is not configured")
	}
}
