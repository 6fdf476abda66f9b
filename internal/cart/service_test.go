package cart

import (
	"context"
	"errors"
	"testing"

	"github.com/deep4nsh/order-plus-rn-new/internal/menu"
	"github.com/deep4nsh/order-plus-rn-new/internal/pricing"
)

func seededMenu(t *testing.T) *menu.Service {
	t.Helper()
	repo := menu.NewInMemoryRepository()
	service := menu.NewService(repo, nil)
	if err := service.SeedDefaults(context.Background()); err != nil {
		t.Fatalf("seeding menu: %v", err)
	}
	return service
}

func findItem(t *testing.T, svc *menu.Service, name string) *menu.Item {
	t.Helper()
	items, err := svc.ListMenu(context.Background())
	if err != nil {
		t.Fatalf("listing menu: %v", err)
	}
	for _, item := range items {
		if item.Name == name {
			return item
		}
	}
	t.Fatalf("item %q not seeded", name)
	return nil
}

func TestAddItemResolvesAndMerges(t *testing.T) {
	menuSvc := seededMenu(t)
	service := NewService(NewStore(), menuSvc)
	pizza := findItem(t, menuSvc, "Margherita Pizza")

	sel := pricing.Selection{Crust: pricing.CrustThin, Cheese: pricing.CheeseExtra}

	snap, err := service.AddItem(context.Background(), "user-1", pizza.ID, sel)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	snap, err = service.AddItem(context.Background(), "user-1", pizza.ID, sel)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(snap.Lines) != 1 {
		t.Fatalf("expected one merged line, got %d", len(snap.Lines))
	}
	line := snap.Lines[0]
	if line.Quantity != 2 || line.UnitPrice != 379 || line.BasePrice != 299 {
		t.Fatalf("unexpected line: %+v", line)
	}
	if snap.TotalPrice != 758 || snap.TotalItems != 2 {
		t.Fatalf("unexpected totals: %+v", snap)
	}
}

func TestAddItemDefaultsEmptySelection(t *testing.T) {
	menuSvc := seededMenu(t)
	service := NewService(NewStore(), menuSvc)
	pizza := findItem(t, menuSvc, "Margherita Pizza")

	snap, err := service.AddItem(context.Background(), "user-1", pizza.ID, pricing.Selection{})
	if err != nil {
		t.Fatalf("empty selection should fall back to defaults: %v", err)
	}

	line := snap.Lines[0]
	if line.UnitPrice != 299 {
		t.Fatalf("defaults are zero-cost, got unit price %d", line.UnitPrice)
	}
	if len(line.Addons) != 2 || line.Addons[0].Label != "Classic Hand Tossed" {
		t.Fatalf("expected labeled default addons, got %+v", line.Addons)
	}
}

func TestAddItemDistinctSelectionsStayApart(t *testing.T) {
	menuSvc := seededMenu(t)
	service := NewService(NewStore(), menuSvc)
	friesItem := findItem(t, menuSvc, "French Fries")

	_, err := service.AddItem(context.Background(), "user-1", friesItem.ID,
		pricing.Selection{PortionSize: pricing.SizeLarge})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	snap, err := service.AddItem(context.Background(), "user-1", friesItem.ID,
		pricing.Selection{PortionSize: pricing.SizeRegular})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(snap.Lines) != 2 {
		t.Fatalf("regular and large fries are distinct variants, got %d lines", len(snap.Lines))
	}
	if snap.Lines[0].UnitPrice != 129 || snap.Lines[1].UnitPrice != 99 {
		t.Fatalf("unexpected prices: %+v", snap.Lines)
	}
}

func TestAddItemRejectsInvalidSelection(t *testing.T) {
	menuSvc := seededMenu(t)
	service := NewService(NewStore(), menuSvc)
	pizza := findItem(t, menuSvc, "Margherita Pizza")

	_, err := service.AddItem(context.Background(), "user-1", pizza.ID,
		pricing.Selection{Crust: "stuffed"})
	if !errors.Is(err, pricing.ErrInvalidSelection) {
		t.Fatalf("expected ErrInvalidSelection, got %v", err)
	}

	// Failed add must not leave a line behind.
	if snap := service.Snapshot("user-1"); len(snap.Lines) != 0 {
		t.Fatalf("cart should stay empty after rejected add: %+v", snap)
	}
}

func TestAddItemUnknownItem(t *testing.T) {
	service := NewService(NewStore(), seededMenu(t))

	_, err := service.AddItem(context.Background(), "user-1", "nope", pricing.Selection{})
	if !errors.Is(err, menu.ErrItemNotFound) {
		t.Fatalf("expected ErrItemNotFound, got %v", err)
	}
}

func TestCartsAreIsolatedPerUser(t *testing.T) {
	menuSvc := seededMenu(t)
	service := NewService(NewStore(), menuSvc)
	coffee := findItem(t, menuSvc, "Cold Coffee")

	if _, err := service.AddItem(context.Background(), "user-1", coffee.ID, pricing.Selection{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if snap := service.Snapshot("user-2"); snap.TotalItems != 0 {
		t.Fatalf("user-2 cart should be empty, got %+v", snap)
	}
}

func TestClearThenSnapshotEmpty(t *testing.T) {
	menuSvc := seededMenu(t)
	service := NewService(NewStore(), menuSvc)
	brownie := findItem(t, menuSvc, "Chocolate Brownie")

	if _, err := service.AddItem(context.Background(), "user-1", brownie.ID, pricing.Selection{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	snap := service.Clear("user-1")
	if len(snap.Lines) != 0 || snap.TotalPrice != 0 || snap.TotalItems != 0 {
		t.Fatalf("expected empty snapshot after clear, got %+v", snap)
	}
}
