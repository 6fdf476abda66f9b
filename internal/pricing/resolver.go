package pricing

import (
	"fmt"
	"strings"

	"github.com/deep4nsh/order-plus-rn-new/internal/menu"
)

// Addon price deltas in whole rupees.
const (
	thinCrustExtra   = 40
	cheeseBurstExtra = 60
	extraCheeseExtra = 40
	extraPattyExtra  = 50
	largeFriesExtra  = 30
	largeDrinkExtra  = 25
)

// Customizable reports whether the item gets a customization step at
// all. Sides only qualify when the name mentions fries.
func Customizable(item *menu.Item) bool {
	switch item.Category {
	case menu.CategoryPizza, menu.CategoryBurger, menu.CategoryBeverage:
		return true
	case menu.CategorySides:
		return isFries(item)
	default:
		return false
	}
}

func isFries(item *menu.Item) bool {
	return strings.Contains(strings.ToLower(item.Name), "fries")
}

// Resolve prices a selection against a menu item. Pure: no state, no
// I/O. The returned addon order is the category's display order (crust
// before cheese). Zero-cost choices on pizza, fries and drinks still
// get a labeled addon; a burger without the extra patty gets none.
func Resolve(item *menu.Item, sel Selection) (*Resolution, error) {
	var addons []Addon

	switch {
	case item.Category == menu.CategoryPizza:
		crust, err := crustAddon(sel.Crust)
		if err != nil {
			return nil, err
		}
		cheese, err := cheeseAddon(sel.Cheese)
		if err != nil {
			return nil, err
		}
		addons = []Addon{crust, cheese}

	case item.Category == menu.CategoryBurger:
		if sel.ExtraPatty {
			addons = []Addon{{
				Type:      "Burger Extra",
				Label:     priced("Extra Patty", extraPattyExtra),
				PriceDiff: extraPattyExtra,
			}}
		}

	case item.Category == menu.CategorySides && isFries(item):
		addon, err := sizeAddon("Portion", "Fries", sel.PortionSize, largeFriesExtra)
		if err != nil {
			return nil, err
		}
		addons = []Addon{addon}

	case item.Category == menu.CategoryBeverage:
		addon, err := sizeAddon("Drink Size", "Drink", sel.DrinkSize, largeDrinkExtra)
		if err != nil {
			return nil, err
		}
		addons = []Addon{addon}
	}

	var extra int64
	for _, a := range addons {
		extra += a.PriceDiff
	}

	return &Resolution{
		Addons:     addons,
		ExtraTotal: extra,
		UnitPrice:  item.Price + extra,
	}, nil
}

func crustAddon(crust string) (Addon, error) {
	switch crust {
	case CrustCheeseBurst:
		return Addon{Type: "Crust", Label: priced("Cheese Burst Crust", cheeseBurstExtra), PriceDiff: cheeseBurstExtra}, nil
	case CrustThin:
		return Addon{Type: "Crust", Label: priced("Thin Crust", thinCrustExtra), PriceDiff: thinCrustExtra}, nil
	case CrustClassic:
		return Addon{Type: "Crust", Label: "Classic Hand Tossed"}, nil
	default:
		return Addon{}, fmt.Errorf("%w: crust %q", ErrInvalidSelection, crust)
	}
}

func cheeseAddon(cheese string) (Addon, error) {
	switch cheese {
	case CheeseExtra:
		return Addon{Type: "Cheese", Label: priced("Extra Cheese", extraCheeseExtra), PriceDiff: extraCheeseExtra}, nil
	case CheeseRegular:
		return Addon{Type: "Cheese", Label: "Regular Cheese"}, nil
	default:
		return Addon{}, fmt.Errorf("%w: cheese %q", ErrInvalidSelection, cheese)
	}
}

func sizeAddon(addonType, noun, size string, largeExtra int64) (Addon, error) {
	switch size {
	case SizeLarge:
		return Addon{Type: addonType, Label: priced("Large "+noun, largeExtra), PriceDiff: largeExtra}, nil
	case SizeRegular:
		return Addon{Type: addonType, Label: "Regular " + noun}, nil
	default:
		return Addon{}, fmt.Errorf("%w: size %q", ErrInvalidSelection, size)
	}
}

func priced(label string, extra int64) string {
	return fmt.Sprintf("%s (+₹%d)", label, extra)
}
