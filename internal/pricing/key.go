package pricing

import (
	"fmt"
	"strings"

	"github.com/deep4nsh/order-plus-rn-new/internal/menu"
)

// LineKey derives the cart line identity for an item plus selection.
// Equal item identity and equal selection always produce the same key;
// any selection difference, including zero-cost ones, produces a
// different key, because each is a distinct orderable variant. Items
// without a customization step use the bare item identity.
func LineKey(item *menu.Item, sel Selection) string {
	identity := item.ID
	if identity == "" {
		identity = item.Name
	}

	segments := selectionSegments(item, sel)
	if len(segments) == 0 {
		return identity
	}
	return identity + "-" + strings.Join(segments, "-")
}

// selectionSegments normalizes the selection into ordered field:value
// pairs for the fields the category actually uses. Keeping this in one
// place is what makes the key ordering-stable.
func selectionSegments(item *menu.Item, sel Selection) []string {
	switch {
	case item.Category == menu.CategoryPizza:
		return []string{
			fmt.Sprintf("crust:%s", sel.Crust),
			fmt.Sprintf("cheese:%s", sel.Cheese),
		}
	case item.Category == menu.CategoryBurger:
		patty := "no"
		if sel.ExtraPatty {
			patty = "yes"
		}
		return []string{fmt.Sprintf("extraPatty:%s", patty)}
	case item.Category == menu.CategorySides && isFries(item):
		return []string{fmt.Sprintf("friesSize:%s", sel.PortionSize)}
	case item.Category == menu.CategoryBeverage:
		return []string{fmt.Sprintf("drinkSize:%s", sel.DrinkSize)}
	default:
		return nil
	}
}
