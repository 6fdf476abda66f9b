package pricing

import "errors"

// ErrInvalidSelection is returned when a selection value falls outside
// the enumerated options for the item's category.
var ErrInvalidSelection = errors.New("invalid customization selection")

// Option values per category. The UI only ever offers these; anything
// else is rejected by Resolve.
const (
	CrustClassic     = "classic"
	CrustThin        = "thin"
	CrustCheeseBurst = "cheese_burst"

	CheeseRegular = "regular"
	CheeseExtra   = "extra"

	SizeRegular = "regular"
	SizeLarge   = "large"
)

// Selection is what the user picked in the customizer before adding an
// item to the cart. Only the fields relevant to the item's category are
// consulted; the rest are ignored.
type Selection struct {
	Crust       string `json:"crust"`
	Cheese      string `json:"cheese"`
	ExtraPatty  bool   `json:"extra_patty"`
	PortionSize string `json:"portion_size"`
	DrinkSize   string `json:"drink_size"`
}

// Addon is a single priced customization attached to a cart line.
// PriceDiff is in whole rupees, never negative.
type Addon struct {
	Type      string `json:"type"`
	Label     string `json:"label"`
	PriceDiff int64  `json:"price_diff"`
}

// Resolution is the outcome of pricing an item with a selection.
type Resolution struct {
	Addons     []Addon `json:"addons"`
	ExtraTotal int64   `json:"extra_total"`
	UnitPrice  int64   `json:"unit_price"`
}
