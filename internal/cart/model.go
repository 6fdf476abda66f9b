package cart

import "github.com/deep4nsh/order-plus-rn-new/internal/pricing"

// Line is one distinct orderable variant in the cart: a menu item plus
// a specific customization, with its own quantity. Name, description
// and prices are snapshotted at add time; later menu edits do not
// affect lines already in the cart.
type Line struct {
	LineKey     string          `json:"line_key"`
	MenuItemID  string          `json:"menu_item_id,omitempty"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	ImageURL    string          `json:"image_url,omitempty"`
	BasePrice   int64           `json:"base_price"`
	UnitPrice   int64           `json:"unit_price"`
	Addons      []pricing.Addon `json:"addons"`
	Quantity    int             `json:"quantity"`
}

// Snapshot is a consistent read of the whole cart.
type Snapshot struct {
	Lines      []Line `json:"lines"`
	TotalPrice int64  `json:"total_price"`
	TotalItems int    `json:"total_items"`
}
