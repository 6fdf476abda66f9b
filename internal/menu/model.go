package menu

import "time"

// Item is a single orderable dish on the shared demo menu.
// Price is in whole rupees.
type Item struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       int64     `json:"price"`
	Category    string    `json:"category"`
	ImageURL    string    `json:"image_url"`
	IsAvailable bool      `json:"is_available"`
	CreatedAt   time.Time `json:"created_at,omitempty"`
}

// Categories that trigger customization in the pricing flow.
// Any other category is served as-is.
const (
	CategoryPizza    = "Pizza"
	CategoryBurger   = "Burger"
	CategorySides    = "Sides"
	CategoryBeverage = "Beverage"
)
