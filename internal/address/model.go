package address

import "time"

type Location struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Address is a saved delivery address belonging to one user.
type Address struct {
	ID        string    `json:"id"`
	UserID    string    `json:"-"`
	Label     string    `json:"label"`
	Text      string    `json:"address"`
	Location  Location  `json:"location"`
	CreatedAt time.Time `json:"created_at,omitempty"`
}
