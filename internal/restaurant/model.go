package restaurant

// City is one of the fixed launch cities. Every city serves the same
// demo restaurants; the selection only personalises the experience.
type City struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Subtitle string `json:"subtitle"`
	ImageURL string `json:"image_url"`
}

type Restaurant struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Tagline    string  `json:"tagline"`
	ImageURL   string  `json:"image_url"`
	Rating     float64 `json:"rating"`
	ETAMinutes int     `json:"eta_minutes"`
}
