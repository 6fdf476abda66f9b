package geocode

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

var ErrNoAddressFound = errors.New("no address found for location")

// Reverse maps coordinates to a display address.
type Reverse interface {
	ReverseGeocode(ctx context.Context, lat, lng float64) (string, error)
}

// GoogleClient resolves coordinates through the Google Maps Geocoding
// API.
type GoogleClient struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

func NewGoogleClient() *GoogleClient {
	return &GoogleClient{
		apiKey:  os.Getenv("GOOGLE_MAPS_GEOCODE_KEY"),
		baseURL: "https://maps.googleapis.com/maps/api/geocode/json",
		client:  &http.Client{Timeout: 15 * time.Second},
	}
}

func (g *GoogleClient) ReverseGeocode(ctx context.Context, lat, lng float64) (string, error) {
	if g.apiKey == "" {
		return "", errors.New("missing GOOGLE_MAPS_GEOCODE_KEY")
	}

	url := fmt.Sprintf("%s?latlng=%f,%f&key=%s", g.baseURL, lat, lng, g.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("geocode api error: %s", string(raw))
	}

	var result struct {
		Status  string `json:"status"`
		Results []struct {
			FormattedAddress string `json:"formatted_address"`
		} `json:"results"`
	}
	if err := json.Unmarshal(raw, &result); err != nil {
		return "", err
	}

	if result.Status != "OK" || len(result.Results) == 0 {
		return "", ErrNoAddressFound
	}

	return result.Results[0].FormattedAddress, nil
}
