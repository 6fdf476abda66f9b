package geocode

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func testGoogleClient(serverURL string) *GoogleClient {
	return &GoogleClient{
		apiKey:  "test-key",
		baseURL: serverURL,
		client:  &http.Client{Timeout: 5 * time.Second},
	}
}

func TestReverseGeocode(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("key") != "test-key" {
			t.Error("expected api key in query")
		}
		json.NewEncoder(w).Encode(map[string]any{
			"status": "OK",
			"results": []map[string]string{
				{"formatted_address": "MG Road, Bengaluru, Karnataka 560001, India"},
			},
		})
	}))
	defer server.Close()

	addr, err := testGoogleClient(server.URL).ReverseGeocode(context.Background(), 12.9716, 77.5946)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if addr != "MG Road, Bengaluru, Karnataka 560001, India" {
		t.Fatalf("unexpected address: %q", addr)
	}
}

func TestReverseGeocodeNoResults(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"status": "ZERO_RESULTS", "results": []any{}})
	}))
	defer server.Close()

	_, err := testGoogleClient(server.URL).ReverseGeocode(context.Background(), 0, 0)
	if !errors.Is(err, ErrNoAddressFound) {
		t.Fatalf("expected ErrNoAddressFound, got %v", err)
	}
}
