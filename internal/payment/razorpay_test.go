package payment

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func testClient(serverURL string) *RazorpayClient {
	return &RazorpayClient{
		keyID:     "rzp_test_key",
		keySecret: "secret",
		baseURL:   serverURL,
		client:    &http.Client{Timeout: 5 * time.Second},
	}
}

func TestCreateOrderSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/orders" || r.Method != http.MethodPost {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		user, _, ok := r.BasicAuth()
		if !ok || user != "rzp_test_key" {
			t.Error("expected basic auth with key id")
		}

		var req struct {
			Amount   int64  `json:"amount"`
			Currency string `json:"currency"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decoding request: %v", err)
		}
		if req.Amount != 37900 || req.Currency != "INR" {
			t.Errorf("unexpected payload: %+v", req)
		}

		json.NewEncoder(w).Encode(map[string]string{"id": "order_test123"})
	}))
	defer server.Close()

	id, err := testClient(server.URL).Create(context.Background(), 37900, "INR", "rcpt-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != "order_test123" {
		t.Fatalf("expected order_test123, got %q", id)
	}
}

func TestCreateOrderDecline(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]any{
			"error": map[string]string{"description": "amount exceeds limit"},
		})
	}))
	defer server.Close()

	_, err := testClient(server.URL).Create(context.Background(), 10_00_00_000_00, "INR", "rcpt-2")
	if !errors.Is(err, ErrPaymentFailed) {
		t.Fatalf("expected ErrPaymentFailed, got %v", err)
	}
}

func TestCreateOrderRejectsNonPositiveAmount(t *testing.T) {
	_, err := testClient("http://unused").Create(context.Background(), 0, "INR", "rcpt-3")
	if !errors.Is(err, ErrPaymentFailed) {
		t.Fatalf("expected ErrPaymentFailed, got %v", err)
	}
}
