package router

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/deep4nsh/order-plus-rn-new/internal/address"
	"github.com/deep4nsh/order-plus-rn-new/internal/auth"
	"github.com/deep4nsh/order-plus-rn-new/internal/cart"
	"github.com/deep4nsh/order-plus-rn-new/internal/menu"
	"github.com/deep4nsh/order-plus-rn-new/internal/order"
	"github.com/deep4nsh/order-plus-rn-new/internal/restaurant"
)

type stubGateway struct{}

func (stubGateway) Create(ctx context.Context, amountPaise int64, currency, receipt string) (string, error) {
	return "pay_stub", nil
}

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	t.Setenv("JWT_SECRET", "router-test-secret")

	menuSvc := menu.NewService(menu.NewInMemoryRepository(), nil)
	if err := menuSvc.SeedDefaults(context.Background()); err != nil {
		t.Fatalf("seeding menu: %v", err)
	}

	restaurantSvc := restaurant.NewService(restaurant.NewInMemoryRepository())
	if err := restaurantSvc.SeedDefaults(context.Background()); err != nil {
		t.Fatalf("seeding restaurants: %v", err)
	}

	cartSvc := cart.NewService(cart.NewStore(), menuSvc)
	addrSvc := address.NewService(address.NewInMemoryRepository(), nil)
	orderSvc := order.NewService(order.NewInMemoryRepository(), cartSvc, stubGateway{}, addrSvc)

	return NewRouter(Handlers{
		Auth:       auth.NewHandler(auth.NewService(auth.NewInMemoryUserRepository())),
		Menu:       menu.NewHandler(menuSvc),
		Cart:       cart.NewHandler(cartSvc),
		Order:      order.NewHandler(orderSvc),
		Address:    address.NewHandler(addrSvc),
		Restaurant: restaurant.NewHandler(restaurantSvc),
	})
}

func TestHealthCheck(t *testing.T) {
	r := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
}

func TestMenuIsPublic(t *testing.T) {
	r := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/menu", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	var resp struct {
		Items []json.RawMessage `json:"items"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding menu: %v", err)
	}
	if len(resp.Items) == 0 {
		t.Fatal("seeded menu should not be empty")
	}
}

func TestCartRequiresAuth(t *testing.T) {
	r := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/cart", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401, got %d", w.Code)
	}
}

func TestAuthenticatedCartFlow(t *testing.T) {
	r := newTestRouter(t)

	// Register through the API and reuse the issued token.
	regReq := httptest.NewRequest(http.MethodPost, "/auth/register",
		jsonBody(t, gin.H{"name": "Asha", "email": "asha@example.com", "password": "secret123"}))
	regReq.Header.Set("Content-Type", "application/json")
	regW := httptest.NewRecorder()
	r.ServeHTTP(regW, regReq)
	if regW.Code != http.StatusCreated {
		t.Fatalf("register failed: %d %s", regW.Code, regW.Body.String())
	}

	var regResp struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(regW.Body.Bytes(), &regResp); err != nil || regResp.Token == "" {
		t.Fatalf("register response missing token: %v %s", err, regW.Body.String())
	}

	req := httptest.NewRequest(http.MethodGet, "/cart", nil)
	req.Header.Set("Authorization", "Bearer "+regResp.Token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}
}

func jsonBody(t *testing.T, v any) io.Reader {
	t.Helper()
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(v); err != nil {
		t.Fatalf("encoding body: %v", err)
	}
	return &buf
}
