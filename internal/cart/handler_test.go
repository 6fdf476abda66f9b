package cart

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/deep4nsh/order-plus-rn-new/internal/menu"
)

func setupCartTestRouter(t *testing.T) (*gin.Engine, *menu.Service) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	menuSvc := seededMenu(t)
	service := NewService(NewStore(), menuSvc)
	handler := NewHandler(service)

	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("userID", "user-1")
		c.Next()
	})
	r.GET("/cart", handler.GetCart)
	r.POST("/cart/items", handler.AddItem)
	r.PATCH("/cart/items/:lineKey", handler.AdjustQuantity)
	r.DELETE("/cart/items/:lineKey", handler.RemoveItem)
	r.DELETE("/cart", handler.Clear)

	return r, menuSvc
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) (*httptest.ResponseRecorder, Snapshot) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encoding body: %v", err)
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var snap Snapshot
	if w.Code == http.StatusOK {
		if err := json.Unmarshal(w.Body.Bytes(), &snap); err != nil {
			t.Fatalf("decoding snapshot: %v", err)
		}
	}
	return w, snap
}

func TestHandlerAddAndGet(t *testing.T) {
	r, service := setupCartTestRouter(t)
	pizzaID := itemIDByName(t, service, "Margherita Pizza")

	w, snap := doJSON(t, r, http.MethodPost, "/cart/items", gin.H{
		"menu_item_id": pizzaID,
		"selection":    gin.H{"crust": "thin", "cheese": "extra"},
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if snap.TotalPrice != 379 || snap.TotalItems != 1 {
		t.Fatalf("unexpected snapshot: %+v", snap)
	}

	w, snap = doJSON(t, r, http.MethodGet, "/cart", nil)
	if w.Code != http.StatusOK || snap.TotalItems != 1 {
		t.Fatalf("GET /cart should show the added line, got %d %+v", w.Code, snap)
	}
}

func TestHandlerAdjustRemovesAtZero(t *testing.T) {
	r, service := setupCartTestRouter(t)
	coffeeID := itemIDByName(t, service, "Cold Coffee")

	_, snap := doJSON(t, r, http.MethodPost, "/cart/items", gin.H{"menu_item_id": coffeeID})
	if len(snap.Lines) != 1 {
		t.Fatalf("expected one line, got %+v", snap)
	}
	lineKey := snap.Lines[0].LineKey

	w, snap := doJSON(t, r, http.MethodPatch, "/cart/items/"+lineKey, gin.H{"delta": -1})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if len(snap.Lines) != 0 || snap.TotalPrice != 0 {
		t.Fatalf("expected empty cart, got %+v", snap)
	}
}

func TestHandlerInvalidSelectionRejected(t *testing.T) {
	r, service := setupCartTestRouter(t)
	pizzaID := itemIDByName(t, service, "Margherita Pizza")

	w, _ := doJSON(t, r, http.MethodPost, "/cart/items", gin.H{
		"menu_item_id": pizzaID,
		"selection":    gin.H{"crust": "stuffed"},
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestHandlerUnknownItem404(t *testing.T) {
	r, _ := setupCartTestRouter(t)

	w, _ := doJSON(t, r, http.MethodPost, "/cart/items", gin.H{"menu_item_id": "missing"})
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestHandlerClear(t *testing.T) {
	r, service := setupCartTestRouter(t)
	coffeeID := itemIDByName(t, service, "Cold Coffee")

	doJSON(t, r, http.MethodPost, "/cart/items", gin.H{"menu_item_id": coffeeID})

	w, snap := doJSON(t, r, http.MethodDelete, "/cart", nil)
	if w.Code != http.StatusOK || snap.TotalItems != 0 {
		t.Fatalf("expected empty cart after clear, got %d %+v", w.Code, snap)
	}
}

func itemIDByName(t *testing.T, menuSvc *menu.Service, name string) string {
	t.Helper()
	return findItem(t, menuSvc, name).ID
}
