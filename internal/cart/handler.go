package cart

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/deep4nsh/order-plus-rn-new/internal/menu"
	"github.com/deep4nsh/order-plus-rn-new/internal/pricing"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func currentUserID(c *gin.Context) (string, bool) {
	userIDVal, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return "", false
	}
	userID, ok := userIDVal.(string)
	if !ok || userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid user context"})
		return "", false
	}
	return userID, true
}

// --------------------------------------------------
// GET /cart
// --------------------------------------------------
func (h *Handler) GetCart(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, h.service.Snapshot(userID))
}

// --------------------------------------------------
// POST /cart/items
// --------------------------------------------------
func (h *Handler) AddItem(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req struct {
		MenuItemID string            `json:"menu_item_id"`
		Selection  pricing.Selection `json:"selection"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if req.MenuItemID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "menu_item_id is required"})
		return
	}

	snapshot, err := h.service.AddItem(c.Request.Context(), userID, req.MenuItemID, req.Selection)
	if err != nil {
		switch {
		case errors.Is(err, menu.ErrItemNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "menu item not found"})
		case errors.Is(err, pricing.ErrInvalidSelection):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, ErrItemUnavailable):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to add item"})
		}
		return
	}

	c.JSON(http.StatusOK, snapshot)
}

// --------------------------------------------------
// PATCH /cart/items/:lineKey  { "delta": -1 }
// --------------------------------------------------
func (h *Handler) AdjustQuantity(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req struct {
		Delta int `json:"delta"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	c.JSON(http.StatusOK, h.service.AdjustQuantity(userID, c.Param("lineKey"), req.Delta))
}

// --------------------------------------------------
// DELETE /cart/items/:lineKey
// --------------------------------------------------
func (h *Handler) RemoveItem(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, h.service.RemoveItem(userID, c.Param("lineKey")))
}

// --------------------------------------------------
// DELETE /cart
// --------------------------------------------------
func (h *Handler) Clear(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, h.service.Clear(userID))
}
