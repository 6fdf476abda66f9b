package order

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/deep4nsh/order-plus-rn-new/internal/address"
	"github.com/deep4nsh/order-plus-rn-new/internal/payment"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func currentCustomer(c *gin.Context) (Customer, bool) {
	userIDVal, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return Customer{}, false
	}
	userID, ok := userIDVal.(string)
	if !ok || userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid user context"})
		return Customer{}, false
	}

	cust := Customer{ID: userID}
	if emailVal, exists := c.Get("userEmail"); exists {
		cust.Email, _ = emailVal.(string)
	}
	return cust, true
}

// --------------------------------------------------
// POST /orders  { "address_id": "...", "name": "..." }
// --------------------------------------------------
func (h *Handler) PlaceOrder(c *gin.Context) {
	cust, ok := currentCustomer(c)
	if !ok {
		return
	}

	var req struct {
		AddressID string `json:"address_id"`
		Name      string `json:"name"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	cust.Name = req.Name

	o, err := h.service.PlaceOrder(c.Request.Context(), cust, req.AddressID)
	if err != nil {
		switch {
		case errors.Is(err, ErrEmptyCart):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, address.ErrAddressNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "address not found"})
		case errors.Is(err, payment.ErrPaymentFailed):
			c.JSON(http.StatusPaymentRequired, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to place order"})
		}
		return
	}

	c.JSON(http.StatusCreated, o)
}

// --------------------------------------------------
// GET /orders
// --------------------------------------------------
func (h *Handler) ListOrders(c *gin.Context) {
	cust, ok := currentCustomer(c)
	if !ok {
		return
	}

	orders, err := h.service.ListByUser(c.Request.Context(), cust.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list orders"})
		return
	}
	if orders == nil {
		orders = []*Order{}
	}
	c.JSON(http.StatusOK, orders)
}

// --------------------------------------------------
// GET /orders/:id
// --------------------------------------------------
func (h *Handler) GetOrder(c *gin.Context) {
	cust, ok := currentCustomer(c)
	if !ok {
		return
	}

	role := ""
	if roleVal, exists := c.Get("userRole"); exists {
		role, _ = roleVal.(string)
	}

	o, err := h.service.Get(c.Request.Context(), cust.ID, role, c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, ErrOrderNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
		case errors.Is(err, ErrForbidden):
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load order"})
		}
		return
	}

	c.JSON(http.StatusOK, o)
}
