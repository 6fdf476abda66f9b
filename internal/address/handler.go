package address

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/deep4nsh/order-plus-rn-new/internal/geocode"
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
// GET /addresses
// --------------------------------------------------
func (h *Handler) List(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	addresses, err := h.service.List(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load addresses"})
		return
	}
	if addresses == nil {
		addresses = []*Address{}
	}
	c.JSON(http.StatusOK, gin.H{"addresses": addresses})
}

// --------------------------------------------------
// POST /addresses
// --------------------------------------------------
func (h *Handler) Save(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req struct {
		Label    string   `json:"label"`
		Address  string   `json:"address"`
		Location Location `json:"location"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	addr, err := h.service.Save(c.Request.Context(), userID, req.Label, req.Address, req.Location)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, addr)
}

// --------------------------------------------------
// POST /addresses/from-location
// --------------------------------------------------
func (h *Handler) SaveFromLocation(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req struct {
		Label string  `json:"label"`
		Lat   float64 `json:"lat"`
		Lng   float64 `json:"lng"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	addr, err := h.service.SaveFromLocation(c.Request.Context(), userID, req.Label, req.Lat, req.Lng)
	if err != nil {
		if errors.Is(err, geocode.ErrNoAddressFound) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": "failed to resolve address"})
		return
	}

	c.JSON(http.StatusCreated, addr)
}
