package restaurant

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// --------------------------------------------------
// GET /cities
// --------------------------------------------------
func (h *Handler) ListCities(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"cities": h.service.ListCities()})
}

// --------------------------------------------------
// GET /restaurants?city=<id>
// --------------------------------------------------
func (h *Handler) ListByCity(c *gin.Context) {
	restaurants, err := h.service.ListByCity(c.Request.Context(), c.Query("city"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if restaurants == nil {
		restaurants = []*Restaurant{}
	}
	c.JSON(http.StatusOK, gin.H{"restaurants": restaurants})
}
