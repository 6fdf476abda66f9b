package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/deep4nsh/order-plus-rn-new/internal/address"
	"github.com/deep4nsh/order-plus-rn-new/internal/auth"
	"github.com/deep4nsh/order-plus-rn-new/internal/cart"
	"github.com/deep4nsh/order-plus-rn-new/internal/menu"
	"github.com/deep4nsh/order-plus-rn-new/internal/middleware"
	"github.com/deep4nsh/order-plus-rn-new/internal/order"
	"github.com/deep4nsh/order-plus-rn-new/internal/restaurant"
)

// Handlers bundles every HTTP handler the API serves.
type Handlers struct {
	Auth       *auth.Handler
	Menu       *menu.Handler
	Cart       *cart.Handler
	Order      *order.Handler
	Address    *address.Handler
	Restaurant *restaurant.Handler
}

func NewRouter(h Handlers) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173", "http://localhost:8081"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Health check route
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ───────────────────────── AUTH ─────────────────────────
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/register", h.Auth.Register)
		authGroup.POST("/login", h.Auth.Login)
	}

	// ───────────────────────── BROWSE (PUBLIC) ─────────────────────────
	r.GET("/menu", h.Menu.ListMenu)
	r.GET("/cities", h.Restaurant.ListCities)
	r.GET("/restaurants", h.Restaurant.ListByCity)

	// ───────────────────────── ADMIN ─────────────────────────
	admin := r.Group("/admin")
	admin.Use(
		middleware.AuthMiddleware(),
		middleware.RequireRole(auth.RoleAdmin),
	)
	{
		admin.POST("/menu/:id/image", h.Menu.UploadItemImage)
	}

	// ───────────────────────── CART ─────────────────────────
	cartGroup := r.Group("/cart")
	cartGroup.Use(middleware.AuthMiddleware())
	{
		cartGroup.GET("", h.Cart.GetCart)
		cartGroup.POST("/items", h.Cart.AddItem)
		cartGroup.PATCH("/items/:lineKey", h.Cart.AdjustQuantity)
		cartGroup.DELETE("/items/:lineKey", h.Cart.RemoveItem)
		cartGroup.DELETE("", h.Cart.Clear)
	}

	// ───────────────────────── ORDERS ─────────────────────────
	orders := r.Group("/orders")
	orders.Use(middleware.AuthMiddleware())
	{
		orders.POST("", h.Order.PlaceOrder)
		orders.GET("", h.Order.ListOrders)
		orders.GET("/:id", h.Order.GetOrder)
	}

	// ───────────────────────── ADDRESSES ─────────────────────────
	addresses := r.Group("/addresses")
	addresses.Use(middleware.AuthMiddleware())
	{
		addresses.GET("", h.Address.List)
		addresses.POST("", h.Address.Save)
		addresses.POST("/from-location", h.Address.SaveFromLocation)
	}

	return r
}
