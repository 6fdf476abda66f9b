package main

import (
	"context"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/deep4nsh/order-plus-rn-new/internal/address"
	"github.com/deep4nsh/order-plus-rn-new/internal/auth"
	"github.com/deep4nsh/order-plus-rn-new/internal/cart"
	"github.com/deep4nsh/order-plus-rn-new/internal/db"
	"github.com/deep4nsh/order-plus-rn-new/internal/geocode"
	"github.com/deep4nsh/order-plus-rn-new/internal/menu"
	"github.com/deep4nsh/order-plus-rn-new/internal/order"
	"github.com/deep4nsh/order-plus-rn-new/internal/payment"
	"github.com/deep4nsh/order-plus-rn-new/internal/restaurant"
	"github.com/deep4nsh/order-plus-rn-new/internal/router"
	"github.com/deep4nsh/order-plus-rn-new/internal/storage"
)

func main() {

	// ───────────────────────── ENV ─────────────────────────
	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}

	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout})

	required := []string{
		"JWT_SECRET",
		"DATABASE_URL",
		"RAZORPAY_KEY_ID",
		"RAZORPAY_KEY_SECRET",
		"GOOGLE_MAPS_GEOCODE_KEY",
		"R2_ACCESS_KEY",
		"R2_SECRET_KEY",
		"R2_BUCKET_NAME",
		"R2_ENDPOINT",
		"R2_PUBLIC_BASE_URL",
	}

	for _, k := range required {
		if os.Getenv(k) == "" {
			log.Fatal().Str("var", k).Msg("missing env var")
		}
	}

	// ───────────────────────── DB ─────────────────────────
	pgDB := db.ConnectPostgres()
	defer pgDB.Close()

	// ───────────────────────── STORAGE ─────────────────────────
	r2Client, err := storage.NewR2Client(context.Background())
	if err != nil {
		log.Fatal().Err(err).Msg("R2 init failed")
	}

	// ───────────────────────── REPOS ─────────────────────────
	userRepo := auth.NewPostgresUserRepository(pgDB)
	menuRepo := menu.NewPostgresRepository(pgDB)
	restaurantRepo := restaurant.NewPostgresRepository(pgDB)
	addressRepo := address.NewPostgresRepository(pgDB)
	orderRepo := order.NewPostgresRepository(pgDB)

	// ───────────────────────── SERVICES (ORDER MATTERS) ─────────────────────────
	authService := auth.NewService(userRepo)
	menuService := menu.NewService(menuRepo, r2Client)
	restaurantService := restaurant.NewService(restaurantRepo)
	cartService := cart.NewService(cart.NewStore(), menuService)
	addressService := address.NewService(addressRepo, geocode.NewGoogleClient())
	orderService := order.NewService(orderRepo, cartService, payment.NewRazorpayClient(), addressService)

	// ───────────────────────── SEED ─────────────────────────
	if err := menuService.SeedDefaults(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("menu seed failed")
	}
	if err := restaurantService.SeedDefaults(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("restaurant seed failed")
	}

	// ───────────────────────── ROUTER ─────────────────────────
	r := router.NewRouter(router.Handlers{
		Auth:       auth.NewHandler(authService),
		Menu:       menu.NewHandler(menuService),
		Cart:       cart.NewHandler(cartService),
		Order:      order.NewHandler(orderService),
		Address:    address.NewHandler(addressService),
		Restaurant: restaurant.NewHandler(restaurantService),
	})

	// ───────────────────────── START ─────────────────────────
	log.Info().Str("addr", ":8080").Msg("API server starting")
	if err := r.Run(":8080"); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
