package main

import (
	"context"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/deep4nsh/order-plus-rn-new/internal/db"
	"github.com/deep4nsh/order-plus-rn-new/internal/order"
)

// The dispatch worker stands in for a real delivery pipeline: every
// tick it promotes the oldest undelivered order one status step, so a
// placed order visibly walks PAID → PREPARING → ON_THE_WAY → DELIVERED.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Info().Msg("no .env file found, using environment variables")
	}

	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout})

	if os.Getenv("DATABASE_URL") == "" {
		log.Fatal().Msg("DATABASE_URL is not set")
	}

	pgDB := db.ConnectPostgres()
	defer pgDB.Close()

	repo := order.NewPostgresRepository(pgDB)
	service := order.NewService(repo, nil, nil, nil)

	log.Info().Msg("dispatch worker running, advancing orders every 15 seconds")

	ticker := time.NewTicker(15 * time.Second)
	defer ticker.Stop()

	for range ticker.C {
		if _, err := service.AdvanceOne(context.Background()); err != nil {
			log.Error().Err(err).Msg("advance failed")
		}
	}
}
