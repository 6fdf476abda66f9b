package db

import (
	"context"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"
)

func ConnectPostgres() *pgxpool.Pool {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal().Msg("DATABASE_URL not set")
	}

	config, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid DATABASE_URL")
	}

	config.MaxConns = 10
	config.MinConns = 2
	config.MaxConnLifetime = time.Hour

	pool, err := pgxpool.NewWithConfig(context.Background(), config)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create connection pool")
	}

	if err := pool.Ping(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("postgres connection failed")
	}

	log.Info().Msg("connected to PostgreSQL")

	if err := initSchema(pool); err != nil {
		log.Fatal().Err(err).Msg("failed to initialize schema")
	}

	return pool
}

// initSchema creates or updates the database schema
func initSchema(pool *pgxpool.Pool) error {
	ctx := context.Background()

	statements := []string{
		// -------------------------------
		// USERS
		// -------------------------------
		`CREATE TABLE IF NOT EXISTS users (
			id UUID PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			email VARCHAR(255) UNIQUE NOT NULL,
			password VARCHAR(255) NOT NULL,
			role VARCHAR(50) NOT NULL DEFAULT 'CUSTOMER',
			avatar_url VARCHAR(500) NOT NULL DEFAULT '',
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`,

		// -------------------------------
		// MENU ITEMS (shared demo menu, seeded by name)
		// -------------------------------
		`CREATE TABLE IF NOT EXISTS menu_items (
			id UUID PRIMARY KEY,
			name VARCHAR(255) UNIQUE NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			price BIGINT NOT NULL CHECK (price >= 0),
			category VARCHAR(100) NOT NULL,
			image_url VARCHAR(500) NOT NULL DEFAULT '',
			is_available BOOLEAN NOT NULL DEFAULT TRUE,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`,

		// -------------------------------
		// RESTAURANTS (same demo set in every city)
		// -------------------------------
		`CREATE TABLE IF NOT EXISTS restaurants (
			id VARCHAR(100) PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			tagline VARCHAR(255) NOT NULL DEFAULT '',
			image_url VARCHAR(500) NOT NULL DEFAULT '',
			rating NUMERIC(2,1) NOT NULL DEFAULT 0,
			eta_minutes INT NOT NULL DEFAULT 30
		)`,

		// -------------------------------
		// ADDRESSES
		// -------------------------------
		`CREATE TABLE IF NOT EXISTS addresses (
			id UUID PRIMARY KEY,
			user_id UUID NOT NULL REFERENCES users(id),
			label VARCHAR(100) NOT NULL DEFAULT '',
			address TEXT NOT NULL,
			lat DOUBLE PRECISION NOT NULL DEFAULT 0,
			lng DOUBLE PRECISION NOT NULL DEFAULT 0,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`,

		// -------------------------------
		// ORDERS (items stored as a JSONB cart snapshot)
		// -------------------------------
		`CREATE TABLE IF NOT EXISTS orders (
			id UUID PRIMARY KEY,
			user_id UUID,
			user_email VARCHAR(255) NOT NULL DEFAULT '',
			user_name VARCHAR(255) NOT NULL DEFAULT '',
			items JSONB NOT NULL,
			total_price BIGINT NOT NULL CHECK (total_price >= 0),
			status VARCHAR(50) NOT NULL DEFAULT 'PAID',
			payment_id VARCHAR(255),
			driver_name VARCHAR(255) NOT NULL DEFAULT '',
			delivery_address_id UUID,
			delivery_address_label VARCHAR(100),
			delivery_address TEXT,
			delivery_lat DOUBLE PRECISION,
			delivery_lng DOUBLE PRECISION,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`,

		`CREATE INDEX IF NOT EXISTS idx_orders_user_created
			ON orders (user_id, created_at DESC)`,
	}

	for _, stmt := range statements {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return err
		}
	}

	log.Info().Msg("schema initialized")
	return nil
}
