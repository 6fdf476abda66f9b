package restaurant

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) List(ctx context.Context) ([]*Restaurant, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, name, tagline, image_url, rating, eta_minutes
		FROM restaurants
		ORDER BY name
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var restaurants []*Restaurant
	for rows.Next() {
		var rest Restaurant
		if err := rows.Scan(
			&rest.ID,
			&rest.Name,
			&rest.Tagline,
			&rest.ImageURL,
			&rest.Rating,
			&rest.ETAMinutes,
		); err != nil {
			return nil, err
		}
		restaurants = append(restaurants, &rest)
	}
	return restaurants, rows.Err()
}

func (r *PostgresRepository) Seed(ctx context.Context, restaurants []*Restaurant) error {
	for _, rest := range restaurants {
		_, err := r.db.Exec(ctx, `
			INSERT INTO restaurants (id, name, tagline, image_url, rating, eta_minutes)
			VALUES ($1, $2, $3, $4, $5, $6)
			ON CONFLICT (id) DO NOTHING
		`, rest.ID, rest.Name, rest.Tagline, rest.ImageURL, rest.Rating, rest.ETAMinutes)
		if err != nil {
			return err
		}
	}
	return nil
}
