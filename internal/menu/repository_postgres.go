package menu

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) ListAvailable(ctx context.Context) ([]*Item, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, name, description, price, category, image_url, is_available, created_at
		FROM menu_items
		WHERE is_available = TRUE
		ORDER BY created_at, name
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*Item
	for rows.Next() {
		var item Item
		if err := rows.Scan(
			&item.ID,
			&item.Name,
			&item.Description,
			&item.Price,
			&item.Category,
			&item.ImageURL,
			&item.IsAvailable,
			&item.CreatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, &item)
	}
	return items, rows.Err()
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*Item, error) {
	var item Item
	err := r.db.QueryRow(ctx, `
		SELECT id, name, description, price, category, image_url, is_available, created_at
		FROM menu_items
		WHERE id = $1
	`, id).Scan(
		&item.ID,
		&item.Name,
		&item.Description,
		&item.Price,
		&item.Category,
		&item.ImageURL,
		&item.IsAvailable,
		&item.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrItemNotFound
		}
		return nil, err
	}
	return &item, nil
}

// --------------------------------------------------
// SEED DEFAULT MENU (IDEMPOTENT, KEYED BY NAME)
// --------------------------------------------------
func (r *PostgresRepository) Seed(ctx context.Context, items []*Item) error {
	for _, item := range items {
		id := item.ID
		if id == "" {
			id = uuid.New().String()
		}

		_, err := r.db.Exec(ctx, `
			INSERT INTO menu_items (id, name, description, price, category, image_url, is_available)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			ON CONFLICT (name) DO NOTHING
		`, id, item.Name, item.Description, item.Price, item.Category, item.ImageURL, item.IsAvailable)
		if err != nil {
			return err
		}
	}
	return nil
}

func (r *PostgresRepository) SetImageURL(ctx context.Context, id string, imageURL string) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE menu_items SET image_url = $2 WHERE id = $1
	`, id, imageURL)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrItemNotFound
	}
	return nil
}
