package address

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

func (r *PostgresRepository) Save(ctx context.Context, addr *Address) error {
	if addr.ID == "" {
		addr.ID = uuid.New().String()
	}

	_, err := r.db.Exec(ctx, `
		INSERT INTO addresses (id, user_id, label, address, lat, lng)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, addr.ID, addr.UserID, addr.Label, addr.Text, addr.Location.Lat, addr.Location.Lng)
	return err
}

func (r *PostgresRepository) ListByUser(ctx context.Context, userID string) ([]*Address, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, user_id, label, address, lat, lng, created_at
		FROM addresses
		WHERE user_id = $1
		ORDER BY created_at
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var addresses []*Address
	for rows.Next() {
		var addr Address
		if err := rows.Scan(
			&addr.ID,
			&addr.UserID,
			&addr.Label,
			&addr.Text,
			&addr.Location.Lat,
			&addr.Location.Lng,
			&addr.CreatedAt,
		); err != nil {
			return nil, err
		}
		addresses = append(addresses, &addr)
	}
	return addresses, rows.Err()
}

func (r *PostgresRepository) GetByID(ctx context.Context, userID, id string) (*Address, error) {
	var addr Address
	err := r.db.QueryRow(ctx, `
		SELECT id, user_id, label, address, lat, lng, created_at
		FROM addresses
		WHERE id = $1 AND user_id = $2
	`, id, userID).Scan(
		&addr.ID,
		&addr.UserID,
		&addr.Label,
		&addr.Text,
		&addr.Location.Lat,
		&addr.Location.Lng,
		&addr.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrAddressNotFound
		}
		return nil, err
	}
	return &addr, nil
}
