package order

import (
	"context"
	"encoding/json"
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

const orderColumns = `
	id, user_id, user_email, user_name, items, total_price, status,
	COALESCE(payment_id, ''), driver_name,
	COALESCE(delivery_address_id::text, ''), COALESCE(delivery_address_label, ''),
	COALESCE(delivery_address, ''), COALESCE(delivery_lat, 0), COALESCE(delivery_lng, 0),
	created_at, updated_at
`

func (r *PostgresRepository) Save(ctx context.Context, o *Order) error {
	if o.ID == "" {
		o.ID = uuid.New().String()
	}

	items, err := json.Marshal(o.Items)
	if err != nil {
		return err
	}

	var addressID any
	if o.DeliveryAddressID != "" {
		addressID = o.DeliveryAddressID
	}

	return r.db.QueryRow(ctx, `
		INSERT INTO orders (
			id, user_id, user_email, user_name, items, total_price, status,
			payment_id, driver_name, delivery_address_id, delivery_address_label,
			delivery_address, delivery_lat, delivery_lng
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING created_at, updated_at
	`,
		o.ID, o.UserID, o.UserEmail, o.UserName, items, o.TotalPrice, o.Status,
		o.PaymentID, o.DriverName, addressID, o.DeliveryAddressLabel,
		o.DeliveryAddressText, o.DeliveryLat, o.DeliveryLng,
	).Scan(&o.CreatedAt, &o.UpdatedAt)
}

func (r *PostgresRepository) ListByUser(ctx context.Context, userID string) ([]*Order, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+orderColumns+`
		FROM orders
		WHERE user_id = $1
		ORDER BY created_at DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []*Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, rows.Err()
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*Order, error) {
	row := r.db.QueryRow(ctx, `
		SELECT `+orderColumns+`
		FROM orders
		WHERE id = $1
	`, id)

	o, err := scanOrder(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	return o, nil
}

func (r *PostgresRepository) OldestUndelivered(ctx context.Context) (*Order, error) {
	row := r.db.QueryRow(ctx, `
		SELECT `+orderColumns+`
		FROM orders
		WHERE status <> $1
		ORDER BY created_at
		LIMIT 1
	`, StatusDelivered)

	o, err := scanOrder(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	return o, nil
}

func (r *PostgresRepository) UpdateStatus(ctx context.Context, id, status string) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE orders
		SET status = $2, updated_at = CURRENT_TIMESTAMP
		WHERE id = $1
	`, id, status)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrOrderNotFound
	}
	return nil
}

func scanOrder(row pgx.Row) (*Order, error) {
	var o Order
	var items []byte
	if err := row.Scan(
		&o.ID,
		&o.UserID,
		&o.UserEmail,
		&o.UserName,
		&items,
		&o.TotalPrice,
		&o.Status,
		&o.PaymentID,
		&o.DriverName,
		&o.DeliveryAddressID,
		&o.DeliveryAddressLabel,
		&o.DeliveryAddressText,
		&o.DeliveryLat,
		&o.DeliveryLng,
		&o.CreatedAt,
		&o.UpdatedAt,
	); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(items, &o.Items); err != nil {
		return nil, err
	}
	return &o, nil
}
