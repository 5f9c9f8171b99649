package order

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"shopeasy/internal/domain"
)

type postgresRepo struct {
	pool *pgxpool.Pool
}

func NewPostgres(pool *pgxpool.Pool) Repository {
	return &postgresRepo{pool: pool}
}

func (r *postgresRepo) Create(ctx context.Context, o domain.Order, idempotencyKey string) (int, error) {
	items, err := json.Marshal(o.Items)
	if err != nil {
		return 0, err
	}
	shipping, err := json.Marshal(o.ShippingAddress)
	if err != nil {
		return 0, err
	}

	var key *string
	if idempotencyKey != "" {
		key = &idempotencyKey
	}
	var code *string
	if o.DiscountCode != "" {
		code = &o.DiscountCode
	}

	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return 0, err
	}
	defer tx.Rollback(ctx)

	const q = `
INSERT INTO orders (id, user_id, items, total, discount_code, discount_amount, discounted_total,
                    shipping_address, card_last4, idempotency_key, status, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
`
	if _, err := tx.Exec(ctx, q,
		o.ID, o.UserID, items, o.Total, code, nullIfZero(o.DiscountAmount), nullIfZero(o.DiscountedTotal),
		shipping, o.PaymentInfo.CardNumber, key, o.Status, o.Timestamp,
	); err != nil {
		return 0, err
	}

	// The ordered items leave the cart in the same transaction, so a
	// stored order can never coexist with its unfulfilled cart.
	if _, err := tx.Exec(ctx, `
DELETE FROM cart_items WHERE user_id = $1
`, o.UserID); err != nil {
		return 0, err
	}
	if _, err := tx.Exec(ctx, `
UPDATE carts SET discount_code = NULL, updated_at = now() WHERE user_id = $1
`, o.UserID); err != nil {
		return 0, err
	}

	var count int
	if err := tx.QueryRow(ctx, `SELECT COUNT(*) FROM orders`).Scan(&count); err != nil {
		return 0, err
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, err
	}
	return count, nil
}

func (r *postgresRepo) GetByIdempotencyKey(ctx context.Context, key string) (*domain.Order, error) {
	const q = `
SELECT id, user_id, items, total::float8,
       COALESCE(discount_code, ''), COALESCE(discount_amount, 0)::float8, COALESCE(discounted_total, 0)::float8,
       shipping_address, card_last4, status, created_at
FROM orders
WHERE idempotency_key = $1
`
	var (
		o        domain.Order
		items    []byte
		shipping []byte
	)
	err := r.pool.QueryRow(ctx, q, key).Scan(
		&o.ID, &o.UserID, &items, &o.Total,
		&o.DiscountCode, &o.DiscountAmount, &o.DiscountedTotal,
		&shipping, &o.PaymentInfo.CardNumber, &o.Status, &o.Timestamp,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	if err := json.Unmarshal(items, &o.Items); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(shipping, &o.ShippingAddress); err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *postgresRepo) Totals(ctx context.Context) (*Totals, error) {
	const q = `
SELECT COUNT(*),
       COALESCE(SUM(COALESCE(discounted_total, total)), 0)::float8,
       COALESCE(SUM(COALESCE(discount_amount, 0)), 0)::float8
FROM orders
`
	var t Totals
	if err := r.pool.QueryRow(ctx, q).Scan(&t.TotalOrders, &t.TotalPurchaseAmount, &t.TotalDiscountAmount); err != nil {
		return nil, err
	}

	const itemsQ = `
SELECT COALESCE(SUM((item->>'quantity')::int), 0)
FROM orders, jsonb_array_elements(items) AS item
`
	if err := r.pool.QueryRow(ctx, itemsQ).Scan(&t.ItemsPurchased); err != nil {
		return nil, err
	}
	return &t, nil
}

func nullIfZero(v float64) interface{} {
	if v == 0 {
		return nil
	}
	return v
}
