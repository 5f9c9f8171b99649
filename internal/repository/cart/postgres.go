package cart

import (
	"context"

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

func (r *postgresRepo) Get(ctx context.Context, userID string) (*Snapshot, error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `
INSERT INTO carts (user_id) VALUES ($1)
ON CONFLICT (user_id) DO NOTHING
`, userID); err != nil {
		return nil, err
	}

	var code *string
	if err := tx.QueryRow(ctx, `
SELECT discount_code FROM carts WHERE user_id = $1
`, userID).Scan(&code); err != nil {
		return nil, err
	}

	rows, err := tx.Query(ctx, `
SELECT product_id, name, price::float8, quantity
FROM cart_items
WHERE user_id = $1
ORDER BY created_at, product_id
`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	snap := &Snapshot{}
	for rows.Next() {
		var item domain.CartItem
		if err := rows.Scan(&item.ProductID, &item.Name, &item.Price, &item.Quantity); err != nil {
			return nil, err
		}
		snap.Items = append(snap.Items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	rows.Close()

	if code != nil {
		snap.DiscountCode = *code
	}
	return snap, tx.Commit(ctx)
}

func (r *postgresRepo) AddItem(ctx context.Context, userID string, product domain.Product, quantity int) error {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `
INSERT INTO carts (user_id) VALUES ($1)
ON CONFLICT (user_id) DO NOTHING
`, userID); err != nil {
		return err
	}

	if _, err := tx.Exec(ctx, `
INSERT INTO cart_items (user_id, product_id, name, price, quantity)
VALUES ($1, $2, $3, $4, $5)
ON CONFLICT (user_id, product_id) DO UPDATE SET quantity = cart_items.quantity + EXCLUDED.quantity
`, userID, product.ID, product.Name, product.Price, quantity); err != nil {
		return err
	}

	return touchAndCommit(ctx, tx, userID)
}

func (r *postgresRepo) SetQuantity(ctx context.Context, userID string, productID int64, quantity int) error {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if quantity <= 0 {
		cmd, err := tx.Exec(ctx, `
DELETE FROM cart_items WHERE user_id = $1 AND product_id = $2
`, userID, productID)
		if err != nil {
			return err
		}
		if cmd.RowsAffected() == 0 {
			return domain.ErrNotFound
		}
	} else {
		cmd, err := tx.Exec(ctx, `
UPDATE cart_items SET quantity = $3 WHERE user_id = $1 AND product_id = $2
`, userID, productID, quantity)
		if err != nil {
			return err
		}
		if cmd.RowsAffected() == 0 {
			return domain.ErrNotFound
		}
	}

	return touchAndCommit(ctx, tx, userID)
}

func (r *postgresRepo) RemoveItem(ctx context.Context, userID string, productID int64) error {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	cmd, err := tx.Exec(ctx, `
DELETE FROM cart_items WHERE user_id = $1 AND product_id = $2
`, userID, productID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}

	return touchAndCommit(ctx, tx, userID)
}

func (r *postgresRepo) SetDiscountCode(ctx context.Context, userID, code string) error {
	cmd, err := r.pool.Exec(ctx, `
UPDATE carts SET discount_code = $2, updated_at = now() WHERE user_id = $1
`, userID, code)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func touchAndCommit(ctx context.Context, tx pgx.Tx, userID string) error {
	if _, err := tx.Exec(ctx, `
UPDATE carts SET updated_at = now() WHERE user_id = $1
`, userID); err != nil {
		return err
	}
	return tx.Commit(ctx)
}
