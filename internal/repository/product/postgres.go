package product

import (
	"context"
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

func (r *postgresRepo) List(ctx context.Context) ([]domain.Product, error) {
	const q = `
SELECT id, name, price::float8, image, created_at
FROM products
ORDER BY id
`
	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []domain.Product
	for rows.Next() {
		var p domain.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Price, &p.Image, &p.CreatedAt); err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

func (r *postgresRepo) GetByID(ctx context.Context, id int64) (*domain.Product, error) {
	const q = `
SELECT id, name, price::float8, image, created_at
FROM products
WHERE id = $1
`
	var p domain.Product
	if err := r.pool.QueryRow(ctx, q, id).Scan(&p.ID, &p.Name, &p.Price, &p.Image, &p.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *postgresRepo) Upsert(ctx context.Context, p domain.Product) (*domain.Product, error) {
	const q = `
INSERT INTO products (name, price, image)
VALUES ($1, $2, $3)
ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name, price = EXCLUDED.price, image = EXCLUDED.image
RETURNING id, name, price::float8, image, created_at
`
	const qWithID = `
INSERT INTO products (id, name, price, image)
VALUES ($1, $2, $3, $4)
ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name, price = EXCLUDED.price, image = EXCLUDED.image
RETURNING id, name, price::float8, image, created_at
`
	var out domain.Product
	var err error
	if p.ID > 0 {
		err = r.pool.QueryRow(ctx, qWithID, p.ID, p.Name, p.Price, p.Image).
			Scan(&out.ID, &out.Name, &out.Price, &out.Image, &out.CreatedAt)
	} else {
		err = r.pool.QueryRow(ctx, q, p.Name, p.Price, p.Image).
			Scan(&out.ID, &out.Name, &out.Price, &out.Image, &out.CreatedAt)
	}
	if err != nil {
		return nil, err
	}
	return &out, nil
}
