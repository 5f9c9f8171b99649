package discount

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

func (r *postgresRepo) Create(ctx context.Context, code domain.DiscountCode) error {
	const q = `
INSERT INTO discount_codes (code, percent, used, generated_at)
VALUES ($1, $2, $3, COALESCE($4, now()))
`
	var generatedAt interface{}
	if !code.GeneratedAt.IsZero() {
		generatedAt = code.GeneratedAt
	}
	_, err := r.pool.Exec(ctx, q, code.Code, code.Discount, code.Used, generatedAt)
	return err
}

func (r *postgresRepo) GetByCode(ctx context.Context, code string) (*domain.DiscountCode, error) {
	const q = `
SELECT code, percent::float8, used, generated_at
FROM discount_codes
WHERE code = $1
`
	var out domain.DiscountCode
	if err := r.pool.QueryRow(ctx, q, code).Scan(&out.Code, &out.Discount, &out.Used, &out.GeneratedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &out, nil
}

func (r *postgresRepo) Consume(ctx context.Context, code string) (*domain.DiscountCode, error) {
	const q = `
UPDATE discount_codes
SET used = TRUE
WHERE code = $1 AND used = FALSE
RETURNING code, percent::float8, used, generated_at
`
	var out domain.DiscountCode
	if err := r.pool.QueryRow(ctx, q, code).Scan(&out.Code, &out.Discount, &out.Used, &out.GeneratedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &out, nil
}

func (r *postgresRepo) List(ctx context.Context) ([]domain.DiscountCode, error) {
	const q = `
SELECT code, percent::float8, used, generated_at
FROM discount_codes
ORDER BY generated_at DESC
`
	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var codes []domain.DiscountCode
	for rows.Next() {
		var c domain.DiscountCode
		if err := rows.Scan(&c.Code, &c.Discount, &c.Used, &c.GeneratedAt); err != nil {
			return nil, err
		}
		codes = append(codes, c)
	}
	return codes, rows.Err()
}
