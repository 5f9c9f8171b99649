package seed

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

type productSeed struct {
	ID    int64
	Name  string
	Price float64
	Image string
}

// Apply inserts the demo catalog for manual testing. It is idempotent
// via ON CONFLICT, so re-running it refreshes names and prices without
// duplicating rows.
func Apply(ctx context.Context, pool *pgxpool.Pool) error {
	products := []productSeed{
		{ID: 1, Name: "Wireless Headphones", Price: 99.99, Image: "https://placehold.co/300x200?text=Headphones"},
		{ID: 2, Name: "Smart Watch", Price: 199.99, Image: "https://placehold.co/300x200?text=Smart+Watch"},
		{ID: 3, Name: "Coffee Maker", Price: 79.99, Image: "https://placehold.co/300x200?text=Coffee+Maker"},
		{ID: 4, Name: "Running Shoes", Price: 89.99, Image: "https://placehold.co/300x200?text=Shoes"},
		{ID: 5, Name: "Backpack", Price: 49.99, Image: "https://placehold.co/300x200?text=Backpack"},
		{ID: 6, Name: "Desk Lamp", Price: 34.99, Image: "https://placehold.co/300x200?text=Desk+Lamp"},
	}

	for _, p := range products {
		if err := upsertProduct(ctx, pool, p); err != nil {
			return fmt.Errorf("upsert product %q: %w", p.Name, err)
		}
	}

	// Keep the sequence ahead of the fixed demo IDs so importer and
	// API inserts never collide with them.
	const bump = `SELECT setval('products_id_seq', GREATEST((SELECT MAX(id) FROM products), 1))`
	if _, err := pool.Exec(ctx, bump); err != nil {
		return fmt.Errorf("bump products sequence: %w", err)
	}

	return nil
}

func upsertProduct(ctx context.Context, pool *pgxpool.Pool, p productSeed) error {
	const q = `
INSERT INTO products (id, name, price, image)
VALUES ($1, $2, $3, $4)
ON CONFLICT (id) DO UPDATE
SET name  = EXCLUDED.name,
    price = EXCLUDED.price,
    image = EXCLUDED.image
`
	_, err := pool.Exec(ctx, q, p.ID, p.Name, p.Price, p.Image)
	return err
}
