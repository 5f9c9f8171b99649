package order

import (
	"context"

	"shopeasy/internal/domain"
)

// Totals are the order aggregates backing the admin dashboard; the
// discount-code list is joined in by the admin service.
type Totals struct {
	ItemsPurchased      int
	TotalPurchaseAmount float64
	TotalDiscountAmount float64
	TotalOrders         int
}

type Repository interface {
	// Create stores the order with its idempotency key, empties the
	// user's cart, and returns the total number of orders placed so
	// far, all in one transaction. Either the order exists and the
	// cart is empty, or neither happened.
	Create(ctx context.Context, o domain.Order, idempotencyKey string) (int, error)
	// GetByIdempotencyKey returns the order previously stored under key,
	// or domain.ErrNotFound.
	GetByIdempotencyKey(ctx context.Context, key string) (*domain.Order, error)
	Totals(ctx context.Context) (*Totals, error)
}
