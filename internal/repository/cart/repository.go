package cart

import (
	"context"

	"shopeasy/internal/domain"
)

// Snapshot is the stored cart state: the ordered item lines plus the
// attached discount code, if any. Totals are not stored; the service
// computes them from the lines on every read.
type Snapshot struct {
	Items        []domain.CartItem
	DiscountCode string
}

type Repository interface {
	// Get loads the user's cart, creating an empty one on first fetch.
	Get(ctx context.Context, userID string) (*Snapshot, error)
	// AddItem merges quantity into an existing line or inserts a new one.
	AddItem(ctx context.Context, userID string, product domain.Product, quantity int) error
	// SetQuantity sets a line's quantity; a quantity <= 0 removes the
	// line, never stores a zero.
	SetQuantity(ctx context.Context, userID string, productID int64, quantity int) error
	// RemoveItem deletes a line entirely.
	RemoveItem(ctx context.Context, userID string, productID int64) error
	// SetDiscountCode attaches an already-validated code to the cart.
	SetDiscountCode(ctx context.Context, userID, code string) error
}
