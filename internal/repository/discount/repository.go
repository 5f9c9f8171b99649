package discount

import (
	"context"

	"shopeasy/internal/domain"
)

type Repository interface {
	Create(ctx context.Context, code domain.DiscountCode) error
	GetByCode(ctx context.Context, code string) (*domain.DiscountCode, error)
	// Consume marks an unused code as used. It returns the code's
	// details, or domain.ErrNotFound when the code does not exist or was
	// already consumed, making single use atomic.
	Consume(ctx context.Context, code string) (*domain.DiscountCode, error)
	List(ctx context.Context) ([]domain.DiscountCode, error)
}
