package admin

import (
	"context"
	"crypto/subtle"
	"time"

	"shopeasy/internal/domain"
	orderrepo "shopeasy/internal/repository/order"
)

// Service backs the admin dashboard: key gating, aggregate stats, and
// manual discount generation.
type Service struct {
	orders    orderRepo
	discounts discountRepo
	adminKey  string
	percent   float64
	now       func() time.Time
}

type orderRepo interface {
	Totals(ctx context.Context) (*orderrepo.Totals, error)
}

type discountRepo interface {
	Create(ctx context.Context, code domain.DiscountCode) error
	List(ctx context.Context) ([]domain.DiscountCode, error)
}

func New(orders orderRepo, discounts discountRepo, adminKey string, percent float64) *Service {
	return &Service{
		orders:    orders,
		discounts: discounts,
		adminKey:  adminKey,
		percent:   percent,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// Authorize checks the supplied key. The returned error never says
// whether the key's format or value was wrong.
func (s *Service) Authorize(key string) error {
	if subtle.ConstantTimeCompare([]byte(key), []byte(s.adminKey)) != 1 {
		return domain.ErrUnauthorized
	}
	return nil
}

// Stats aggregates the dashboard read model.
func (s *Service) Stats(ctx context.Context) (*domain.AdminStats, error) {
	totals, err := s.orders.Totals(ctx)
	if err != nil {
		return nil, err
	}
	codes, err := s.discounts.List(ctx)
	if err != nil {
		return nil, err
	}
	if codes == nil {
		codes = []domain.DiscountCode{}
	}
	return &domain.AdminStats{
		ItemsPurchased:      totals.ItemsPurchased,
		TotalPurchaseAmount: totals.TotalPurchaseAmount,
		TotalDiscountAmount: totals.TotalDiscountAmount,
		TotalOrders:         totals.TotalOrders,
		DiscountCodes:       codes,
	}, nil
}

// GenerateDiscount mints a new unused code on admin request.
func (s *Service) GenerateDiscount(ctx context.Context) (string, error) {
	code := domain.NewDiscountCode(s.percent, s.now())
	if err := s.discounts.Create(ctx, code); err != nil {
		return "", err
	}
	return code.Code, nil
}
