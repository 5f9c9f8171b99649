package order

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"shopeasy/internal/checkout"
	"shopeasy/internal/domain"
)

// ValidationError carries the full per-field error map from the
// server-side recheck of the combined checkout schema.
type ValidationError struct {
	Fields checkout.Errors
}

func (e *ValidationError) Error() string {
	fields := make([]string, 0, len(e.Fields))
	for field := range e.Fields {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	return fmt.Sprintf("invalid checkout data: %s", strings.Join(fields, ", "))
}

// Service performs order submission: it revalidates the checkout data,
// snapshots the cart, stores the order (the repository empties the cart
// in the same transaction), and awards a fresh discount code on every
// Nth order. Requests carrying an already fulfilled idempotency key
// replay the stored order instead of creating a duplicate.
type Service struct {
	carts     cartService
	orders    orderRepo
	discounts discountRepo

	percent  float64
	interval int

	now func() time.Time
}

type cartService interface {
	Get(ctx context.Context, userID string) (*domain.Cart, error)
}

type orderRepo interface {
	// Create stores the order, empties the user's cart, and returns the
	// running order count atomically.
	Create(ctx context.Context, o domain.Order, idempotencyKey string) (int, error)
	GetByIdempotencyKey(ctx context.Context, key string) (*domain.Order, error)
}

type discountRepo interface {
	Create(ctx context.Context, code domain.DiscountCode) error
}

func New(carts cartService, orders orderRepo, discounts discountRepo, percent float64, interval int) *Service {
	return &Service{
		carts:     carts,
		orders:    orders,
		discounts: discounts,
		percent:   percent,
		interval:  interval,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// Submit performs one checkout for userID.
func (s *Service) Submit(ctx context.Context, userID string, shipping domain.ShippingAddress, payment domain.PaymentInfo, idempotencyKey string) (*domain.OrderResponse, error) {
	// The per-step gates ran client-side; the combined schema is
	// rechecked here because the server trusts nothing.
	if errs := checkout.Validate(checkout.Form{ShippingAddress: shipping, PaymentInfo: payment}); len(errs) > 0 {
		return nil, &ValidationError{Fields: errs}
	}

	if idempotencyKey != "" {
		existing, err := s.orders.GetByIdempotencyKey(ctx, idempotencyKey)
		if err == nil {
			// Already fulfilled: replay the stored order. The award code,
			// if any, was delivered on the original response.
			return &domain.OrderResponse{Order: *existing}, nil
		}
		if !errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}
	}

	cart, err := s.carts.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(cart.Items) == 0 {
		return nil, domain.ErrCartEmpty
	}

	order := domain.Order{
		ID:              uuid.NewString(),
		UserID:          userID,
		Items:           cart.Items,
		Total:           cart.Total,
		DiscountCode:    cart.DiscountCode,
		DiscountAmount:  cart.DiscountAmount,
		DiscountedTotal: cart.DiscountedTotal,
		ShippingAddress: shipping,
		PaymentInfo:     domain.MaskedPayment{CardNumber: maskCard(payment.CardNumber)},
		Timestamp:       s.now(),
		Status:          "completed",
	}

	count, err := s.orders.Create(ctx, order, idempotencyKey)
	if err != nil {
		return nil, err
	}

	resp := &domain.OrderResponse{Order: order}

	if s.interval > 0 && count%s.interval == 0 {
		code := domain.NewDiscountCode(s.percent, s.now())
		if err := s.discounts.Create(ctx, code); err != nil {
			return nil, err
		}
		resp.NewDiscountCode = code.Code
	}
	return resp, nil
}

func maskCard(number string) string {
	if len(number) <= 4 {
		return number
	}
	return strings.Repeat("*", len(number)-4) + number[len(number)-4:]
}
