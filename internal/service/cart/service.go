package cart

import (
	"context"
	"errors"
	"math"
	"strings"

	"shopeasy/internal/domain"
	cartrepo "shopeasy/internal/repository/cart"
)

// Service owns cart reads and mutations. Totals are derived from the
// stored lines on every read, so the returned snapshot always satisfies
// total == sum(price x quantity); discount amounts are recomputed
// against the current subtotal as the cart changes.
type Service struct {
	repo      cartRepo
	products  productRepo
	discounts discountRepo
}

type cartRepo interface {
	Get(ctx context.Context, userID string) (*cartrepo.Snapshot, error)
	AddItem(ctx context.Context, userID string, product domain.Product, quantity int) error
	SetQuantity(ctx context.Context, userID string, productID int64, quantity int) error
	RemoveItem(ctx context.Context, userID string, productID int64) error
	SetDiscountCode(ctx context.Context, userID, code string) error
}

type productRepo interface {
	GetByID(ctx context.Context, id int64) (*domain.Product, error)
}

type discountRepo interface {
	GetByCode(ctx context.Context, code string) (*domain.DiscountCode, error)
	Consume(ctx context.Context, code string) (*domain.DiscountCode, error)
}

func New(repo cartRepo, products productRepo, discounts discountRepo) *Service {
	return &Service{repo: repo, products: products, discounts: discounts}
}

// Get returns the user's cart, creating an empty one on first fetch.
func (s *Service) Get(ctx context.Context, userID string) (*domain.Cart, error) {
	snap, err := s.repo.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.project(ctx, snap)
}

// AddItem adds quantity units of a product, merging into an existing line.
func (s *Service) AddItem(ctx context.Context, userID string, productID int64, quantity int) (*domain.Cart, error) {
	if quantity <= 0 {
		return nil, domain.ErrQuantityInvalid
	}
	product, err := s.products.GetByID(ctx, productID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrProductNotFound
		}
		return nil, err
	}
	if err := s.repo.AddItem(ctx, userID, *product, quantity); err != nil {
		return nil, err
	}
	return s.Get(ctx, userID)
}

// UpdateQuantity sets a line's quantity. A quantity of zero or less
// removes the line; quantities are never stored at zero.
func (s *Service) UpdateQuantity(ctx context.Context, userID string, productID int64, quantity int) (*domain.Cart, error) {
	if err := s.repo.SetQuantity(ctx, userID, productID, quantity); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrItemNotInCart
		}
		return nil, err
	}
	return s.Get(ctx, userID)
}

// RemoveItem deletes a line entirely.
func (s *Service) RemoveItem(ctx context.Context, userID string, productID int64) (*domain.Cart, error) {
	if err := s.repo.RemoveItem(ctx, userID, productID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrItemNotInCart
		}
		return nil, err
	}
	return s.Get(ctx, userID)
}

// ApplyDiscount consumes a single-use code and attaches it to the cart.
// An unknown or already-used code is rejected without mutating anything.
func (s *Service) ApplyDiscount(ctx context.Context, userID, code string) (*domain.Cart, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, domain.ErrDiscountInvalid
	}
	if _, err := s.discounts.Consume(ctx, code); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrDiscountInvalid
		}
		return nil, err
	}
	if err := s.repo.SetDiscountCode(ctx, userID, code); err != nil {
		return nil, err
	}
	return s.Get(ctx, userID)
}

func (s *Service) project(ctx context.Context, snap *cartrepo.Snapshot) (*domain.Cart, error) {
	cart := &domain.Cart{Items: snap.Items}
	if cart.Items == nil {
		cart.Items = []domain.CartItem{}
	}

	total := 0.0
	for _, item := range cart.Items {
		total += item.Price * float64(item.Quantity)
	}
	cart.Total = roundCents(total)

	if snap.DiscountCode != "" {
		dc, err := s.discounts.GetByCode(ctx, snap.DiscountCode)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return cart, nil
			}
			return nil, err
		}
		cart.DiscountCode = dc.Code
		cart.DiscountAmount = roundCents(cart.Total * dc.Discount / 100)
		cart.DiscountedTotal = roundCents(cart.Total - cart.DiscountAmount)
	}
	return cart, nil
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
