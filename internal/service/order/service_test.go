package order

import (
	"context"
	"errors"
	"strings"
	"testing"

	"shopeasy/internal/checkout"
	"shopeasy/internal/domain"
)

type stubCarts struct {
	cart   *domain.Cart
	getErr error
}

func (s *stubCarts) Get(_ context.Context, _ string) (*domain.Cart, error) {
	if s.getErr != nil {
		return nil, s.getErr
	}
	return s.cart, nil
}

type stubOrders struct {
	created     []domain.Order
	createdKeys []string
	clearedFor  []string
	createErr   error
	byKey       *domain.Order
}

func (s *stubOrders) Create(_ context.Context, o domain.Order, key string) (int, error) {
	if s.createErr != nil {
		return 0, s.createErr
	}
	s.created = append(s.created, o)
	s.createdKeys = append(s.createdKeys, key)
	s.clearedFor = append(s.clearedFor, o.UserID)
	return len(s.created), nil
}

func (s *stubOrders) GetByIdempotencyKey(_ context.Context, _ string) (*domain.Order, error) {
	if s.byKey == nil {
		return nil, domain.ErrNotFound
	}
	return s.byKey, nil
}

type stubDiscounts struct {
	created []domain.DiscountCode
}

func (s *stubDiscounts) Create(_ context.Context, code domain.DiscountCode) error {
	s.created = append(s.created, code)
	return nil
}

func validShipping() domain.ShippingAddress {
	return domain.ShippingAddress{
		Name: "Jane Doe", Email: "jane@example.com", Address: "1 Main St",
		City: "Springfield", ZipCode: "12345",
	}
}

func validPayment() domain.PaymentInfo {
	return domain.PaymentInfo{CardNumber: "4242424242424242", CardExpiry: "01/26", CardCvv: "123"}
}

func filledCart() *domain.Cart {
	return &domain.Cart{
		Items: []domain.CartItem{
			{ProductID: 1, Name: "Tee", Price: 10, Quantity: 2},
			{ProductID: 2, Name: "Mug", Price: 5, Quantity: 1},
		},
		Total: 25,
	}
}

func TestSubmitRevalidatesCombinedSchema(t *testing.T) {
	svc := New(&stubCarts{cart: filledCart()}, &stubOrders{}, &stubDiscounts{}, 10, 3)

	payment := validPayment()
	payment.CardExpiry = "13/25"
	_, err := svc.Submit(context.Background(), "user-123", validShipping(), payment, "")
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if verr.Fields[checkout.FieldCardExpiry] != "Format must be MM/YY" {
		t.Fatalf("unexpected fields: %v", verr.Fields)
	}
	if !strings.Contains(verr.Error(), "cardExpiry") {
		t.Fatalf("expected field name in message, got %q", verr.Error())
	}
}

func TestSubmitRejectsEmptyCart(t *testing.T) {
	svc := New(&stubCarts{cart: &domain.Cart{}}, &stubOrders{}, &stubDiscounts{}, 10, 3)
	_, err := svc.Submit(context.Background(), "user-123", validShipping(), validPayment(), "")
	if !errors.Is(err, domain.ErrCartEmpty) {
		t.Fatalf("expected ErrCartEmpty, got %v", err)
	}
}

func TestSubmitSnapshotsCartAndMasksCard(t *testing.T) {
	carts := &stubCarts{cart: filledCart()}
	carts.cart.DiscountCode = "SAVE10-AAAA"
	carts.cart.DiscountAmount = 2.5
	carts.cart.DiscountedTotal = 22.5
	orders := &stubOrders{}
	svc := New(carts, orders, &stubDiscounts{}, 10, 3)

	resp, err := svc.Submit(context.Background(), "user-123", validShipping(), validPayment(), "key-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	o := resp.Order
	if o.ID == "" || o.UserID != "user-123" || o.Status != "completed" {
		t.Fatalf("unexpected order: %+v", o)
	}
	if o.Total != 25 || o.DiscountAmount != 2.5 || o.DiscountedTotal != 22.5 {
		t.Fatalf("totals not snapshotted: %+v", o)
	}
	if o.PaymentInfo.CardNumber != "************4242" {
		t.Fatalf("expected masked card, got %q", o.PaymentInfo.CardNumber)
	}
	if len(orders.clearedFor) != 1 || orders.clearedFor[0] != "user-123" {
		t.Fatalf("expected cart emptied with the order, got %v", orders.clearedFor)
	}
	if len(orders.createdKeys) != 1 || orders.createdKeys[0] != "key-1" {
		t.Fatalf("expected idempotency key stored, got %v", orders.createdKeys)
	}
}

func TestSubmitReplaysFulfilledIdempotencyKey(t *testing.T) {
	stored := domain.Order{ID: "ord-1", UserID: "user-123", Total: 25, Status: "completed"}
	carts := &stubCarts{cart: filledCart()}
	orders := &stubOrders{byKey: &stored}
	svc := New(carts, orders, &stubDiscounts{}, 10, 3)

	resp, err := svc.Submit(context.Background(), "user-123", validShipping(), validPayment(), "key-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Order.ID != "ord-1" {
		t.Fatalf("expected stored order replayed, got %+v", resp.Order)
	}
	if len(orders.created) != 0 || len(orders.clearedFor) != 0 {
		t.Fatalf("replay must not create orders or touch carts")
	}
}

// A failed submission must leave no partial state behind: no stored
// order means the retry takes the full path again, and the cart is
// only emptied together with the order that consumes it.
func TestSubmitRetryAfterStorageFailure(t *testing.T) {
	carts := &stubCarts{cart: filledCart()}
	carts.cart.DiscountCode = "SAVE10-AAAA"
	orders := &stubOrders{createErr: errors.New("connection reset by peer")}
	svc := New(carts, orders, &stubDiscounts{}, 10, 3)

	if _, err := svc.Submit(context.Background(), "user-123", validShipping(), validPayment(), "key-1"); err == nil {
		t.Fatal("expected error from failed submission")
	}
	if len(orders.created) != 0 || len(orders.clearedFor) != 0 {
		t.Fatalf("failed submission must store nothing and leave the cart alone")
	}

	orders.createErr = nil
	resp, err := svc.Submit(context.Background(), "user-123", validShipping(), validPayment(), "key-1")
	if err != nil {
		t.Fatalf("retry: unexpected error: %v", err)
	}
	if resp.Order.DiscountCode != "SAVE10-AAAA" {
		t.Fatalf("retry must consume the original cart, got %+v", resp.Order)
	}
	if len(orders.created) != 1 || len(orders.clearedFor) != 1 {
		t.Fatalf("retry must store exactly one order and empty the cart with it")
	}
	if orders.createdKeys[0] != "key-1" {
		t.Fatalf("retry must reuse the idempotency key, got %v", orders.createdKeys)
	}
}

func TestSubmitAwardsDiscountOnEveryNthOrder(t *testing.T) {
	carts := &stubCarts{cart: filledCart()}
	orders := &stubOrders{}
	discounts := &stubDiscounts{}
	svc := New(carts, orders, discounts, 10, 3)

	var awarded []string
	for i := 0; i < 6; i++ {
		resp, err := svc.Submit(context.Background(), "user-123", validShipping(), validPayment(), "")
		if err != nil {
			t.Fatalf("order %d: unexpected error: %v", i+1, err)
		}
		if resp.NewDiscountCode != "" {
			awarded = append(awarded, resp.NewDiscountCode)
		}
	}
	// Orders 3 and 6 award a code.
	if len(awarded) != 2 || len(discounts.created) != 2 {
		t.Fatalf("expected 2 awards over 6 orders, got %v", awarded)
	}
	for _, code := range awarded {
		if !strings.HasPrefix(code, "SAVE10-") {
			t.Fatalf("unexpected code format %q", code)
		}
	}
}

func TestSubmitNoAwardWhenIntervalDisabled(t *testing.T) {
	svc := New(&stubCarts{cart: filledCart()}, &stubOrders{}, &stubDiscounts{}, 10, 0)
	resp, err := svc.Submit(context.Background(), "user-123", validShipping(), validPayment(), "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.NewDiscountCode != "" {
		t.Fatalf("expected no award, got %q", resp.NewDiscountCode)
	}
}
