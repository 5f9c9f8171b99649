// Package storefront holds the client-side state of the shop: the cart
// snapshot and its projections, the checkout draft and step machine, the
// app-wide cart-count signal, and the single-submission order flow.
package storefront

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"

	"shopeasy/internal/checkout"
	"shopeasy/internal/domain"
)

var (
	// ErrEmptyDiscountCode rejects an empty code locally, before any
	// network call.
	ErrEmptyDiscountCode = errors.New("please enter a discount code")
	// ErrSubmissionInFlight rejects a submit while one is outstanding.
	ErrSubmissionInFlight = errors.New("order submission already in progress")
	// ErrInvalidForm rejects a submit whose combined field set fails
	// validation; FieldErrors carries the per-field messages.
	ErrInvalidForm = errors.New("checkout form is invalid")
)

// shopAPI is the slice of the REST client the session needs.
type shopAPI interface {
	Products(ctx context.Context) ([]domain.Product, error)
	Cart(ctx context.Context, userID string) (*domain.Cart, error)
	AddItem(ctx context.Context, userID string, productID int64, quantity int) (*domain.Cart, error)
	UpdateQuantity(ctx context.Context, userID string, productID int64, quantity int) (*domain.Cart, error)
	RemoveItem(ctx context.Context, userID string, productID int64) (*domain.Cart, error)
	ApplyDiscount(ctx context.Context, userID, code string) (*domain.Cart, error)
	Checkout(ctx context.Context, userID string, shipping domain.ShippingAddress, payment domain.PaymentInfo, idempotencyKey string) (*domain.OrderResponse, error)
}

// Session is the per-user storefront state. Backend interactions are
// request/response round-trips; on failure the previous snapshot is
// retained. The session is safe for concurrent use, though the expected
// usage is a single event loop; the mutex mostly backs the flight guard.
type Session struct {
	api    shopAPI
	userID string
	counts *CountSignal

	mu          sync.Mutex
	cart        domain.Cart
	form        checkout.Form
	step        checkout.Step
	fieldErrors checkout.Errors
	inFlight    bool
	idemKey     string
	lastOrder   *domain.OrderResponse
}

func NewSession(api shopAPI, userID string) *Session {
	return &Session{
		api:    api,
		userID: userID,
		counts: NewCountSignal(),
		step:   checkout.StepShipping,
	}
}

// CartCount is the observable badge value; consumers subscribe to it.
func (s *Session) CartCount() *CountSignal {
	return s.counts
}

// Cart returns the last cart snapshot.
func (s *Session) Cart() domain.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart
}

// Step returns the current checkout step.
func (s *Session) Step() checkout.Step {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.step
}

// Form returns the current checkout draft.
func (s *Session) Form() checkout.Form {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.form
}

// SetForm replaces the checkout draft. The draft persists across step
// transitions; changing it does not reset the step.
func (s *Session) SetForm(form checkout.Form) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.form = form
}

// FieldErrors returns the per-field messages from the last rejected
// transition or submit, for inline rendering.
func (s *Session) FieldErrors() checkout.Errors {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.fieldErrors
}

// LastOrder returns the response of the completed submission, if any.
func (s *Session) LastOrder() *domain.OrderResponse {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastOrder
}

// Products fetches the catalog.
func (s *Session) Products(ctx context.Context) ([]domain.Product, error) {
	return s.api.Products(ctx)
}

// LoadCart fetches the cart snapshot and publishes the badge count. On
// failure the previous snapshot stays in place.
func (s *Session) LoadCart(ctx context.Context) error {
	cart, err := s.api.Cart(ctx, s.userID)
	if err != nil {
		return err
	}
	s.applyCart(*cart)
	return nil
}

// AddToCart adds quantity units of a product.
func (s *Session) AddToCart(ctx context.Context, productID int64, quantity int) error {
	cart, err := s.api.AddItem(ctx, s.userID, productID, quantity)
	if err != nil {
		return err
	}
	s.applyCart(*cart)
	return nil
}

// IncrementQuantity bumps a line by one unit.
func (s *Session) IncrementQuantity(ctx context.Context, productID int64) error {
	return s.setQuantity(ctx, productID, s.quantityOf(productID)+1)
}

// DecrementQuantity lowers a line by one unit, clamped at 1: the
// decrement control never eliminates an item. Removal is the separate
// explicit action.
func (s *Session) DecrementQuantity(ctx context.Context, productID int64) error {
	qty := s.quantityOf(productID)
	if qty <= 1 {
		return nil
	}
	return s.setQuantity(ctx, productID, qty-1)
}

// RemoveItem removes a line entirely.
func (s *Session) RemoveItem(ctx context.Context, productID int64) error {
	cart, err := s.api.RemoveItem(ctx, s.userID, productID)
	if err != nil {
		return err
	}
	s.applyCart(*cart)
	return nil
}

// ApplyDiscount applies a code to the cart. An empty code is rejected
// locally; otherwise the backend decides and the session just reflects
// the returned cart or surfaces the returned error.
func (s *Session) ApplyDiscount(ctx context.Context, code string) error {
	if code == "" {
		return ErrEmptyDiscountCode
	}
	cart, err := s.api.ApplyDiscount(ctx, s.userID, code)
	if err != nil {
		return err
	}
	s.applyCart(*cart)
	return nil
}

// Next advances the checkout one step if the current step's fields pass
// validation; otherwise the step stays and FieldErrors carries the full
// error map.
func (s *Session) Next() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	next, errs := checkout.Transition(s.step, checkout.ActionNext, s.form)
	moved := next != s.step
	s.step = next
	s.fieldErrors = errs
	return moved
}

// Back returns one step without validation or data loss.
func (s *Session) Back() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.step, _ = checkout.Transition(s.step, checkout.ActionBack, s.form)
	s.fieldErrors = nil
}

// Submit performs the single order submission. Preconditions: the step
// machine admits the submit (Review state, combined schema valid) and
// the cart is non-empty. At most one submission is ever in flight; a
// second call during flight returns ErrSubmissionInFlight without
// touching the network. The same idempotency key is reused while one
// draft is being retried, so a backend that already fulfilled it replays
// the stored order instead of creating a duplicate.
func (s *Session) Submit(ctx context.Context) (*domain.OrderResponse, error) {
	s.mu.Lock()
	if s.inFlight {
		s.mu.Unlock()
		return nil, ErrSubmissionInFlight
	}
	if len(s.cart.Items) == 0 {
		s.mu.Unlock()
		return nil, domain.ErrCartEmpty
	}
	next, errs := checkout.Transition(s.step, checkout.ActionSubmit, s.form)
	if next != checkout.StepSubmitting {
		s.fieldErrors = errs
		s.mu.Unlock()
		if len(errs) > 0 {
			return nil, ErrInvalidForm
		}
		return nil, errors.New("submit is only available from the review step")
	}
	s.step = next
	s.fieldErrors = nil
	s.inFlight = true
	if s.idemKey == "" {
		s.idemKey = uuid.NewString()
	}
	form := s.form
	key := s.idemKey
	s.mu.Unlock()

	resp, err := s.api.Checkout(ctx, s.userID, form.ShippingAddress, form.PaymentInfo, key)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.inFlight = false
	if err != nil {
		// Back to review, draft intact, same key for the retry.
		s.step, _ = checkout.Transition(s.step, checkout.ActionSubmitFailed, s.form)
		return nil, err
	}
	s.step, _ = checkout.Transition(s.step, checkout.ActionSubmitSucceeded, s.form)
	s.lastOrder = resp
	s.idemKey = ""
	s.cart = domain.Cart{}
	s.counts.Set(0)
	return resp, nil
}

func (s *Session) applyCart(cart domain.Cart) {
	s.mu.Lock()
	s.cart = cart
	s.mu.Unlock()
	s.counts.Set(ItemCount(cart))
}

func (s *Session) quantityOf(productID int64) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, item := range s.cart.Items {
		if item.ProductID == productID {
			return item.Quantity
		}
	}
	return 0
}

func (s *Session) setQuantity(ctx context.Context, productID int64, quantity int) error {
	cart, err := s.api.UpdateQuantity(ctx, s.userID, productID, quantity)
	if err != nil {
		return err
	}
	s.applyCart(*cart)
	return nil
}
