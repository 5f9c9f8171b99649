package domain

import "errors"

var (
	// ErrNotFound indicates the requested entity was not found.
	ErrNotFound = errors.New("not found")
	// ErrCartEmpty rejects checkout of a cart with no items.
	ErrCartEmpty = errors.New("cart is empty")
	// ErrDiscountInvalid rejects an unknown or already used discount code.
	ErrDiscountInvalid = errors.New("invalid or expired discount code")
	// ErrProductNotFound rejects a cart mutation naming an unknown product.
	ErrProductNotFound = errors.New("product not found")
	// ErrItemNotInCart rejects a quantity change or removal of a line the
	// cart does not hold.
	ErrItemNotInCart = errors.New("item not in cart")
	// ErrQuantityInvalid rejects an add with a non-positive quantity.
	ErrQuantityInvalid = errors.New("quantity must be positive")
	// ErrUnauthorized rejects an admin request with a wrong key. The
	// message deliberately does not say whether format or value failed.
	ErrUnauthorized = errors.New("unauthorized")
)
