package storefront

import "shopeasy/internal/domain"

// ItemCount is the app-wide cart badge value: the sum of line quantities.
func ItemCount(cart domain.Cart) int {
	count := 0
	for _, item := range cart.Items {
		count += item.Quantity
	}
	return count
}

// LineTotal is the display total of one cart line.
func LineTotal(item domain.CartItem) float64 {
	return item.Price * float64(item.Quantity)
}

// DisplayTotal is the amount the storefront shows as "Total". A
// discounted total of exactly 0 falls back to the pre-discount total;
// that matches the source UI's `discountedTotal || total` and is locked
// in by tests as a known boundary behavior.
func DisplayTotal(cart domain.Cart) float64 {
	if cart.DiscountedTotal != 0 {
		return cart.DiscountedTotal
	}
	return cart.Total
}

// Summary is the order-summary block: subtotal, the discount row (shown
// only when HasDiscount), and the display total.
type Summary struct {
	Subtotal    float64
	Discount    float64
	Total       float64
	HasDiscount bool
}

// Summarize projects a cart snapshot into its order summary. HasDiscount
// mirrors the source's truthiness check on discountAmount: a zero
// discount hides the row.
func Summarize(cart domain.Cart) Summary {
	return Summary{
		Subtotal:    cart.Total,
		Discount:    cart.DiscountAmount,
		Total:       DisplayTotal(cart),
		HasDiscount: cart.DiscountAmount != 0,
	}
}
