package domain

import "time"

// MaskedPayment is the only payment detail an order retains: the card
// number reduced to its last four digits.
type MaskedPayment struct {
	CardNumber string `json:"cardNumber"`
}

// Order is the immutable record created by a successful checkout. Items
// and totals are snapshotted at submission time.
type Order struct {
	ID              string          `json:"id"`
	UserID          string          `json:"userId"`
	Items           []CartItem      `json:"items"`
	Total           float64         `json:"total"`
	DiscountCode    string          `json:"discountCode,omitempty"`
	DiscountAmount  float64         `json:"discountAmount,omitempty"`
	DiscountedTotal float64         `json:"discountedTotal,omitempty"`
	ShippingAddress ShippingAddress `json:"shippingAddress"`
	PaymentInfo     MaskedPayment   `json:"paymentInfo"`
	Timestamp       time.Time       `json:"timestamp"`
	Status          string          `json:"status"`
}

// OrderResponse is the checkout reply: the stored order plus, on award
// orders, a freshly minted discount code for the next purchase.
type OrderResponse struct {
	Order           Order  `json:"order"`
	NewDiscountCode string `json:"newDiscountCode,omitempty"`
}
