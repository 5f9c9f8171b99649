package domain

// CartItem is one line of a cart. Quantity is always >= 1; a line whose
// quantity would drop to zero is removed instead of stored.
type CartItem struct {
	ProductID int64   `json:"productId"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
}

// Cart is the server-held snapshot for one user: the item list plus
// totals computed from it on every read, so Total always equals the sum
// of line totals. The discount fields are zero when no code is applied;
// omitempty keeps them off the wire in that case.
type Cart struct {
	Items           []CartItem `json:"items"`
	Total           float64    `json:"total"`
	DiscountCode    string     `json:"discountCode,omitempty"`
	DiscountAmount  float64    `json:"discountAmount,omitempty"`
	DiscountedTotal float64    `json:"discountedTotal,omitempty"`
}

// ShippingAddress carries the checkout shipping fields. All fields are
// required; ZipCode must be 5 digits with an optional +4 suffix.
type ShippingAddress struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Address string `json:"address"`
	City    string `json:"city"`
	ZipCode string `json:"zipCode"`
}

// PaymentInfo carries the raw checkout payment fields. It is never
// persisted in full; orders keep only a masked card number.
type PaymentInfo struct {
	CardNumber string `json:"cardNumber"`
	CardExpiry string `json:"cardExpiry"`
	CardCvv    string `json:"cardCvv"`
}
