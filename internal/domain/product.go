package domain

import "time"

// Product is an immutable catalog entry. Prices are decimal dollars,
// matching the wire format the storefront renders.
type Product struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Price     float64   `json:"price"`
	Image     string    `json:"image"`
	CreatedAt time.Time `json:"-"`
}
