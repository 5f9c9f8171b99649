package storefront

import (
	"testing"

	"shopeasy/internal/domain"
)

func TestItemCount(t *testing.T) {
	cases := []struct {
		name string
		cart domain.Cart
		want int
	}{
		{"empty", domain.Cart{}, 0},
		{"single line", domain.Cart{Items: []domain.CartItem{{Quantity: 3}}}, 3},
		{"multiple lines", domain.Cart{Items: []domain.CartItem{{Quantity: 2}, {Quantity: 1}, {Quantity: 4}}}, 7},
	}
	for _, tc := range cases {
		if got := ItemCount(tc.cart); got != tc.want {
			t.Errorf("%s: expected %d, got %d", tc.name, tc.want, got)
		}
	}
}

func TestLineTotal(t *testing.T) {
	item := domain.CartItem{Price: 10, Quantity: 2}
	if got := LineTotal(item); got != 20 {
		t.Fatalf("expected 20, got %v", got)
	}
}

func TestDisplayTotalPrefersDiscountedTotal(t *testing.T) {
	cart := domain.Cart{Total: 25, DiscountAmount: 2.5, DiscountedTotal: 22.5}
	if got := DisplayTotal(cart); got != 22.5 {
		t.Fatalf("expected 22.5, got %v", got)
	}
}

func TestDisplayTotalWithoutDiscount(t *testing.T) {
	cart := domain.Cart{Total: 25}
	if got := DisplayTotal(cart); got != 25 {
		t.Fatalf("expected 25, got %v", got)
	}
}

// A discounted total of exactly 0 is indistinguishable from "no
// discount" and falls back to the pre-discount total. That is the
// source behavior (a truthiness fallback) and the deliberate, documented
// boundary: a 100%-off cart displays its full total.
func TestDisplayTotalZeroBoundaryFallsBack(t *testing.T) {
	cart := domain.Cart{Total: 25, DiscountAmount: 25, DiscountedTotal: 0}
	if got := DisplayTotal(cart); got != 25 {
		t.Fatalf("expected fallback to 25 on zero discounted total, got %v", got)
	}
}

func TestSummarize(t *testing.T) {
	cart := domain.Cart{
		Items: []domain.CartItem{
			{Price: 10, Quantity: 2},
			{Price: 5, Quantity: 1},
		},
		Total:           25,
		DiscountCode:    "SAVE10-AAAA",
		DiscountAmount:  2.5,
		DiscountedTotal: 22.5,
	}
	sum := Summarize(cart)
	if sum.Subtotal != 25 || sum.Discount != 2.5 || sum.Total != 22.5 || !sum.HasDiscount {
		t.Fatalf("unexpected summary: %+v", sum)
	}

	plain := Summarize(domain.Cart{Total: 9.99})
	if plain.HasDiscount || plain.Total != 9.99 {
		t.Fatalf("unexpected summary: %+v", plain)
	}
}
