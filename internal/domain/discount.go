package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// DiscountCode is a single-use percentage-off token. It is consumed
// (Used set) at most once, when applied to a cart.
type DiscountCode struct {
	Code        string    `json:"code"`
	Used        bool      `json:"used"`
	Discount    float64   `json:"discount"`
	GeneratedAt time.Time `json:"generatedAt"`
}

// NewDiscountCode mints an unused percentage-off token with a readable
// prefix, e.g. SAVE10-3F2A9C41.
func NewDiscountCode(percent float64, now time.Time) DiscountCode {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
	return DiscountCode{
		Code:        fmt.Sprintf("SAVE%d-%s", int(percent), suffix),
		Discount:    percent,
		GeneratedAt: now,
	}
}

// AdminStats is the backend-owned aggregate read model for the admin
// dashboard.
type AdminStats struct {
	ItemsPurchased      int            `json:"itemsPurchased"`
	TotalPurchaseAmount float64        `json:"totalPurchaseAmount"`
	TotalDiscountAmount float64        `json:"totalDiscountAmount"`
	TotalOrders         int            `json:"totalOrders"`
	DiscountCodes       []DiscountCode `json:"discountCodes"`
}
