package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"shopeasy/internal/domain"
)

type checkoutRequest struct {
	ShippingAddress domain.ShippingAddress `json:"shippingAddress"`
	PaymentInfo     domain.PaymentInfo     `json:"paymentInfo"`
}

func checkoutHandler(orders OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req checkoutRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondBadRequest(c, err)
			return
		}
		resp, err := orders.Submit(
			c.Request.Context(),
			c.Param("userId"),
			req.ShippingAddress,
			req.PaymentInfo,
			c.GetHeader("Idempotency-Key"),
		)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, resp)
	}
}
