package httpserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"shopeasy/internal/domain"
	ordersvc "shopeasy/internal/service/order"
)

// respondError writes the API's single error shape: {"error": message}.
// The status is derived from the error's kind; unknown errors become an
// opaque 500 so internals never leak onto the wire.
func respondError(c *gin.Context, err error) {
	var verr *ordersvc.ValidationError
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, gin.H{"error": verr.Error(), "fields": verr.Fields})
	case errors.Is(err, domain.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrCartEmpty),
		errors.Is(err, domain.ErrDiscountInvalid),
		errors.Is(err, domain.ErrProductNotFound),
		errors.Is(err, domain.ErrItemNotInCart),
		errors.Is(err, domain.ErrQuantityInvalid):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

// respondBadRequest is for request-shape problems (malformed JSON,
// missing fields) where the error text is safe to echo.
func respondBadRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
}
