package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"shopeasy/internal/domain"
)

func listProductsHandler(products ProductService) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := products.List(c.Request.Context())
		if err != nil {
			respondError(c, err)
			return
		}
		if list == nil {
			list = []domain.Product{}
		}
		c.JSON(http.StatusOK, list)
	}
}
