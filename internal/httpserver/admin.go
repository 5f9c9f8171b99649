package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type generateDiscountRequest struct {
	AdminKey string `json:"adminKey"`
}

func adminStatsHandler(admin AdminService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := admin.Authorize(c.Query("adminKey")); err != nil {
			respondError(c, err)
			return
		}
		stats, err := admin.Stats(c.Request.Context())
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, stats)
	}
}

func generateDiscountHandler(admin AdminService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req generateDiscountRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondBadRequest(c, err)
			return
		}
		if err := admin.Authorize(req.AdminKey); err != nil {
			respondError(c, err)
			return
		}
		code, err := admin.GenerateDiscount(c.Request.Context())
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"discountCode": code})
	}
}
