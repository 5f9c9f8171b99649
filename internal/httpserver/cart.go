package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type addItemRequest struct {
	ProductID int64 `json:"productId" binding:"required"`
	Quantity  int   `json:"quantity"`
}

type updateQuantityRequest struct {
	ProductID int64 `json:"productId" binding:"required"`
	Quantity  int   `json:"quantity"`
}

type removeItemRequest struct {
	ProductID int64 `json:"productId" binding:"required"`
}

type applyDiscountRequest struct {
	DiscountCode string `json:"discountCode"`
}

func getCartHandler(carts CartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		cart, err := carts.Get(c.Request.Context(), c.Param("userId"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, cart)
	}
}

func addItemHandler(carts CartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req addItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondBadRequest(c, err)
			return
		}
		cart, err := carts.AddItem(c.Request.Context(), c.Param("userId"), req.ProductID, req.Quantity)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, cart)
	}
}

func updateQuantityHandler(carts CartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req updateQuantityRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondBadRequest(c, err)
			return
		}
		cart, err := carts.UpdateQuantity(c.Request.Context(), c.Param("userId"), req.ProductID, req.Quantity)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, cart)
	}
}

func removeItemHandler(carts CartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req removeItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondBadRequest(c, err)
			return
		}
		cart, err := carts.RemoveItem(c.Request.Context(), c.Param("userId"), req.ProductID)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, cart)
	}
}

func applyDiscountHandler(carts CartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req applyDiscountRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondBadRequest(c, err)
			return
		}
		cart, err := carts.ApplyDiscount(c.Request.Context(), c.Param("userId"), req.DiscountCode)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, cart)
	}
}
