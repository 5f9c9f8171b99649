package httpserver

import (
	"log"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

// buildRouter wires routes for the API.
func buildRouter(logger *log.Logger, db *pgxpool.Pool, deps Deps, corsOrigins string) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.LoggerWithWriter(logger.Writer()), gin.Recovery())
	router.Use(cors.New(corsConfig(corsOrigins)))

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(db))

	api := router.Group("/api")
	{
		api.GET("/products", listProductsHandler(deps.Products))

		api.GET("/cart/:userId", getCartHandler(deps.Carts))
		api.POST("/cart/:userId/add", addItemHandler(deps.Carts))
		api.POST("/cart/:userId/update", updateQuantityHandler(deps.Carts))
		api.POST("/cart/:userId/remove", removeItemHandler(deps.Carts))
		api.POST("/cart/:userId/apply-discount", applyDiscountHandler(deps.Carts))

		api.POST("/checkout/:userId", checkoutHandler(deps.Orders))

		api.GET("/admin/stats", adminStatsHandler(deps.Admin))
		api.POST("/admin/generate-discount", generateDiscountHandler(deps.Admin))
	}

	return router
}

func corsConfig(origins string) cors.Config {
	cfg := cors.DefaultConfig()
	cfg.AllowHeaders = append(cfg.AllowHeaders, "Content-Type", "Idempotency-Key")
	if origins == "" {
		cfg.AllowAllOrigins = true
		return cfg
	}
	for _, origin := range strings.Split(origins, ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.AllowOrigins = append(cfg.AllowOrigins, origin)
		}
	}
	return cfg
}
