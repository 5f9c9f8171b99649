package httpserver

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"shopeasy/internal/domain"
)

// ProductService lists the catalog.
type ProductService interface {
	List(ctx context.Context) ([]domain.Product, error)
}

// CartService serves cart reads and mutations.
type CartService interface {
	Get(ctx context.Context, userID string) (*domain.Cart, error)
	AddItem(ctx context.Context, userID string, productID int64, quantity int) (*domain.Cart, error)
	UpdateQuantity(ctx context.Context, userID string, productID int64, quantity int) (*domain.Cart, error)
	RemoveItem(ctx context.Context, userID string, productID int64) (*domain.Cart, error)
	ApplyDiscount(ctx context.Context, userID, code string) (*domain.Cart, error)
}

// OrderService performs checkout submissions.
type OrderService interface {
	Submit(ctx context.Context, userID string, shipping domain.ShippingAddress, payment domain.PaymentInfo, idempotencyKey string) (*domain.OrderResponse, error)
}

// AdminService gates and serves the admin dashboard.
type AdminService interface {
	Authorize(key string) error
	Stats(ctx context.Context) (*domain.AdminStats, error)
	GenerateDiscount(ctx context.Context) (string, error)
}

// Deps are the services the router dispatches to.
type Deps struct {
	Products ProductService
	Carts    CartService
	Orders   OrderService
	Admin    AdminService
}

// Server wraps the HTTP server setup.
type Server struct {
	httpServer *http.Server
	logger     *log.Logger
	db         *pgxpool.Pool
}

// New builds a Server with the API routes.
func New(addr string, logger *log.Logger, db *pgxpool.Pool, deps Deps, corsOrigins string) (*Server, error) {
	router := buildRouter(logger, db, deps, corsOrigins)

	httpSrv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	return &Server{
		httpServer: httpSrv,
		logger:     logger,
		db:         db,
	}, nil
}

// ListenAndServe starts the HTTP server.
func (s *Server) ListenAndServe() error {
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

func healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func readyHandler(db *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		if db == nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "reason": "db not configured"})
			return
		}
		ctx, cancel := context.WithTimeout(c.Request.Context(), time.Second)
		defer cancel()
		if err := db.Ping(ctx); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "reason": "db not reachable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	}
}
