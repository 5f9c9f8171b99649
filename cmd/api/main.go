package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"shopeasy/internal/config"
	"shopeasy/internal/db"
	"shopeasy/internal/httpserver"
	cartrepo "shopeasy/internal/repository/cart"
	discountrepo "shopeasy/internal/repository/discount"
	orderrepo "shopeasy/internal/repository/order"
	productrepo "shopeasy/internal/repository/product"
	adminsvc "shopeasy/internal/service/admin"
	cartsvc "shopeasy/internal/service/cart"
	ordersvc "shopeasy/internal/service/order"
	productsvc "shopeasy/internal/service/product"
)

func main() {
	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[api] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	ctx := context.Background()
	dbpool, err := db.Connect(ctx, cfg.DBConnString)
	if err != nil {
		logger.Fatalf("connect to db: %v", err)
	}
	defer dbpool.Close()

	productRepo := productrepo.NewPostgres(dbpool)
	cartRepo := cartrepo.NewPostgres(dbpool)
	discountRepo := discountrepo.NewPostgres(dbpool)
	orderRepo := orderrepo.NewPostgres(dbpool)

	productService := productsvc.New(productRepo)
	cartService := cartsvc.New(cartRepo, productRepo, discountRepo)
	orderService := ordersvc.New(cartService, orderRepo, discountRepo, cfg.DiscountPercent, cfg.DiscountOrderInterval)
	adminService := adminsvc.New(orderRepo, discountRepo, cfg.AdminKey, cfg.DiscountPercent)

	srv, err := httpserver.New(cfg.HTTPAddr, logger, dbpool, httpserver.Deps{
		Products: productService,
		Carts:    cartService,
		Orders:   orderService,
		Admin:    adminService,
	}, cfg.CORSOrigins)
	if err != nil {
		logger.Fatalf("init server: %v", err)
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Printf("starting http server on %s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stopCh:
		logger.Printf("received signal %s, shutting down", sig)
	case err := <-serverErr:
		logger.Printf("server error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Printf("graceful shutdown failed: %v", err)
	} else {
		logger.Printf("server stopped")
	}
}
