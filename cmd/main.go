package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/webshop/order-history-service/internal/cache"
	"github.com/webshop/order-history-service/internal/config"
	"github.com/webshop/order-history-service/internal/db"
	"github.com/webshop/order-history-service/internal/events"
	"github.com/webshop/order-history-service/internal/history"
	httpserver "github.com/webshop/order-history-service/internal/http"
	"github.com/webshop/order-history-service/internal/order"
)

func main() {
	logger := log.New(os.Stdout, "[order-history] ", log.LstdFlags|log.Lshortfile)

	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("load config: %v", err)
	}

	// DB
	if err := db.RunMigrations(cfg.Postgres.DSN, logger); err != nil {
		logger.Fatalf("migrate: %v", err)
	}
	database := db.MustOpen(cfg.Postgres.DSN)

	var orderRepo order.Repository = order.NewRepository(database)

	// Context for consumer
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Optional read cache for the per-user order list
	if cfg.Redis.Addr != "" {
		redisCache, err := cache.New(ctx, cfg.Redis.Addr, cfg.Redis.TTL)
		if err != nil {
			logger.Fatalf("connect redis: %v", err)
		}
		defer redisCache.Close()
		orderRepo = order.NewCachedRepository(orderRepo, redisCache, logger)
	}

	// RabbitMQ
	rabbitConn := events.MustDialRabbit(cfg.Rabbit.URL)
	defer rabbitConn.Close()

	handler := events.CheckoutCompletedHandler(orderRepo, logger)
	if err := events.StartCheckoutCompletedConsumer(ctx, rabbitConn, handler, logger); err != nil {
		logger.Fatalf("start consumer: %v", err)
	}

	// HTTP
	queries := history.NewQueries(orderRepo)
	mux := httpserver.NewRouter(queries, cfg.Auth.JWTSecret)

	srv := &http.Server{
		Addr:         cfg.HTTP.Addr,
		Handler:      mux,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go func() {
		logger.Printf("order-history-service listening on %s", cfg.HTTP.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatalf("server error: %v", err)
		}
	}()

	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop
	logger.Println("shutting down...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	_ = srv.Shutdown(shutdownCtx)
	cancel()
}
