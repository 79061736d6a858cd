package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/quotienthq/quotient-api/internal/config"
	"github.com/quotienthq/quotient-api/internal/db"
	"github.com/quotienthq/quotient-api/internal/handlers"
	"github.com/quotienthq/quotient-api/internal/logger"
	"github.com/quotienthq/quotient-api/internal/processor/stripe"
	"github.com/quotienthq/quotient-api/internal/server"
	"github.com/quotienthq/quotient-api/internal/services"
	"github.com/quotienthq/quotient-api/internal/webhook"
)

func main() {
	stage, err := config.Stage()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	logger.InitLogger(stage)
	defer logger.Sync()

	ctx := context.Background()

	cfg, err := config.Load(ctx, stage)
	if err != nil {
		logger.Fatal("Failed to load configuration", zap.Error(err))
	}

	poolConfig, err := pgxpool.ParseConfig(cfg.DatabaseURL)
	if err != nil {
		logger.Fatal("Failed to parse database config", zap.Error(err))
	}
	poolConfig.MaxConns = 10
	poolConfig.MinConns = 2
	poolConfig.MaxConnLifetime = time.Hour
	poolConfig.MaxConnIdleTime = 30 * time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		logger.Fatal("Failed to create database pool", zap.Error(err))
	}
	defer pool.Close()

	if err := pool.Ping(ctx); err != nil {
		logger.Fatal("Failed to reach database", zap.Error(err))
	}
	logger.Info("Database connection established")

	queries := db.New(pool)

	stripeService := stripe.NewService(cfg.StripeAPIKey, cfg.StripeWebhookSecret, logger.Log)

	dedupService := services.NewCustomerDedupService(queries, stripeService)
	syncService := services.NewSubscriptionSyncService(queries, stripeService, dedupService)
	batchService := services.NewBatchJobService(queries)

	eventRouter := webhook.NewRouter(queries, stripeService)
	server.RegisterEventRoutes(eventRouter, syncService)

	deadLetterService := services.NewDeadLetterService(queries, eventRouter)
	monitoringService := services.NewMonitoringService(queries, eventRouter.Targets())

	engine := server.New(server.Dependencies{
		Config:      cfg,
		Pool:        pool,
		Router:      eventRouter,
		Verifier:    stripeService,
		Common:      handlers.NewCommonServices(queries),
		Sync:        syncService,
		Dedup:       dedupService,
		Batches:     batchService,
		DeadLetters: deadLetterService,
		Monitoring:  monitoringService,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("Starting API server", zap.String("port", cfg.Port), zap.String("stage", stage))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server shutdown failed", zap.Error(err))
	}

	// Let in-flight batch jobs reach a terminal state before the pool closes.
	batchService.Wait()

	logger.Info("Server stopped")
}
