// Package main is the entry point for the guest bonus bot HTTP server.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/guestbonus/bonus-bot/internal/config"
	"github.com/guestbonus/bonus-bot/internal/dbpool"
	"github.com/guestbonus/bonus-bot/internal/handler"
	"github.com/guestbonus/bonus-bot/internal/middleware"
	"github.com/guestbonus/bonus-bot/internal/repository"
	"github.com/guestbonus/bonus-bot/internal/service"
	"github.com/guestbonus/bonus-bot/internal/telegram"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}
	defer func() {
		if syncErr := logger.Sync(); syncErr != nil {
			// Handle error silently
			_ = syncErr
		}
	}()

	cfg, err := config.LoadConfig("config.yaml")
	if err != nil {
		logger.Fatal("Failed to load configuration", zap.Error(err))
	}

	// The pool is constructed lazily on the first lookup; a webhook burst
	// right after start triggers exactly one construction.
	pools := dbpool.NewManager(&dbpool.Config{
		DSN:             cfg.Database.URL,
		MinSize:         cfg.Database.PoolMinSize,
		MaxSize:         cfg.Database.PoolMaxSize,
		ConnMaxLifetime: 5 * time.Minute,
	}, logger)
	defer func() {
		if err := pools.Close(); err != nil {
			logger.Error("Failed to close database pool", zap.Error(err))
		}
	}()

	tgClient := telegram.NewClient(&cfg.Telegram, logger)

	repo := repository.NewRepository(pools)
	svc := service.NewService(cfg, repo, tgClient, logger)

	h := handler.NewHandler(svc, tgClient, logger)

	router := setupRouter(h)

	middlewareConfig := &middleware.Config{
		Logger:         logger,
		RateLimit:      rate.Limit(cfg.Middleware.RateLimit),
		RateLimitBurst: cfg.Middleware.RateLimitBurst,
		RequestTimeout: 30 * time.Second,
	}

	finalHandler := middleware.Chain(middlewareConfig)(router)

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      finalHandler,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Register the webhook when a public URL is configured
	if cfg.Telegram.WebhookURL != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		if err := tgClient.SetWebhook(ctx, cfg.Telegram.WebhookURL); err != nil {
			logger.Error("Failed to register webhook", zap.Error(err))
		} else {
			logger.Info("Webhook registered", zap.String("url", cfg.Telegram.WebhookURL))
		}
		cancel()
	}

	// Start server in goroutine
	go func() {
		logger.Info("Starting server", zap.String("address", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	// Graceful shutdown: drain in-flight requests, then the deferred
	// pools.Close runs exactly once.
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exited")
}
