package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"time"

	"budgetbook/internal/auth"
	"budgetbook/internal/cli"
	"budgetbook/internal/events"
	apphttp "budgetbook/internal/http"
	"budgetbook/internal/ledger"
)

func main() {
	cli.LoadEnvFile()
	logger := cli.SetupLogger()

	logger.Info("Starting budgetd")

	cfg := cli.LoadAndValidateConfig(logger)

	sessions, closeSessions := cli.InitSessionStore(logger, cfg)
	defer func() {
		if err := closeSessions(); err != nil {
			logger.Error("Failed to close session store", "error", err)
		}
	}()

	book := ledger.New()
	authSvc := auth.New(sessions, cfg.LoginDelay)

	// Event publishing is optional; without a broker URL mutations stay local.
	var eventsClient *events.Client
	if cfg.AMQPURL != "" {
		var err error
		eventsClient, err = events.NewClient(cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPQueue)
		if err != nil {
			logger.Error("Failed to initialize AMQP client", "error", err)
			os.Exit(1)
		}
		defer eventsClient.Close()
		events.Forward(book, eventsClient)
		logger.Info("Event publishing enabled", "exchange", cfg.AMQPExchange)
	} else {
		logger.Info("Event publishing disabled - no AMQP_URL provided")
	}

	srv := apphttp.NewServer(":"+cfg.Port, book, authSvc, apphttp.Options{
		CacheSize: cfg.CacheSize,
		CacheTTL:  cfg.CacheTTL,
	})
	srv.ReadTimeout = 10 * time.Second
	srv.WriteTimeout = 10 * time.Second
	srv.IdleTimeout = 60 * time.Second
	srv.MaxHeaderBytes = 1 << 16 // 64KB

	ctx, done := cli.GracefulShutdown(logger, 30*time.Second, func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("Server shutdown error", "error", err)
		}
	})

	logger.Info("Starting budgetd server", "port", cfg.Port, "sessions", cfg.SessionBackend)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("Server error", "error", err, "port", cfg.Port)
		os.Exit(1)
	}

	cli.WaitForShutdown(ctx, done)
	slog.Info("Server stopped gracefully")
}
