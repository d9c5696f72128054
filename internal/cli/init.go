// Package cli provides the initialization steps shared by cmd/budgetd and
// cmd/budget-worker.
package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"budgetbook/internal/auth"
	"budgetbook/internal/config"
	applog "budgetbook/internal/log"
	"budgetbook/internal/storage"
)

// SetupLogger initializes structured logging and installs it as the default.
func SetupLogger() *applog.Logger {
	logger := applog.New(applog.DefaultConfig())
	applog.SetDefault(logger)
	return logger
}

// LoadEnvFile loads the .env file for local development. Errors are ignored
// silently as the file is optional in production.
func LoadEnvFile() {
	_ = godotenv.Load()
}

// LoadAndValidateConfig loads configuration and validates it, exiting the
// process on validation failure.
func LoadAndValidateConfig(logger *applog.Logger) *config.Config {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		logger.Error("Configuration validation failed", "error", err)
		os.Exit(1)
	}
	return cfg
}

// InitSessionStore builds the session store named by the config, exiting the
// process when the SQLite backend cannot be opened. The returned closer is a
// no-op for the memory backend.
func InitSessionStore(logger *applog.Logger, cfg *config.Config) (auth.SessionStore, func() error) {
	logger = logger.WithComponent(applog.ComponentStorage)
	switch cfg.SessionBackend {
	case "sqlite":
		store, err := storage.NewSQLiteSessionStore(cfg.SQLiteDBPath)
		if err != nil {
			logger.Error("Failed to initialize SQLite session store", "error", err, "path", cfg.SQLiteDBPath)
			os.Exit(1)
		}
		logger.Info("Using SQLite session store", "path", cfg.SQLiteDBPath)
		return store, store.Close
	default:
		logger.Info("Using in-memory session store")
		return storage.NewMemorySessionStore(), func() error { return nil }
	}
}

// GracefulShutdown sets up signal handling for graceful shutdown. It returns
// a context cancelled on SIGINT/SIGTERM and a channel closed once cleanup has
// run.
func GracefulShutdown(logger *applog.Logger, timeout time.Duration, cleanup func()) (context.Context, <-chan struct{}) {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigChan
		logger.Info("Shutdown signal received", "signal", sig.String())

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), timeout)
		defer shutdownCancel()

		if cleanup != nil {
			cleanup()
		}

		cancel()

		select {
		case <-shutdownCtx.Done():
			logger.Warn("Shutdown timeout reached")
		case <-time.After(2 * time.Second):
			logger.Info("Shutdown complete")
		}
		close(done)
	}()

	return ctx, done
}

// WaitForShutdown blocks until the context is cancelled and cleanup finished.
func WaitForShutdown(ctx context.Context, done <-chan struct{}) {
	<-ctx.Done()
	<-done
}
