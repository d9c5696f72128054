package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"budgetbook/internal/cli"
	"budgetbook/internal/events"
	ports "budgetbook/internal/export"
	gsheet "budgetbook/internal/export/google"
	mem "budgetbook/internal/export/memory"
	applog "budgetbook/internal/log"
)

func main() {
	cli.LoadEnvFile()
	logger := cli.SetupLogger()

	logger.Info("Starting budget-worker")

	cfg := cli.LoadAndValidateConfig(logger)
	logger = logger.WithComponent(applog.ComponentWorker)
	if cfg.AMQPURL == "" {
		logger.Error("AMQP_URL is required for the worker")
		os.Exit(1)
	}

	// Choose the export destination. Without a spreadsheet id rows accumulate
	// in memory, which keeps the consumer loop testable locally.
	var writer ports.TransactionWriter
	if cfg.GoogleSpreadsheetID != "" {
		client, err := gsheet.NewFromEnv(context.Background())
		if err != nil {
			logger.Error("Failed to initialize Google Sheets client", "error", err)
			os.Exit(1)
		}
		writer = client
		logger.Info("Google Sheets export enabled", "spreadsheet_id", cfg.GoogleSpreadsheetID)
	} else {
		writer = mem.New()
		logger.Info("Google Sheets disabled - no GOOGLE_SPREADSHEET_ID provided, using memory export")
	}

	amqpClient, err := events.NewClient(cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPQueue)
	if err != nil {
		logger.Error("Failed to initialize AMQP client", "error", err)
		os.Exit(1)
	}
	defer amqpClient.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return amqpClient.ConsumeTransactionEvents(gctx, func(ev *events.TransactionEvent) error {
			rowCtx, rowCancel := context.WithTimeout(gctx, 30*time.Second)
			defer rowCancel()

			ref, err := writer.Append(rowCtx, ev.Action, ev.Transaction)
			if err != nil {
				logger.Error("Failed to export transaction",
					applog.FieldError, err,
					applog.FieldAction, ev.Action,
					applog.FieldTransactionID, ev.Transaction.ID)
				return err
			}
			logger.Info("Transaction exported",
				applog.FieldAction, ev.Action,
				applog.FieldTransactionID, ev.Transaction.ID,
				applog.FieldSheetsRef, ref)
			return nil
		})
	})

	g.Go(func() error {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		defer signal.Stop(sigChan)

		select {
		case sig := <-sigChan:
			logger.Info("Shutdown signal received", "signal", sig.String())
			cancel()
			return nil
		case <-gctx.Done():
			return nil
		}
	})

	if err := g.Wait(); err != nil && err != context.Canceled {
		logger.Error("Worker stopped with error", "error", err)
		os.Exit(1)
	}
	slog.Info("Worker shutdown complete")
}
