package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"expenses/internal/amqp"
	"expenses/internal/config"
	"expenses/internal/log"
	"expenses/internal/worker"
)

func main() {
	// Load .env file for local development (ignore errors in production)
	_ = godotenv.Load()

	cfg := config.Load()

	level, levelErr := log.ParseLevel(cfg.LogLevel)
	logger := log.New(log.Config{
		Level:     level,
		Component: "worker",
	})
	log.SetDefault(logger)
	if levelErr != nil {
		logger.Warn("Unknown log level, using info", "value", cfg.LogLevel)
	}

	logger.Info("Starting expenses-worker")

	if err := cfg.Validate(); err != nil {
		logger.Error("Configuration validation failed", "error", err)
		os.Exit(1)
	}
	if cfg.AMQPURL == "" {
		logger.Error("AMQP_URL is required for the worker")
		os.Exit(1)
	}

	amqpClient, err := amqp.NewClient(cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPQueue)
	if err != nil {
		logger.Error("Failed to initialize AMQP client", "error", err)
		os.Exit(1)
	}
	defer amqpClient.Close()

	auditWorker, err := worker.NewAuditWorker(cfg.AuditLogPath)
	if err != nil {
		logger.Error("Failed to open audit log", "error", err, "path", cfg.AuditLogPath)
		os.Exit(1)
	}
	defer auditWorker.Close()

	logger.Info("Audit log ready", "path", cfg.AuditLogPath)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return amqpClient.ConsumeExpenseAdded(ctx, func(msg *amqp.ExpenseAddedMessage) error {
			return auditWorker.HandleExpenseAdded(ctx, msg)
		})
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("Worker stopped with error", "error", err)
		os.Exit(1)
	}

	logger.Info("Worker shutdown complete")
}
