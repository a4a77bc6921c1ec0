package main

import (
	"context"
	"os"

	"github.com/joho/godotenv"

	"expenses/internal/amqp"
	"expenses/internal/backend"
	"expenses/internal/config"
	"expenses/internal/ledger"
	"expenses/internal/log"
)

func main() {
	// Load .env file for local development (ignore errors in production)
	_ = godotenv.Load()

	cfg := config.Load()

	level, levelErr := log.ParseLevel(cfg.LogLevel)
	logger := log.New(log.Config{
		Level:     level,
		Component: "cli",
		Output:    os.Stderr, // keep the menu on stdout readable
	})
	log.SetDefault(logger)
	if levelErr != nil {
		logger.Warn("Unknown log level, using info", "value", cfg.LogLevel)
	}

	if err := cfg.Validate(); err != nil {
		logger.Error("Configuration validation failed", "error", err)
		os.Exit(1)
	}

	backendCfg, err := backend.FromAppConfig(cfg)
	if err != nil {
		logger.Error("Invalid backend configuration", "error", err)
		os.Exit(1)
	}

	factory := backend.NewFactory(logger)
	result, err := factory.CreateBackend(backendCfg)
	if err != nil {
		logger.Error("Failed to initialize store backend", "error", err, "backend", cfg.DataBackend)
		os.Exit(1)
	}
	if result.Cleanup != nil {
		defer func() {
			if err := result.Cleanup(); err != nil {
				logger.Error("Backend cleanup failed", "error", err)
			}
		}()
	}

	// Event publishing is optional; a missing broker never blocks the tracker.
	var events ledger.EventPublisher
	if cfg.AMQPURL != "" {
		client, err := amqp.NewClient(cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPQueue)
		if err != nil {
			logger.Warn("Failed to initialize AMQP client, continuing without events", "error", err)
		} else {
			defer client.Close()
			events = client
			logger.Info("Initialized AMQP client",
				"exchange", cfg.AMQPExchange,
				"queue", cfg.AMQPQueue)
		}
	}

	led := ledger.New(result.Store, events)

	app := newApp(led, os.Stdin, os.Stdout)
	if err := app.Run(context.Background()); err != nil {
		logger.Error("Application error", "error", err)
		os.Exit(1)
	}
}
