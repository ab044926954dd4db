package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"budgeteer/internal/config"
	"budgeteer/internal/database"
	"budgeteer/internal/logger"
	"budgeteer/internal/services"
)

func main() {
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	log := logger.Get()

	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	dbConfig, err := database.NewConfig()
	if err != nil {
		return fmt.Errorf("failed to load database configuration: %w", err)
	}

	dbManager, err := database.NewManager(dbConfig)
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}

	recurringService := services.NewRecurringService(dbManager.DB())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	log.Infow("Recurring transaction worker configured",
		"interval", appConfig.RecurringInterval,
	)

	ticker := time.NewTicker(appConfig.RecurringInterval)
	defer ticker.Stop()

	// Run one sweep immediately so a restarted worker never waits a full
	// interval to catch up.
	sweep(recurringService)

	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				sweep(recurringService)
			}
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigChan
	log.Infow("Shutdown signal received", "signal", sig.String())
	cancel()

	return nil
}

func sweep(recurringService services.RecurringServicer) {
	log := logger.Get()

	created, err := recurringService.ProcessRecurringTransactions()
	if err != nil {
		log.Errorw("Recurring sweep failed", "error", err)
		return
	}
	log.Infow("Recurring sweep complete", "transactions_created", len(created))
}
