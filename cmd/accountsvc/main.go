// Package main implements the entry point for the account service, the
// side of the system that owns accounts and coordinates every cross-service
// operation against the client service.
package main

import (
	"context"
	"fmt"
	"log"

	"github.com/andesbank/core-banking/internal/config"
	"github.com/andesbank/core-banking/internal/platform/logger"
)

// envPrefix scopes this binary's environment variables (ACCOUNTSVC_SERVER_PORT, ...).
const envPrefix = "ACCOUNTSVC"

func main() {
	if err := run(); err != nil {
		log.Fatalf("account service failed: %v", err)
	}
}

// run loads configuration, wires the application, applies migrations, and
// serves HTTP until a shutdown signal arrives.
func run() error {
	cfg, err := config.Load(envPrefix)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	appLogger, err := logger.Setup(cfg.Server)
	if err != nil {
		return fmt.Errorf("failed to set up logger: %w", err)
	}

	appLogger.Info("configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"peer_base_url", cfg.Peer.BaseURL)

	app, err := newApplication(cfg, appLogger)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}
	defer app.cleanup()

	if err := runMigrations(app.db, appLogger); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	return app.startHTTPServer(context.Background(), app.setupRouter())
}
