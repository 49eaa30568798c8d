package main

import (
	"database/sql"
	"log/slog"
	"net/http"
	"time"

	"github.com/andesbank/core-banking/internal/config"
	"github.com/andesbank/core-banking/internal/gateway"
	"github.com/andesbank/core-banking/internal/platform/postgres"
	"github.com/andesbank/core-banking/internal/service"
)

// application holds all the shared application dependencies to simplify
// management and ensure proper cleanup on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	clientService service.ClientService
}

// newApplication wires the client service's dependency graph: database,
// stores, the gateway to the account service, and the client service proper.
func newApplication(cfg *config.Config, logger *slog.Logger) (*application, error) {
	db, err := setupDatabase(cfg, logger)
	if err != nil {
		return nil, err
	}

	clientStore := postgres.NewPostgresClientStore(db, logger)
	clientAccountStore := postgres.NewPostgresClientAccountStore(db, logger)

	// Peer.BaseURL points at the account service's mount path, e.g.
	// http://accountsvc:8080/api/accounts. Zero timeout means no client-side
	// deadline on remote calls.
	httpClient := &http.Client{
		Timeout: time.Duration(cfg.Peer.TimeoutSeconds) * time.Second,
	}
	accountGateway := gateway.NewHTTPAccountGateway(cfg.Peer.BaseURL, httpClient, logger)

	clientService, err := service.NewClientService(
		clientStore,
		clientAccountStore,
		accountGateway,
		logger,
	)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	return &application{
		config:        cfg,
		logger:        logger,
		db:            db,
		clientService: clientService,
	}, nil
}

// cleanup releases resources held by the application.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("failed to close database connection", "error", err)
		}
	}
}
