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

	accountService service.AccountService
}

// newApplication wires the account service's dependency graph: database,
// stores, the gateway to the client service, and the coordinating service.
func newApplication(cfg *config.Config, logger *slog.Logger) (*application, error) {
	db, err := setupDatabase(cfg, logger)
	if err != nil {
		return nil, err
	}

	accountStore := postgres.NewPostgresAccountStore(db, logger)
	accountTypeStore := postgres.NewPostgresAccountTypeStore(db, logger)
	accountClientStore := postgres.NewPostgresAccountClientStore(db, logger)

	// Peer.BaseURL points at the client service's mount path, e.g.
	// http://clientsvc:8081/api/clients. Zero timeout means no client-side
	// deadline on remote calls.
	httpClient := &http.Client{
		Timeout: time.Duration(cfg.Peer.TimeoutSeconds) * time.Second,
	}
	clientGateway := gateway.NewHTTPClientGateway(cfg.Peer.BaseURL, httpClient, logger)

	accountService, err := service.NewAccountService(
		db,
		accountStore,
		accountTypeStore,
		accountClientStore,
		clientGateway,
		logger,
	)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	return &application{
		config:         cfg,
		logger:         logger,
		db:             db,
		accountService: accountService,
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
