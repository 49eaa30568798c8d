package postgres

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"github.com/andesbank/core-banking/internal/domain"
	"github.com/andesbank/core-banking/internal/platform/logger"
	"github.com/andesbank/core-banking/internal/store"
)

// PostgresAccountClientStore implements the store.AccountClientStore
// interface for the account-side linkage rows.
type PostgresAccountClientStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresAccountClientStore creates a new PostgreSQL implementation of
// the AccountClientStore interface.
func NewPostgresAccountClientStore(db store.DBTX, logger *slog.Logger) *PostgresAccountClientStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresAccountClientStore{
		db:     db,
		logger: logger.With(slog.String("component", "account_client_store")),
	}
}

// Ensure PostgresAccountClientStore implements store.AccountClientStore interface
var _ store.AccountClientStore = (*PostgresAccountClientStore)(nil)

// Create implements store.AccountClientStore.Create
// It saves a new linkage row and assigns its generated ID.
func (s *PostgresAccountClientStore) Create(ctx context.Context, accountClient *domain.AccountClient) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	err := s.db.QueryRowContext(
		ctx,
		`INSERT INTO account_clients (client_id) VALUES ($1) RETURNING id`,
		accountClient.ClientID,
	).Scan(&accountClient.ID)
	if err != nil {
		log.Error("failed to create account client linkage",
			slog.String("error", err.Error()),
			slog.Int64("client_id", accountClient.ClientID))
		return MapError(err)
	}

	log.Info("account client linkage created",
		slog.Int64("account_client_id", accountClient.ID),
		slog.Int64("client_id", accountClient.ClientID))
	return nil
}

// GetByID implements store.AccountClientStore.GetByID
// Returns store.ErrAccountClientNotFound if the row does not exist.
func (s *PostgresAccountClientStore) GetByID(ctx context.Context, id int64) (*domain.AccountClient, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var accountClient domain.AccountClient
	err := s.db.QueryRowContext(
		ctx,
		`SELECT id, client_id FROM account_clients WHERE id = $1`,
		id,
	).Scan(&accountClient.ID, &accountClient.ClientID)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("account client linkage not found", slog.Int64("account_client_id", id))
			return nil, store.ErrAccountClientNotFound
		}
		log.Error("failed to get account client linkage",
			slog.String("error", err.Error()),
			slog.Int64("account_client_id", id))
		return nil, MapError(err)
	}

	return &accountClient, nil
}

// WithTx implements store.AccountClientStore.WithTx
func (s *PostgresAccountClientStore) WithTx(tx *sql.Tx) store.AccountClientStore {
	return &PostgresAccountClientStore{
		db:     tx,
		logger: s.logger,
	}
}
