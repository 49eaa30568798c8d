package postgres

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/andesbank/core-banking/internal/domain"
	"github.com/andesbank/core-banking/internal/platform/logger"
	"github.com/andesbank/core-banking/internal/store"
)

// PostgresClientAccountStore implements the store.ClientAccountStore
// interface for the client-side linkage rows.
type PostgresClientAccountStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresClientAccountStore creates a new PostgreSQL implementation of
// the ClientAccountStore interface.
func NewPostgresClientAccountStore(db store.DBTX, logger *slog.Logger) *PostgresClientAccountStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresClientAccountStore{
		db:     db,
		logger: logger.With(slog.String("component", "client_account_store")),
	}
}

// Ensure PostgresClientAccountStore implements store.ClientAccountStore interface
var _ store.ClientAccountStore = (*PostgresClientAccountStore)(nil)

// Create implements store.ClientAccountStore.Create
func (s *PostgresClientAccountStore) Create(ctx context.Context, clientAccount *domain.ClientAccount) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	err := s.db.QueryRowContext(
		ctx,
		`INSERT INTO client_accounts (client_id, account_id) VALUES ($1, $2) RETURNING id`,
		clientAccount.ClientID,
		clientAccount.AccountID,
	).Scan(&clientAccount.ID)
	if err != nil {
		log.Error("failed to create client account linkage",
			slog.String("error", err.Error()),
			slog.Int64("client_id", clientAccount.ClientID),
			slog.Int64("account_id", clientAccount.AccountID))
		return MapError(err)
	}

	log.Info("client account linkage created",
		slog.Int64("client_account_id", clientAccount.ID),
		slog.Int64("client_id", clientAccount.ClientID),
		slog.Int64("account_id", clientAccount.AccountID))
	return nil
}

// ListByClientID implements store.ClientAccountStore.ListByClientID
func (s *PostgresClientAccountStore) ListByClientID(ctx context.Context, clientID int64) ([]*domain.ClientAccount, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	rows, err := s.db.QueryContext(
		ctx,
		`SELECT id, client_id, account_id FROM client_accounts WHERE client_id = $1 ORDER BY id`,
		clientID,
	)
	if err != nil {
		log.Error("failed to list client account linkages",
			slog.String("error", err.Error()),
			slog.Int64("client_id", clientID))
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	linkages := []*domain.ClientAccount{}
	for rows.Next() {
		var linkage domain.ClientAccount
		if err := rows.Scan(&linkage.ID, &linkage.ClientID, &linkage.AccountID); err != nil {
			return nil, MapError(err)
		}
		linkages = append(linkages, &linkage)
	}
	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}
	return linkages, nil
}

// DeleteByClientAndAccount implements store.ClientAccountStore.DeleteByClientAndAccount
// Returns store.ErrClientAccountNotFound if no such linkage exists.
func (s *PostgresClientAccountStore) DeleteByClientAndAccount(ctx context.Context, clientID, accountID int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(
		ctx,
		`DELETE FROM client_accounts WHERE client_id = $1 AND account_id = $2`,
		clientID,
		accountID,
	)
	if err != nil {
		log.Error("failed to delete client account linkage",
			slog.String("error", err.Error()),
			slog.Int64("client_id", clientID),
			slog.Int64("account_id", accountID))
		return MapError(err)
	}

	if err := CheckRowsAffected(result, "client account"); err != nil {
		log.Debug("client account linkage not found",
			slog.Int64("client_id", clientID),
			slog.Int64("account_id", accountID))
		return store.ErrClientAccountNotFound
	}

	log.Info("client account linkage deleted",
		slog.Int64("client_id", clientID),
		slog.Int64("account_id", accountID))
	return nil
}

// WithTx implements store.ClientAccountStore.WithTx
func (s *PostgresClientAccountStore) WithTx(tx *sql.Tx) store.ClientAccountStore {
	return &PostgresClientAccountStore{
		db:     tx,
		logger: s.logger,
	}
}
