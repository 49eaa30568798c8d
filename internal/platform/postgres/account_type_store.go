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

// PostgresAccountTypeStore implements the store.AccountTypeStore interface.
// Account types are immutable reference data seeded by migrations, so the
// store only ever reads them.
type PostgresAccountTypeStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresAccountTypeStore creates a new PostgreSQL implementation of the
// AccountTypeStore interface.
func NewPostgresAccountTypeStore(db store.DBTX, logger *slog.Logger) *PostgresAccountTypeStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresAccountTypeStore{
		db:     db,
		logger: logger.With(slog.String("component", "account_type_store")),
	}
}

// Ensure PostgresAccountTypeStore implements store.AccountTypeStore interface
var _ store.AccountTypeStore = (*PostgresAccountTypeStore)(nil)

// GetByName implements store.AccountTypeStore.GetByName
// Returns store.ErrAccountTypeNotFound if no type with the name exists.
func (s *PostgresAccountTypeStore) GetByName(ctx context.Context, name string) (*domain.AccountType, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var accountType domain.AccountType
	err := s.db.QueryRowContext(
		ctx,
		`SELECT id, name FROM account_types WHERE name = $1`,
		name,
	).Scan(&accountType.ID, &accountType.Name)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("account type not found", slog.String("name", name))
			return nil, store.ErrAccountTypeNotFound
		}
		log.Error("failed to get account type by name",
			slog.String("error", err.Error()),
			slog.String("name", name))
		return nil, MapError(err)
	}

	return &accountType, nil
}
