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

// PostgresAccountStore implements the store.AccountStore interface
// using a PostgreSQL database as the storage backend.
type PostgresAccountStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresAccountStore creates a new PostgreSQL implementation of the
// AccountStore interface. It accepts a database connection or transaction
// that should be initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewPostgresAccountStore(db store.DBTX, logger *slog.Logger) *PostgresAccountStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresAccountStore{
		db:     db,
		logger: logger.With(slog.String("component", "account_store")),
	}
}

// Ensure PostgresAccountStore implements store.AccountStore interface
var _ store.AccountStore = (*PostgresAccountStore)(nil)

// accountColumns is the select list shared by every account read. Accounts
// are always loaded together with their type and client linkage; an account
// row without either would violate the schema's NOT NULL references.
const accountColumns = `
	a.id, a.account_number, a.initial_balance, a.status, a.created_at, a.updated_at,
	t.id, t.name,
	c.id, c.client_id
`

const accountFrom = `
	FROM accounts a
	JOIN account_types t ON t.id = a.account_type_id
	JOIN account_clients c ON c.id = a.account_client_id
`

// scanAccount maps one joined account row onto a domain.Account.
func scanAccount(row interface{ Scan(dest ...any) error }) (*domain.Account, error) {
	var account domain.Account
	var accountType domain.AccountType
	var accountClient domain.AccountClient

	err := row.Scan(
		&account.ID,
		&account.AccountNumber,
		&account.InitialBalance,
		&account.Status,
		&account.CreatedAt,
		&account.UpdatedAt,
		&accountType.ID,
		&accountType.Name,
		&accountClient.ID,
		&accountClient.ClientID,
	)
	if err != nil {
		return nil, err
	}

	account.AccountType = &accountType
	account.AccountClient = &accountClient
	return &account, nil
}

// Create implements store.AccountStore.Create
// It saves a new account to the database and assigns its generated ID.
// Returns store.ErrAccountNumberExists if the account number is taken.
// Returns validation errors from the domain Account if data is invalid.
func (s *PostgresAccountStore) Create(ctx context.Context, account *domain.Account) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := account.Validate(); err != nil {
		log.Warn("account validation failed during create",
			slog.String("error", err.Error()))
		return err
	}

	query := `
		INSERT INTO accounts (account_number, account_type_id, initial_balance, status, account_client_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`
	err := s.db.QueryRowContext(
		ctx,
		query,
		account.AccountNumber,
		account.AccountType.ID,
		account.InitialBalance,
		account.Status,
		account.AccountClient.ID,
	).Scan(&account.ID, &account.CreatedAt, &account.UpdatedAt)

	if err != nil {
		if IsUniqueViolation(err) {
			log.Warn("duplicate account number during create",
				slog.String("account_number", account.AccountNumber))
			return MapUniqueViolation(err, store.ErrAccountNumberExists)
		}
		log.Error("failed to create account",
			slog.String("error", err.Error()),
			slog.String("account_number", account.AccountNumber))
		return MapError(err)
	}

	log.Info("account created successfully",
		slog.Int64("account_id", account.ID),
		slog.String("account_number", account.AccountNumber))
	return nil
}

// GetByID implements store.AccountStore.GetByID
// It retrieves an account with its type and client linkage.
// Returns store.ErrAccountNotFound if the account does not exist.
func (s *PostgresAccountStore) GetByID(ctx context.Context, id int64) (*domain.Account, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `SELECT` + accountColumns + accountFrom + `WHERE a.id = $1`

	account, err := scanAccount(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("account not found", slog.Int64("account_id", id))
			return nil, store.ErrAccountNotFound
		}
		log.Error("failed to get account by ID",
			slog.String("error", err.Error()),
			slog.Int64("account_id", id))
		return nil, MapError(err)
	}

	return account, nil
}

// List implements store.AccountStore.List
// It retrieves all accounts ordered by ID.
func (s *PostgresAccountStore) List(ctx context.Context) ([]*domain.Account, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `SELECT` + accountColumns + accountFrom + `ORDER BY a.id`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		log.Error("failed to list accounts", slog.String("error", err.Error()))
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	return collectAccounts(rows)
}

// ListByIDs implements store.AccountStore.ListByIDs
// Unknown IDs are silently omitted from the result.
func (s *PostgresAccountStore) ListByIDs(ctx context.Context, ids []int64) ([]*domain.Account, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if len(ids) == 0 {
		return []*domain.Account{}, nil
	}

	query := `SELECT` + accountColumns + accountFrom + `WHERE a.id = ANY($1) ORDER BY a.id`

	// The pgx stdlib driver binds []int64 as a bigint array.
	rows, err := s.db.QueryContext(ctx, query, ids)
	if err != nil {
		log.Error("failed to list accounts by IDs",
			slog.String("error", err.Error()),
			slog.Int("requested", len(ids)))
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	return collectAccounts(rows)
}

// Update implements store.AccountStore.Update
// It modifies an account's mutable fields (type, balance, status).
// Returns store.ErrAccountNotFound if the account does not exist.
func (s *PostgresAccountStore) Update(ctx context.Context, account *domain.Account) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := account.Validate(); err != nil {
		log.Warn("account validation failed during update",
			slog.String("error", err.Error()),
			slog.Int64("account_id", account.ID))
		return err
	}

	query := `
		UPDATE accounts
		SET account_number = $1, account_type_id = $2, initial_balance = $3, status = $4, updated_at = NOW()
		WHERE id = $5
	`
	result, err := s.db.ExecContext(
		ctx,
		query,
		account.AccountNumber,
		account.AccountType.ID,
		account.InitialBalance,
		account.Status,
		account.ID,
	)
	if err != nil {
		log.Error("failed to update account",
			slog.String("error", err.Error()),
			slog.Int64("account_id", account.ID))
		return MapError(err)
	}

	if err := CheckRowsAffected(result, "account"); err != nil {
		log.Debug("account not found during update", slog.Int64("account_id", account.ID))
		return store.ErrAccountNotFound
	}

	log.Info("account updated successfully", slog.Int64("account_id", account.ID))
	return nil
}

// Delete implements store.AccountStore.Delete
// It removes the account row and its AccountClient linkage row. The two
// deletes belong to the same local transaction when called through WithTx.
// Returns store.ErrAccountNotFound if the account does not exist.
func (s *PostgresAccountStore) Delete(ctx context.Context, id int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var linkageID int64
	err := s.db.QueryRowContext(
		ctx,
		`DELETE FROM accounts WHERE id = $1 RETURNING account_client_id`,
		id,
	).Scan(&linkageID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("account not found during delete", slog.Int64("account_id", id))
			return store.ErrAccountNotFound
		}
		log.Error("failed to delete account",
			slog.String("error", err.Error()),
			slog.Int64("account_id", id))
		return MapError(err)
	}

	if _, err := s.db.ExecContext(ctx, `DELETE FROM account_clients WHERE id = $1`, linkageID); err != nil {
		log.Error("failed to delete account client linkage",
			slog.String("error", err.Error()),
			slog.Int64("account_client_id", linkageID))
		return MapError(err)
	}

	log.Info("account deleted successfully", slog.Int64("account_id", id))
	return nil
}

// WithTx implements store.AccountStore.WithTx
func (s *PostgresAccountStore) WithTx(tx *sql.Tx) store.AccountStore {
	return &PostgresAccountStore{
		db:     tx,
		logger: s.logger,
	}
}

// collectAccounts drains rows into a slice of accounts.
func collectAccounts(rows *sql.Rows) ([]*domain.Account, error) {
	accounts := []*domain.Account{}
	for rows.Next() {
		account, err := scanAccount(rows)
		if err != nil {
			return nil, MapError(err)
		}
		accounts = append(accounts, account)
	}
	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}
	return accounts, nil
}
