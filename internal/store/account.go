package store

import (
	"context"
	"database/sql"

	"github.com/andesbank/core-banking/internal/domain"
)

// AccountStore defines the interface for account data persistence.
type AccountStore interface {
	// Create saves a new account and assigns its ID from the store.
	// The account must already carry its AccountType and AccountClient;
	// an account is never persisted without either.
	// Returns ErrAccountNumberExists if the account number is taken.
	// Returns validation errors from the domain Account if data is invalid.
	Create(ctx context.Context, account *domain.Account) error

	// GetByID retrieves an account by its unique ID, including its
	// account type and client linkage.
	// Returns ErrAccountNotFound if the account does not exist.
	GetByID(ctx context.Context, id int64) (*domain.Account, error)

	// List retrieves all accounts ordered by ID.
	List(ctx context.Context) ([]*domain.Account, error)

	// ListByIDs retrieves the accounts whose IDs appear in ids.
	// Unknown IDs are silently omitted from the result; no error is
	// returned for them.
	ListByIDs(ctx context.Context, ids []int64) ([]*domain.Account, error)

	// Update modifies an existing account's mutable fields.
	// Returns ErrAccountNotFound if the account does not exist.
	Update(ctx context.Context, account *domain.Account) error

	// Delete removes an account and its AccountClient linkage row.
	// Returns ErrAccountNotFound if the account does not exist.
	Delete(ctx context.Context, id int64) error

	// WithTx returns a new AccountStore instance that uses the provided
	// transaction. The transaction is created and managed by the caller.
	WithTx(tx *sql.Tx) AccountStore
}

// AccountTypeStore defines lookup access to the immutable account type
// reference data.
type AccountTypeStore interface {
	// GetByName retrieves an account type by its type name (e.g. "SAVINGS").
	// Returns ErrAccountTypeNotFound if no such type exists.
	GetByName(ctx context.Context, name string) (*domain.AccountType, error)
}

// AccountClientStore defines the interface for the account-side linkage rows.
type AccountClientStore interface {
	// Create saves a new linkage row and assigns its ID from the store.
	Create(ctx context.Context, accountClient *domain.AccountClient) error

	// GetByID retrieves a linkage row by its ID.
	// Returns ErrAccountClientNotFound if the row does not exist.
	GetByID(ctx context.Context, id int64) (*domain.AccountClient, error)

	// WithTx returns a new AccountClientStore instance that uses the
	// provided transaction.
	WithTx(tx *sql.Tx) AccountClientStore
}
