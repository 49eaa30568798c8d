package store

import (
	"context"
	"database/sql"

	"github.com/andesbank/core-banking/internal/domain"
)

// ClientStore defines the interface for client data persistence.
type ClientStore interface {
	// Create saves a new client and assigns its ID from the store.
	// Returns ErrIdentificationExists if the identification is taken.
	// Returns validation errors from the domain Client if data is invalid.
	Create(ctx context.Context, client *domain.Client) error

	// GetByID retrieves a client by its unique ID.
	// Returns ErrClientNotFound if the client does not exist.
	GetByID(ctx context.Context, id int64) (*domain.Client, error)

	// List retrieves all clients ordered by ID.
	List(ctx context.Context) ([]*domain.Client, error)

	// Update modifies an existing client's mutable fields.
	// Returns ErrClientNotFound if the client does not exist.
	Update(ctx context.Context, client *domain.Client) error

	// Delete removes a client and its linkage rows.
	// Returns ErrClientNotFound if the client does not exist.
	Delete(ctx context.Context, id int64) error

	// WithTx returns a new ClientStore instance that uses the provided
	// transaction.
	WithTx(tx *sql.Tx) ClientStore
}

// ClientAccountStore defines the interface for the client-side linkage rows.
// These rows are maintained exclusively by the inbound register-link and
// remove-link endpoints; nothing on the client side creates them otherwise.
type ClientAccountStore interface {
	// Create saves a new linkage row and assigns its ID from the store.
	Create(ctx context.Context, clientAccount *domain.ClientAccount) error

	// ListByClientID retrieves all linkage rows for a client.
	ListByClientID(ctx context.Context, clientID int64) ([]*domain.ClientAccount, error)

	// DeleteByClientAndAccount removes the linkage row for the given
	// client/account pair.
	// Returns ErrClientAccountNotFound if no such row exists.
	DeleteByClientAndAccount(ctx context.Context, clientID, accountID int64) error

	// WithTx returns a new ClientAccountStore instance that uses the
	// provided transaction.
	WithTx(tx *sql.Tx) ClientAccountStore
}
