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

// PostgresClientStore implements the store.ClientStore interface
// using a PostgreSQL database as the storage backend.
type PostgresClientStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresClientStore creates a new PostgreSQL implementation of the
// ClientStore interface.
func NewPostgresClientStore(db store.DBTX, logger *slog.Logger) *PostgresClientStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresClientStore{
		db:     db,
		logger: logger.With(slog.String("component", "client_store")),
	}
}

// Ensure PostgresClientStore implements store.ClientStore interface
var _ store.ClientStore = (*PostgresClientStore)(nil)

const clientColumns = `id, name, gender, age, identification, address, phone, password, status, created_at, updated_at`

func scanClient(row interface{ Scan(dest ...any) error }) (*domain.Client, error) {
	var client domain.Client
	err := row.Scan(
		&client.ID,
		&client.Name,
		&client.Gender,
		&client.Age,
		&client.Identification,
		&client.Address,
		&client.Phone,
		&client.Password,
		&client.Status,
		&client.CreatedAt,
		&client.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &client, nil
}

// Create implements store.ClientStore.Create
// Returns store.ErrIdentificationExists if the identification is taken.
func (s *PostgresClientStore) Create(ctx context.Context, client *domain.Client) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := client.Validate(); err != nil {
		log.Warn("client validation failed during create",
			slog.String("error", err.Error()))
		return err
	}

	query := `
		INSERT INTO clients (name, gender, age, identification, address, phone, password, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`
	err := s.db.QueryRowContext(
		ctx,
		query,
		client.Name,
		client.Gender,
		client.Age,
		client.Identification,
		client.Address,
		client.Phone,
		client.Password,
		client.Status,
	).Scan(&client.ID, &client.CreatedAt, &client.UpdatedAt)

	if err != nil {
		if IsUniqueViolation(err) {
			log.Warn("duplicate identification during client create",
				slog.String("identification", client.Identification))
			return MapUniqueViolation(err, store.ErrIdentificationExists)
		}
		log.Error("failed to create client", slog.String("error", err.Error()))
		return MapError(err)
	}

	log.Info("client created successfully", slog.Int64("client_id", client.ID))
	return nil
}

// GetByID implements store.ClientStore.GetByID
// Returns store.ErrClientNotFound if the client does not exist.
func (s *PostgresClientStore) GetByID(ctx context.Context, id int64) (*domain.Client, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	client, err := scanClient(s.db.QueryRowContext(
		ctx,
		`SELECT `+clientColumns+` FROM clients WHERE id = $1`,
		id,
	))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("client not found", slog.Int64("client_id", id))
			return nil, store.ErrClientNotFound
		}
		log.Error("failed to get client by ID",
			slog.String("error", err.Error()),
			slog.Int64("client_id", id))
		return nil, MapError(err)
	}

	return client, nil
}

// List implements store.ClientStore.List
func (s *PostgresClientStore) List(ctx context.Context) ([]*domain.Client, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	rows, err := s.db.QueryContext(ctx, `SELECT `+clientColumns+` FROM clients ORDER BY id`)
	if err != nil {
		log.Error("failed to list clients", slog.String("error", err.Error()))
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	clients := []*domain.Client{}
	for rows.Next() {
		client, err := scanClient(rows)
		if err != nil {
			return nil, MapError(err)
		}
		clients = append(clients, client)
	}
	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}
	return clients, nil
}

// Update implements store.ClientStore.Update
// Returns store.ErrClientNotFound if the client does not exist.
func (s *PostgresClientStore) Update(ctx context.Context, client *domain.Client) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := client.Validate(); err != nil {
		log.Warn("client validation failed during update",
			slog.String("error", err.Error()),
			slog.Int64("client_id", client.ID))
		return err
	}

	query := `
		UPDATE clients
		SET name = $1, gender = $2, age = $3, identification = $4, address = $5,
		    phone = $6, password = $7, status = $8, updated_at = NOW()
		WHERE id = $9
	`
	result, err := s.db.ExecContext(
		ctx,
		query,
		client.Name,
		client.Gender,
		client.Age,
		client.Identification,
		client.Address,
		client.Phone,
		client.Password,
		client.Status,
		client.ID,
	)
	if err != nil {
		log.Error("failed to update client",
			slog.String("error", err.Error()),
			slog.Int64("client_id", client.ID))
		return MapError(err)
	}

	if err := CheckRowsAffected(result, "client"); err != nil {
		log.Debug("client not found during update", slog.Int64("client_id", client.ID))
		return store.ErrClientNotFound
	}

	log.Info("client updated successfully", slog.Int64("client_id", client.ID))
	return nil
}

// Delete implements store.ClientStore.Delete
// Linkage rows go with the client via ON DELETE CASCADE.
// Returns store.ErrClientNotFound if the client does not exist.
func (s *PostgresClientStore) Delete(ctx context.Context, id int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `DELETE FROM clients WHERE id = $1`, id)
	if err != nil {
		log.Error("failed to delete client",
			slog.String("error", err.Error()),
			slog.Int64("client_id", id))
		return MapError(err)
	}

	if err := CheckRowsAffected(result, "client"); err != nil {
		log.Debug("client not found during delete", slog.Int64("client_id", id))
		return store.ErrClientNotFound
	}

	log.Info("client deleted successfully", slog.Int64("client_id", id))
	return nil
}

// WithTx implements store.ClientStore.WithTx
func (s *PostgresClientStore) WithTx(tx *sql.Tx) store.ClientStore {
	return &PostgresClientStore{
		db:     tx,
		logger: s.logger,
	}
}
