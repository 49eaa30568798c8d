package postgres

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/andesbank/core-banking/internal/store"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestMapError(t *testing.T) {
	t.Parallel()

	assert.NoError(t, MapError(nil))

	err := MapError(fmt.Errorf("query: %w", sql.ErrNoRows))
	assert.ErrorIs(t, err, store.ErrNotFound)

	err = MapError(&pgconn.PgError{Code: uniqueViolationCode})
	assert.ErrorIs(t, err, store.ErrDuplicate)

	err = MapError(&pgconn.PgError{Code: foreignKeyViolationCode, ConstraintName: "fk_account_type"})
	assert.ErrorIs(t, err, store.ErrInvalidEntity)

	// Unmapped errors pass through unchanged.
	opaque := errors.New("connection reset")
	assert.Same(t, opaque, MapError(opaque))
}

func TestIsUniqueViolation(t *testing.T) {
	t.Parallel()

	assert.True(t, IsUniqueViolation(&pgconn.PgError{Code: uniqueViolationCode}))
	assert.True(t, IsUniqueViolation(fmt.Errorf("insert: %w", &pgconn.PgError{Code: uniqueViolationCode})))
	assert.False(t, IsUniqueViolation(&pgconn.PgError{Code: foreignKeyViolationCode}))
	assert.False(t, IsUniqueViolation(errors.New("other")))
}

func TestMapUniqueViolation(t *testing.T) {
	t.Parallel()

	pgErr := &pgconn.PgError{Code: uniqueViolationCode, ConstraintName: "clients_identification_key"}
	err := MapUniqueViolation(pgErr, store.ErrIdentificationExists)
	assert.ErrorIs(t, err, store.ErrIdentificationExists)
	assert.ErrorIs(t, err, store.ErrDuplicate)

	// Anything that is not a unique violation passes through untouched.
	opaque := errors.New("connection reset")
	assert.Same(t, opaque, MapUniqueViolation(opaque, store.ErrIdentificationExists))
}

type fakeResult struct {
	rows int64
	err  error
}

func (r fakeResult) LastInsertId() (int64, error) { return 0, nil }
func (r fakeResult) RowsAffected() (int64, error) { return r.rows, r.err }

func TestCheckRowsAffected(t *testing.T) {
	t.Parallel()

	assert.NoError(t, CheckRowsAffected(fakeResult{rows: 1}, "account"))

	err := CheckRowsAffected(fakeResult{rows: 0}, "account")
	assert.ErrorIs(t, err, store.ErrNotFound)
	assert.Contains(t, err.Error(), "account")

	err = CheckRowsAffected(fakeResult{rows: 0, err: errors.New("driver")}, "account")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, store.ErrNotFound)
}
