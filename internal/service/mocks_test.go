package service

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"sync"
	"testing"

	"github.com/andesbank/core-banking/internal/domain"
	"github.com/andesbank/core-banking/internal/gateway"
	"github.com/andesbank/core-banking/internal/store"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockAccountStore mocks the store.AccountStore interface
type MockAccountStore struct {
	mock.Mock
}

func (m *MockAccountStore) Create(ctx context.Context, account *domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountStore) GetByID(ctx context.Context, id int64) (*domain.Account, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountStore) List(ctx context.Context) ([]*domain.Account, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Account), args.Error(1)
}

func (m *MockAccountStore) ListByIDs(ctx context.Context, ids []int64) ([]*domain.Account, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Account), args.Error(1)
}

func (m *MockAccountStore) Update(ctx context.Context, account *domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountStore) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockAccountStore) WithTx(tx *sql.Tx) store.AccountStore {
	args := m.Called(tx)
	return args.Get(0).(store.AccountStore)
}

// MockAccountTypeStore mocks the store.AccountTypeStore interface
type MockAccountTypeStore struct {
	mock.Mock
}

func (m *MockAccountTypeStore) GetByName(ctx context.Context, name string) (*domain.AccountType, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AccountType), args.Error(1)
}

// MockAccountClientStore mocks the store.AccountClientStore interface
type MockAccountClientStore struct {
	mock.Mock
}

func (m *MockAccountClientStore) Create(ctx context.Context, accountClient *domain.AccountClient) error {
	args := m.Called(ctx, accountClient)
	return args.Error(0)
}

func (m *MockAccountClientStore) GetByID(ctx context.Context, id int64) (*domain.AccountClient, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AccountClient), args.Error(1)
}

func (m *MockAccountClientStore) WithTx(tx *sql.Tx) store.AccountClientStore {
	args := m.Called(tx)
	return args.Get(0).(store.AccountClientStore)
}

// MockClientStore mocks the store.ClientStore interface
type MockClientStore struct {
	mock.Mock
}

func (m *MockClientStore) Create(ctx context.Context, client *domain.Client) error {
	args := m.Called(ctx, client)
	return args.Error(0)
}

func (m *MockClientStore) GetByID(ctx context.Context, id int64) (*domain.Client, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Client), args.Error(1)
}

func (m *MockClientStore) List(ctx context.Context) ([]*domain.Client, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Client), args.Error(1)
}

func (m *MockClientStore) Update(ctx context.Context, client *domain.Client) error {
	args := m.Called(ctx, client)
	return args.Error(0)
}

func (m *MockClientStore) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockClientStore) WithTx(tx *sql.Tx) store.ClientStore {
	args := m.Called(tx)
	return args.Get(0).(store.ClientStore)
}

// MockClientAccountStore mocks the store.ClientAccountStore interface
type MockClientAccountStore struct {
	mock.Mock
}

func (m *MockClientAccountStore) Create(ctx context.Context, clientAccount *domain.ClientAccount) error {
	args := m.Called(ctx, clientAccount)
	return args.Error(0)
}

func (m *MockClientAccountStore) ListByClientID(ctx context.Context, clientID int64) ([]*domain.ClientAccount, error) {
	args := m.Called(ctx, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.ClientAccount), args.Error(1)
}

func (m *MockClientAccountStore) DeleteByClientAndAccount(ctx context.Context, clientID, accountID int64) error {
	args := m.Called(ctx, clientID, accountID)
	return args.Error(0)
}

func (m *MockClientAccountStore) WithTx(tx *sql.Tx) store.ClientAccountStore {
	args := m.Called(tx)
	return args.Get(0).(store.ClientAccountStore)
}

// MockClientGateway mocks the gateway.ClientGateway interface
type MockClientGateway struct {
	mock.Mock
}

func (m *MockClientGateway) FetchClient(ctx context.Context, clientID int64) (*domain.Client, error) {
	args := m.Called(ctx, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Client), args.Error(1)
}

func (m *MockClientGateway) RegisterLink(ctx context.Context, link domain.ClientAccountLink) error {
	args := m.Called(ctx, link)
	return args.Error(0)
}

func (m *MockClientGateway) RemoveLink(ctx context.Context, clientID, accountID int64) error {
	args := m.Called(ctx, clientID, accountID)
	return args.Error(0)
}

// MockAccountGateway mocks the gateway.AccountGateway interface
type MockAccountGateway struct {
	mock.Mock
}

func (m *MockAccountGateway) FetchAccounts(ctx context.Context, accountIDs []int64) ([]gateway.AccountSummary, error) {
	args := m.Called(ctx, accountIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]gateway.AccountSummary), args.Error(1)
}

// noopTxDriver is a minimal SQL driver whose transactions always succeed.
// It exists so transaction-wrapping service paths can run against a real
// *sql.DB without a database.
type noopTxDriver struct{}

func (noopTxDriver) Open(name string) (driver.Conn, error) {
	return noopTxConn{}, nil
}

type noopTxConn struct{}

func (noopTxConn) Prepare(query string) (driver.Stmt, error) {
	return nil, errors.New("prepare not supported")
}

func (noopTxConn) Close() error { return nil }

func (noopTxConn) Begin() (driver.Tx, error) {
	return noopTx{}, nil
}

type noopTx struct{}

func (noopTx) Commit() error   { return nil }
func (noopTx) Rollback() error { return nil }

var registerNoopDriver sync.Once

// newTestDB returns a *sql.DB backed by the no-op transactional driver.
func newTestDB(t *testing.T) *sql.DB {
	t.Helper()
	registerNoopDriver.Do(func() {
		sql.Register("service_test_noop_tx", noopTxDriver{})
	})
	db, err := sql.Open("service_test_noop_tx", "")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}
