package api

import (
	"context"

	"github.com/andesbank/core-banking/internal/domain"
	"github.com/andesbank/core-banking/internal/service"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// MockAccountService mocks the service.AccountService interface
type MockAccountService struct {
	mock.Mock
}

func (m *MockAccountService) ListAccounts(ctx context.Context) ([]*domain.Account, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Account), args.Error(1)
}

func (m *MockAccountService) ListAccountsForPeer(ctx context.Context, ids []int64) ([]*domain.Account, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Account), args.Error(1)
}

func (m *MockAccountService) GetAccountWithClientDetail(ctx context.Context, accountID int64) (*service.AccountDetail, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.AccountDetail), args.Error(1)
}

func (m *MockAccountService) GetAccountByID(ctx context.Context, accountID int64) (*domain.Account, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountService) CreateAccount(ctx context.Context, input *service.CreateAccountInput) (*service.AccountDetail, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.AccountDetail), args.Error(1)
}

func (m *MockAccountService) UpdateAccount(ctx context.Context, input *service.UpdateAccountInput, accountID int64) (*domain.Account, error) {
	args := m.Called(ctx, input, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountService) DeleteAccount(ctx context.Context, accountID int64) error {
	args := m.Called(ctx, accountID)
	return args.Error(0)
}

func (m *MockAccountService) UpdateAccountBalance(ctx context.Context, accountID int64, newBalance decimal.Decimal) (*domain.Account, error) {
	args := m.Called(ctx, accountID, newBalance)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

// MockClientService mocks the service.ClientService interface
type MockClientService struct {
	mock.Mock
}

func (m *MockClientService) ListClients(ctx context.Context) ([]*domain.Client, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Client), args.Error(1)
}

func (m *MockClientService) GetClientByID(ctx context.Context, clientID int64) (*domain.Client, error) {
	args := m.Called(ctx, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Client), args.Error(1)
}

func (m *MockClientService) GetClientDetail(ctx context.Context, clientID int64) (*service.ClientDetail, error) {
	args := m.Called(ctx, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ClientDetail), args.Error(1)
}

func (m *MockClientService) GetClientForPeer(ctx context.Context, clientID int64) (*domain.Client, error) {
	args := m.Called(ctx, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Client), args.Error(1)
}

func (m *MockClientService) CreateClient(ctx context.Context, input *service.CreateClientInput) (*domain.Client, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Client), args.Error(1)
}

func (m *MockClientService) UpdateClient(ctx context.Context, input *service.UpdateClientInput, clientID int64) (*domain.Client, error) {
	args := m.Called(ctx, input, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Client), args.Error(1)
}

func (m *MockClientService) DeleteClient(ctx context.Context, clientID int64) error {
	args := m.Called(ctx, clientID)
	return args.Error(0)
}

func (m *MockClientService) RegisterAccountLink(ctx context.Context, link domain.ClientAccountLink) error {
	args := m.Called(ctx, link)
	return args.Error(0)
}

func (m *MockClientService) RemoveAccountLink(ctx context.Context, clientID, accountID int64) error {
	args := m.Called(ctx, clientID, accountID)
	return args.Error(0)
}
