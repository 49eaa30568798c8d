package service

import (
	"context"
	"testing"

	"github.com/andesbank/core-banking/internal/domain"
	"github.com/andesbank/core-banking/internal/gateway"
	"github.com/andesbank/core-banking/internal/store"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type clientServiceFixture struct {
	clients        *MockClientStore
	linkages       *MockClientAccountStore
	accountGateway *MockAccountGateway
	service        ClientService
}

func newClientServiceFixture(t *testing.T) *clientServiceFixture {
	t.Helper()

	f := &clientServiceFixture{
		clients:        new(MockClientStore),
		linkages:       new(MockClientAccountStore),
		accountGateway: new(MockAccountGateway),
	}

	svc, err := NewClientService(f.clients, f.linkages, f.accountGateway, nil)
	require.NoError(t, err)
	f.service = svc
	return f
}

func TestNewClientService_NilDependencies(t *testing.T) {
	clients := new(MockClientStore)
	linkages := new(MockClientAccountStore)
	accountGateway := new(MockAccountGateway)

	testCases := []struct {
		name string
		fn   func() (ClientService, error)
	}{
		{"nil clients", func() (ClientService, error) {
			return NewClientService(nil, linkages, accountGateway, nil)
		}},
		{"nil linkages", func() (ClientService, error) {
			return NewClientService(clients, nil, accountGateway, nil)
		}},
		{"nil account gateway", func() (ClientService, error) {
			return NewClientService(clients, linkages, nil, nil)
		}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc, err := tc.fn()
			assert.Nil(t, svc)
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestCreateClient(t *testing.T) {
	t.Run("nil input is a no-op", func(t *testing.T) {
		f := newClientServiceFixture(t)

		client, err := f.service.CreateClient(context.Background(), nil)

		require.NoError(t, err)
		assert.Nil(t, client)
		f.clients.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("persists the client", func(t *testing.T) {
		f := newClientServiceFixture(t)
		ctx := context.Background()

		f.clients.On("Create", ctx, mock.AnythingOfType("*domain.Client")).
			Run(func(args mock.Arguments) {
				args.Get(1).(*domain.Client).ID = 7
			}).
			Return(nil)

		client, err := f.service.CreateClient(ctx, &CreateClientInput{
			Name:           "Marianela Montalvo",
			Gender:         "F",
			Age:            29,
			Identification: "1718231002",
			Address:        "Amazonas y NNUU",
			Phone:          "097548965",
			Password:       "s3cret",
			Status:         true,
		})

		require.NoError(t, err)
		assert.Equal(t, int64(7), client.ID)
		assert.Equal(t, "Marianela Montalvo", client.Name)
	})

	t.Run("duplicate identification surfaces store error", func(t *testing.T) {
		f := newClientServiceFixture(t)
		ctx := context.Background()

		f.clients.On("Create", ctx, mock.AnythingOfType("*domain.Client")).
			Return(store.ErrIdentificationExists)

		client, err := f.service.CreateClient(ctx, &CreateClientInput{
			Name:           "Marianela Montalvo",
			Identification: "1718231002",
		})

		assert.Nil(t, client)
		assert.ErrorIs(t, err, store.ErrIdentificationExists)
	})
}

func TestUpdateClient(t *testing.T) {
	existing := func() *domain.Client {
		c := testClient(7)
		c.Password = "oldhash"
		return c
	}

	t.Run("nil input is a no-op", func(t *testing.T) {
		f := newClientServiceFixture(t)

		client, err := f.service.UpdateClient(context.Background(), nil, 7)

		require.NoError(t, err)
		assert.Nil(t, client)
		f.clients.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
		f.clients.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("applies mutable fields", func(t *testing.T) {
		f := newClientServiceFixture(t)
		ctx := context.Background()

		f.clients.On("GetByID", ctx, int64(7)).Return(existing(), nil)
		f.clients.On("Update", ctx, mock.AnythingOfType("*domain.Client")).Return(nil)

		client, err := f.service.UpdateClient(ctx, &UpdateClientInput{
			Name:     "Jose Lema Jr",
			Gender:   "M",
			Age:      35,
			Address:  "13 de junio y Equinoccial",
			Phone:    "098874587",
			Password: "newhash",
			Status:   true,
		}, 7)

		require.NoError(t, err)
		assert.Equal(t, "Jose Lema Jr", client.Name)
		assert.Equal(t, 35, client.Age)
		assert.Equal(t, "newhash", client.Password)
	})

	t.Run("empty password keeps the stored one", func(t *testing.T) {
		f := newClientServiceFixture(t)
		ctx := context.Background()

		f.clients.On("GetByID", ctx, int64(7)).Return(existing(), nil)
		f.clients.On("Update", ctx, mock.AnythingOfType("*domain.Client")).Return(nil)

		client, err := f.service.UpdateClient(ctx, &UpdateClientInput{
			Name:   "Jose Lema",
			Status: true,
		}, 7)

		require.NoError(t, err)
		assert.Equal(t, "oldhash", client.Password)
	})

	t.Run("absent client surfaces store error", func(t *testing.T) {
		f := newClientServiceFixture(t)
		ctx := context.Background()

		f.clients.On("GetByID", ctx, int64(404)).Return(nil, store.ErrClientNotFound)

		client, err := f.service.UpdateClient(ctx, &UpdateClientInput{Name: "x"}, 404)

		assert.Nil(t, client)
		assert.ErrorIs(t, err, store.ErrClientNotFound)
	})
}

func TestGetClientDetail(t *testing.T) {
	links := []*domain.ClientAccount{
		{ID: 1, ClientID: 7, AccountID: 42},
		{ID: 2, ClientID: 7, AccountID: 43},
	}
	summaries := []gateway.AccountSummary{
		{
			ID:             42,
			AccountNumber:  "4782093157",
			AccountType:    domain.AccountTypeSavings,
			InitialBalance: decimal.RequireFromString("2000.00"),
			Status:         true,
		},
	}

	t.Run("composes client and account summaries", func(t *testing.T) {
		f := newClientServiceFixture(t)
		ctx := context.Background()
		client := testClient(7)

		f.clients.On("GetByID", ctx, int64(7)).Return(client, nil)
		f.linkages.On("ListByClientID", ctx, int64(7)).Return(links, nil)
		// Account 43 was deleted on the peer; its summary is simply absent.
		f.accountGateway.On("FetchAccounts", ctx, []int64{42, 43}).Return(summaries, nil)

		detail, err := f.service.GetClientDetail(ctx, 7)

		require.NoError(t, err)
		assert.Equal(t, client, detail.Client)
		assert.Equal(t, summaries, detail.Accounts)
	})

	t.Run("client with no linkages", func(t *testing.T) {
		f := newClientServiceFixture(t)
		ctx := context.Background()

		f.clients.On("GetByID", ctx, int64(7)).Return(testClient(7), nil)
		f.linkages.On("ListByClientID", ctx, int64(7)).Return([]*domain.ClientAccount{}, nil)
		f.accountGateway.On("FetchAccounts", ctx, []int64{}).Return([]gateway.AccountSummary{}, nil)

		detail, err := f.service.GetClientDetail(ctx, 7)

		require.NoError(t, err)
		assert.Empty(t, detail.Accounts)
	})

	t.Run("absent client surfaces store error", func(t *testing.T) {
		f := newClientServiceFixture(t)
		ctx := context.Background()

		f.clients.On("GetByID", ctx, int64(404)).Return(nil, store.ErrClientNotFound)

		detail, err := f.service.GetClientDetail(ctx, 404)

		assert.Nil(t, detail)
		assert.ErrorIs(t, err, store.ErrClientNotFound)
	})

	t.Run("unreachable account service maps to link error", func(t *testing.T) {
		f := newClientServiceFixture(t)
		ctx := context.Background()

		f.clients.On("GetByID", ctx, int64(7)).Return(testClient(7), nil)
		f.linkages.On("ListByClientID", ctx, int64(7)).Return(links, nil)
		f.accountGateway.On("FetchAccounts", ctx, []int64{42, 43}).
			Return(nil, unreachableErr("fetch accounts"))

		detail, err := f.service.GetClientDetail(ctx, 7)

		assert.Nil(t, detail)
		assert.ErrorIs(t, err, ErrClientAccountLinkNotFound)
		_, isRemote := gateway.AsRemoteError(err)
		assert.False(t, isRemote)
	})
}

func TestDeleteClient(t *testing.T) {
	t.Run("deletes the client", func(t *testing.T) {
		f := newClientServiceFixture(t)
		ctx := context.Background()

		f.clients.On("Delete", ctx, int64(7)).Return(nil)

		require.NoError(t, f.service.DeleteClient(ctx, 7))
	})

	t.Run("absent client surfaces store error", func(t *testing.T) {
		f := newClientServiceFixture(t)
		ctx := context.Background()

		f.clients.On("Delete", ctx, int64(404)).Return(store.ErrClientNotFound)

		err := f.service.DeleteClient(ctx, 404)

		assert.ErrorIs(t, err, store.ErrClientNotFound)
	})
}

func TestRegisterAccountLink(t *testing.T) {
	t.Run("records the linkage for an existing client", func(t *testing.T) {
		f := newClientServiceFixture(t)
		ctx := context.Background()

		f.clients.On("GetByID", ctx, int64(7)).Return(testClient(7), nil)
		f.linkages.On("Create", ctx, &domain.ClientAccount{ClientID: 7, AccountID: 42}).
			Return(nil)

		err := f.service.RegisterAccountLink(ctx, domain.ClientAccountLink{
			ClientID:  7,
			AccountID: 42,
		})

		require.NoError(t, err)
	})

	t.Run("unknown client is rejected before writing", func(t *testing.T) {
		f := newClientServiceFixture(t)
		ctx := context.Background()

		f.clients.On("GetByID", ctx, int64(404)).Return(nil, store.ErrClientNotFound)

		err := f.service.RegisterAccountLink(ctx, domain.ClientAccountLink{
			ClientID:  404,
			AccountID: 42,
		})

		assert.ErrorIs(t, err, store.ErrClientNotFound)
		f.linkages.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestRemoveAccountLink(t *testing.T) {
	t.Run("removes the linkage", func(t *testing.T) {
		f := newClientServiceFixture(t)
		ctx := context.Background()

		f.linkages.On("DeleteByClientAndAccount", ctx, int64(7), int64(42)).Return(nil)

		require.NoError(t, f.service.RemoveAccountLink(ctx, 7, 42))
	})

	t.Run("missing linkage surfaces store error", func(t *testing.T) {
		f := newClientServiceFixture(t)
		ctx := context.Background()

		f.linkages.On("DeleteByClientAndAccount", ctx, int64(7), int64(42)).
			Return(store.ErrClientAccountNotFound)

		err := f.service.RemoveAccountLink(ctx, 7, 42)

		assert.ErrorIs(t, err, store.ErrClientAccountNotFound)
	})
}
