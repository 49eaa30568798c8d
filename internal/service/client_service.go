package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/andesbank/core-banking/internal/domain"
	"github.com/andesbank/core-banking/internal/gateway"
	"github.com/andesbank/core-banking/internal/platform/logger"
	"github.com/andesbank/core-banking/internal/store"
)

// CreateClientInput carries the fields needed to register a client.
type CreateClientInput struct {
	Name           string
	Gender         string
	Age            int
	Identification string
	Address        string
	Phone          string
	Password       string
	Status         bool
}

// UpdateClientInput carries the mutable client fields.
type UpdateClientInput struct {
	Name     string
	Gender   string
	Age      int
	Address  string
	Phone    string
	Password string
	Status   bool
}

// ClientDetail is the read projection for detail responses: the locally
// owned client composed with summaries of its accounts fetched from the
// account service.
type ClientDetail struct {
	Client   *domain.Client
	Accounts []gateway.AccountSummary
}

// ClientService is the mirror of AccountService on the client side. Its
// only remote call is the account-summary fetch behind GetClientDetail;
// the link endpoints are the passive half of the protocol and never call
// back into the account service.
type ClientService interface {
	// ListClients returns all clients; no remote calls.
	ListClients(ctx context.Context) ([]*domain.Client, error)

	// GetClientByID returns the client; local read only.
	GetClientByID(ctx context.Context, clientID int64) (*domain.Client, error)

	// GetClientDetail returns the client enriched with summaries of its
	// accounts. Fails with store.ErrClientNotFound if the client is
	// absent, ErrClientAccountLinkNotFound if the account service call
	// does not succeed.
	GetClientDetail(ctx context.Context, clientID int64) (*ClientDetail, error)

	// GetClientForPeer returns the client snapshot served to the account
	// service's fetch calls; local read only.
	GetClientForPeer(ctx context.Context, clientID int64) (*domain.Client, error)

	// CreateClient registers a new client. A nil input is a defined no-op
	// returning (nil, nil).
	CreateClient(ctx context.Context, input *CreateClientInput) (*domain.Client, error)

	// UpdateClient applies the mutable fields to an existing client.
	// A nil input is a defined no-op returning (nil, nil).
	UpdateClient(ctx context.Context, input *UpdateClientInput, clientID int64) (*domain.Client, error)

	// DeleteClient removes the client and its linkage rows; local only.
	DeleteClient(ctx context.Context, clientID int64) error

	// RegisterAccountLink records the linkage requested by the account
	// service after it opened an account for one of our clients.
	RegisterAccountLink(ctx context.Context, link domain.ClientAccountLink) error

	// RemoveAccountLink drops the linkage after the account service
	// deleted the account.
	RemoveAccountLink(ctx context.Context, clientID, accountID int64) error
}

// clientServiceImpl implements the ClientService interface.
type clientServiceImpl struct {
	clients        store.ClientStore
	linkages       store.ClientAccountStore
	accountGateway gateway.AccountGateway
	logger         *slog.Logger
}

// NewClientService creates a new ClientService.
// It returns an error if any of the required dependencies are nil.
func NewClientService(
	clients store.ClientStore,
	linkages store.ClientAccountStore,
	accountGateway gateway.AccountGateway,
	logger *slog.Logger,
) (ClientService, error) {
	if clients == nil {
		return nil, fmt.Errorf("%w: clients store cannot be nil", domain.ErrValidation)
	}
	if linkages == nil {
		return nil, fmt.Errorf("%w: linkages store cannot be nil", domain.ErrValidation)
	}
	if accountGateway == nil {
		return nil, fmt.Errorf("%w: account gateway cannot be nil", domain.ErrValidation)
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &clientServiceImpl{
		clients:        clients,
		linkages:       linkages,
		accountGateway: accountGateway,
		logger:         logger.With(slog.String("component", "client_service")),
	}, nil
}

// ListClients implements ClientService.ListClients
func (s *clientServiceImpl) ListClients(ctx context.Context) ([]*domain.Client, error) {
	return s.clients.List(ctx)
}

// GetClientByID implements ClientService.GetClientByID
func (s *clientServiceImpl) GetClientByID(ctx context.Context, clientID int64) (*domain.Client, error) {
	return s.clients.GetByID(ctx, clientID)
}

// GetClientDetail implements ClientService.GetClientDetail
func (s *clientServiceImpl) GetClientDetail(ctx context.Context, clientID int64) (*ClientDetail, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	client, err := s.clients.GetByID(ctx, clientID)
	if err != nil {
		return nil, err
	}

	links, err := s.linkages.ListByClientID(ctx, clientID)
	if err != nil {
		return nil, err
	}

	accountIDs := make([]int64, len(links))
	for i, link := range links {
		accountIDs[i] = link.AccountID
	}

	accounts, err := s.accountGateway.FetchAccounts(ctx, accountIDs)
	if err != nil {
		log.Info("account lookup failed during client detail",
			slog.Int64("client_id", clientID),
			slog.Int("linked_accounts", len(accountIDs)),
			slog.String("error", err.Error()))
		return nil, fmt.Errorf("%w: client %d", ErrClientAccountLinkNotFound, clientID)
	}

	return &ClientDetail{Client: client, Accounts: accounts}, nil
}

// GetClientForPeer implements ClientService.GetClientForPeer
func (s *clientServiceImpl) GetClientForPeer(ctx context.Context, clientID int64) (*domain.Client, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)
	log.Debug("serving client snapshot to peer service", slog.Int64("client_id", clientID))
	return s.clients.GetByID(ctx, clientID)
}

// CreateClient implements ClientService.CreateClient
func (s *clientServiceImpl) CreateClient(ctx context.Context, input *CreateClientInput) (*domain.Client, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if input == nil {
		log.Debug("nil client creation input, treating as no-op")
		return nil, nil
	}

	client := &domain.Client{
		Name:           input.Name,
		Gender:         input.Gender,
		Age:            input.Age,
		Identification: input.Identification,
		Address:        input.Address,
		Phone:          input.Phone,
		Password:       input.Password,
		Status:         input.Status,
	}

	if err := s.clients.Create(ctx, client); err != nil {
		return nil, err
	}

	log.Info("client created", slog.Int64("client_id", client.ID))
	return client, nil
}

// UpdateClient implements ClientService.UpdateClient
func (s *clientServiceImpl) UpdateClient(ctx context.Context, input *UpdateClientInput, clientID int64) (*domain.Client, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if input == nil {
		log.Debug("nil client update input, treating as no-op",
			slog.Int64("client_id", clientID))
		return nil, nil
	}

	client, err := s.clients.GetByID(ctx, clientID)
	if err != nil {
		return nil, err
	}

	client.Name = input.Name
	client.Gender = input.Gender
	client.Age = input.Age
	client.Address = input.Address
	client.Phone = input.Phone
	if input.Password != "" {
		client.Password = input.Password
	}
	client.Status = input.Status

	if err := s.clients.Update(ctx, client); err != nil {
		return nil, err
	}

	return client, nil
}

// DeleteClient implements ClientService.DeleteClient
func (s *clientServiceImpl) DeleteClient(ctx context.Context, clientID int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := s.clients.Delete(ctx, clientID); err != nil {
		return err
	}

	log.Info("client deleted", slog.Int64("client_id", clientID))
	return nil
}

// RegisterAccountLink implements ClientService.RegisterAccountLink
func (s *clientServiceImpl) RegisterAccountLink(ctx context.Context, link domain.ClientAccountLink) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	// The client must exist locally before a linkage is recorded for it.
	if _, err := s.clients.GetByID(ctx, link.ClientID); err != nil {
		return err
	}

	linkage := &domain.ClientAccount{ClientID: link.ClientID, AccountID: link.AccountID}
	if err := s.linkages.Create(ctx, linkage); err != nil {
		return err
	}

	log.Info("account link registered",
		slog.Int64("client_id", link.ClientID),
		slog.Int64("account_id", link.AccountID))
	return nil
}

// RemoveAccountLink implements ClientService.RemoveAccountLink
func (s *clientServiceImpl) RemoveAccountLink(ctx context.Context, clientID, accountID int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := s.linkages.DeleteByClientAndAccount(ctx, clientID, accountID); err != nil {
		return err
	}

	log.Info("account link removed",
		slog.Int64("client_id", clientID),
		slog.Int64("account_id", accountID))
	return nil
}
