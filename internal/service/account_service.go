package service

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/andesbank/core-banking/internal/domain"
	"github.com/andesbank/core-banking/internal/gateway"
	"github.com/andesbank/core-banking/internal/platform/logger"
	"github.com/andesbank/core-banking/internal/store"
	"github.com/shopspring/decimal"
)

// CreateAccountInput carries the fields needed to open an account.
type CreateAccountInput struct {
	ClientID       int64
	AccountType    string
	InitialBalance decimal.Decimal
	Status         bool
}

// UpdateAccountInput carries the mutable account fields.
type UpdateAccountInput struct {
	AccountType    string
	InitialBalance decimal.Decimal
	Status         bool
}

// AccountDetail is the read projection for detail responses: the locally
// owned account composed with a fresh snapshot of its client fetched from
// the client service. The snapshot is request-scoped and never persisted.
type AccountDetail struct {
	Account *domain.Account
	Client  *domain.Client
}

// AccountService orchestrates each account lifecycle operation as an ordered
// sequence of local reads, remote calls, and local writes, and translates
// gateway failures into the domain errors in errors.go.
//
// Remote calls sit outside any local transaction: a failed call after a
// committed write is answered with an error, never with a compensating
// rollback. Account creation deliberately keeps the legacy ordering in which
// the AccountClient linkage row is persisted before the account type is
// resolved, so a bad type name leaves that row behind.
type AccountService interface {
	// ListAccounts returns all accounts; no remote calls.
	ListAccounts(ctx context.Context) ([]*domain.Account, error)

	// ListAccountsForPeer returns the accounts matching ids, for
	// consumption by the client service. Unknown ids are silently omitted.
	ListAccountsForPeer(ctx context.Context, ids []int64) ([]*domain.Account, error)

	// GetAccountWithClientDetail returns the account enriched with its
	// client snapshot. Fails with store.ErrAccountNotFound if the account
	// is absent, ErrAccountClientLinkNotFound if the client service call
	// does not succeed.
	GetAccountWithClientDetail(ctx context.Context, accountID int64) (*AccountDetail, error)

	// GetAccountByID returns the account; local read only.
	GetAccountByID(ctx context.Context, accountID int64) (*domain.Account, error)

	// CreateAccount opens an account for input.ClientID. A nil input is a
	// defined no-op returning (nil, nil). See the interface comment for the
	// failure windows this operation keeps.
	CreateAccount(ctx context.Context, input *CreateAccountInput) (*AccountDetail, error)

	// UpdateAccount applies the mutable fields to an existing account.
	// A nil input is a defined no-op returning (nil, nil). An unknown
	// account type name is silently ignored here, unlike creation.
	// No remote calls.
	UpdateAccount(ctx context.Context, input *UpdateAccountInput, accountID int64) (*domain.Account, error)

	// DeleteAccount removes the account locally, then asks the client
	// service to drop the reverse linkage. The local delete is not rolled
	// back when that follow-up call fails; the failure surfaces as
	// ErrAccountClientLinkNotFound.
	DeleteAccount(ctx context.Context, accountID int64) error

	// UpdateAccountBalance replaces the account's balance; no remote calls.
	UpdateAccountBalance(ctx context.Context, accountID int64, newBalance decimal.Decimal) (*domain.Account, error)
}

// accountServiceImpl implements the AccountService interface.
type accountServiceImpl struct {
	db            *sql.DB
	accounts      store.AccountStore
	accountTypes  store.AccountTypeStore
	linkages      store.AccountClientStore
	clientGateway gateway.ClientGateway
	logger        *slog.Logger
}

// NewAccountService creates a new AccountService.
// It returns an error if any of the required dependencies are nil.
func NewAccountService(
	db *sql.DB,
	accounts store.AccountStore,
	accountTypes store.AccountTypeStore,
	linkages store.AccountClientStore,
	clientGateway gateway.ClientGateway,
	logger *slog.Logger,
) (AccountService, error) {
	if db == nil {
		return nil, fmt.Errorf("%w: db cannot be nil", domain.ErrValidation)
	}
	if accounts == nil {
		return nil, fmt.Errorf("%w: accounts store cannot be nil", domain.ErrValidation)
	}
	if accountTypes == nil {
		return nil, fmt.Errorf("%w: account types store cannot be nil", domain.ErrValidation)
	}
	if linkages == nil {
		return nil, fmt.Errorf("%w: linkages store cannot be nil", domain.ErrValidation)
	}
	if clientGateway == nil {
		return nil, fmt.Errorf("%w: client gateway cannot be nil", domain.ErrValidation)
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &accountServiceImpl{
		db:            db,
		accounts:      accounts,
		accountTypes:  accountTypes,
		linkages:      linkages,
		clientGateway: clientGateway,
		logger:        logger.With(slog.String("component", "account_service")),
	}, nil
}

// ListAccounts implements AccountService.ListAccounts
func (s *accountServiceImpl) ListAccounts(ctx context.Context) ([]*domain.Account, error) {
	return s.accounts.List(ctx)
}

// ListAccountsForPeer implements AccountService.ListAccountsForPeer
func (s *accountServiceImpl) ListAccountsForPeer(ctx context.Context, ids []int64) ([]*domain.Account, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)
	log.Debug("listing accounts for peer service", slog.Int("requested", len(ids)))
	return s.accounts.ListByIDs(ctx, ids)
}

// GetAccountWithClientDetail implements AccountService.GetAccountWithClientDetail
func (s *accountServiceImpl) GetAccountWithClientDetail(ctx context.Context, accountID int64) (*AccountDetail, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	account, err := s.accounts.GetByID(ctx, accountID)
	if err != nil {
		return nil, err
	}

	client, err := s.clientGateway.FetchClient(ctx, account.AccountClient.ClientID)
	if err != nil {
		// The gateway's failure type stays here; callers only ever see the
		// domain error.
		log.Info("client lookup failed during account detail",
			slog.Int64("account_id", accountID),
			slog.Int64("client_id", account.AccountClient.ClientID),
			slog.String("error", err.Error()))
		return nil, fmt.Errorf("%w: account %d", ErrAccountClientLinkNotFound, accountID)
	}

	return &AccountDetail{Account: account, Client: client}, nil
}

// GetAccountByID implements AccountService.GetAccountByID
func (s *accountServiceImpl) GetAccountByID(ctx context.Context, accountID int64) (*domain.Account, error) {
	return s.accounts.GetByID(ctx, accountID)
}

// CreateAccount implements AccountService.CreateAccount
func (s *accountServiceImpl) CreateAccount(ctx context.Context, input *CreateAccountInput) (*AccountDetail, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if input == nil {
		log.Debug("nil account creation input, treating as no-op")
		return nil, nil
	}

	// Step 1: the client must exist on the client service before anything
	// is written locally.
	client, err := s.clientGateway.FetchClient(ctx, input.ClientID)
	if err != nil {
		log.Info("client lookup failed during account creation",
			slog.Int64("client_id", input.ClientID),
			slog.String("error", err.Error()))
		return nil, fmt.Errorf("%w: client %d", ErrClientNotFound, input.ClientID)
	}

	// Step 2: persist the linkage row. This happens before the account type
	// is resolved; a bad type name below leaves this row behind. Legacy
	// ordering, kept on purpose.
	accountClient := &domain.AccountClient{ClientID: client.ID}
	if err := s.linkages.Create(ctx, accountClient); err != nil {
		return nil, err
	}

	account := &domain.Account{
		AccountNumber:  domain.GenerateAccountNumber(),
		InitialBalance: input.InitialBalance,
		Status:         input.Status,
		AccountClient:  accountClient,
	}

	// Step 3: resolve the account type; creation refuses unknown names.
	accountType, err := s.accountTypes.GetByName(ctx, input.AccountType)
	if err != nil {
		log.Warn("account type not found during account creation",
			slog.String("account_type", input.AccountType))
		return nil, err
	}
	account.AccountType = accountType

	// Step 4: persist the account.
	if err := s.accounts.Create(ctx, account); err != nil {
		return nil, err
	}

	// Step 5: register the reverse linkage on the client service. The
	// account is already durable; a failure here is reported as
	// ErrClientNotFound without undoing the local writes.
	link := domain.ClientAccountLink{AccountID: account.ID, ClientID: client.ID}
	if err := s.clientGateway.RegisterLink(ctx, link); err != nil {
		log.Warn("link registration failed after account creation",
			slog.Int64("account_id", account.ID),
			slog.Int64("client_id", client.ID),
			slog.String("error", err.Error()))
		return nil, fmt.Errorf("%w: client %d", ErrClientNotFound, input.ClientID)
	}

	log.Info("account created",
		slog.Int64("account_id", account.ID),
		slog.String("account_number", account.AccountNumber),
		slog.Int64("client_id", client.ID))

	return &AccountDetail{Account: account, Client: client}, nil
}

// UpdateAccount implements AccountService.UpdateAccount
func (s *accountServiceImpl) UpdateAccount(ctx context.Context, input *UpdateAccountInput, accountID int64) (*domain.Account, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if input == nil {
		log.Debug("nil account update input, treating as no-op",
			slog.Int64("account_id", accountID))
		return nil, nil
	}

	account, err := s.accounts.GetByID(ctx, accountID)
	if err != nil {
		return nil, err
	}

	account.InitialBalance = input.InitialBalance
	account.Status = input.Status

	// Unlike creation, an unknown type name is ignored here and the
	// existing type is kept. Lookup failures that are not absence still
	// abort the update.
	accountType, err := s.accountTypes.GetByName(ctx, input.AccountType)
	switch {
	case err == nil:
		account.AccountType = accountType
	case store.IsNotFoundError(err):
		log.Debug("unknown account type on update, keeping existing type",
			slog.Int64("account_id", accountID),
			slog.String("account_type", input.AccountType))
	default:
		return nil, err
	}

	if err := s.accounts.Update(ctx, account); err != nil {
		return nil, err
	}

	return account, nil
}

// DeleteAccount implements AccountService.DeleteAccount
func (s *accountServiceImpl) DeleteAccount(ctx context.Context, accountID int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	account, err := s.accounts.GetByID(ctx, accountID)
	if err != nil {
		return err
	}

	// The account row and its linkage row go together in one local
	// transaction.
	err = store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		return s.accounts.WithTx(tx).Delete(ctx, accountID)
	})
	if err != nil {
		return err
	}

	// Follow-up call after the local delete has committed. Failure does not
	// resurrect the account.
	if err := s.clientGateway.RemoveLink(ctx, account.AccountClient.ClientID, accountID); err != nil {
		log.Warn("link removal failed after account delete",
			slog.Int64("account_id", accountID),
			slog.Int64("client_id", account.AccountClient.ClientID),
			slog.String("error", err.Error()))
		return fmt.Errorf("%w: account %d", ErrAccountClientLinkNotFound, accountID)
	}

	log.Info("account deleted", slog.Int64("account_id", accountID))
	return nil
}

// UpdateAccountBalance implements AccountService.UpdateAccountBalance
func (s *accountServiceImpl) UpdateAccountBalance(ctx context.Context, accountID int64, newBalance decimal.Decimal) (*domain.Account, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	account, err := s.accounts.GetByID(ctx, accountID)
	if err != nil {
		return nil, err
	}

	account.InitialBalance = newBalance
	if err := s.accounts.Update(ctx, account); err != nil {
		return nil, err
	}

	log.Info("account balance updated",
		slog.Int64("account_id", accountID),
		slog.String("balance", newBalance.String()))
	return account, nil
}
