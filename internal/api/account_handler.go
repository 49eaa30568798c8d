// Package api provides HTTP handlers for the API.
package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"github.com/andesbank/core-banking/internal/api/shared"
	"github.com/andesbank/core-banking/internal/domain"
	"github.com/andesbank/core-banking/internal/gateway"
	"github.com/andesbank/core-banking/internal/platform/logger"
	"github.com/andesbank/core-banking/internal/redact"
	"github.com/andesbank/core-banking/internal/service"
)

// CreateAccountRequest defines the payload for opening an account.
type CreateAccountRequest struct {
	ClientID       int64           `json:"client_id"       validate:"required,gt=0"`
	AccountType    string          `json:"account_type"    validate:"required"`
	InitialBalance decimal.Decimal `json:"initial_balance"`
	Status         bool            `json:"status"`
}

// UpdateAccountRequest defines the payload for updating an account.
type UpdateAccountRequest struct {
	AccountType    string          `json:"account_type"    validate:"required"`
	InitialBalance decimal.Decimal `json:"initial_balance"`
	Status         bool            `json:"status"`
}

// UpdateBalanceRequest defines the payload for replacing an account balance.
type UpdateBalanceRequest struct {
	Balance decimal.Decimal `json:"balance"`
}

// AccountResponse represents the response data for an account
type AccountResponse struct {
	ID             int64           `json:"id"`
	AccountNumber  string          `json:"account_number"`
	AccountType    string          `json:"account_type"`
	InitialBalance decimal.Decimal `json:"initial_balance"`
	Status         bool            `json:"status"`
	ClientID       int64           `json:"client_id"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// AccountDetailResponse represents an account composed with a snapshot of
// its client, fetched from the client service at request time.
type AccountDetailResponse struct {
	Account AccountResponse `json:"account"`
	Client  *domain.Client  `json:"client"`
}

// AccountHandler handles account-related HTTP requests
type AccountHandler struct {
	accountService service.AccountService
	logger         *slog.Logger
}

// NewAccountHandler creates a new AccountHandler
func NewAccountHandler(accountService service.AccountService, logger *slog.Logger) *AccountHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for AccountHandler")
	}

	return &AccountHandler{
		accountService: accountService,
		logger:         logger.With(slog.String("component", "account_handler")),
	}
}

// ListAccounts handles GET / requests
func (h *AccountHandler) ListAccounts(w http.ResponseWriter, r *http.Request) {
	accounts, err := h.accountService.ListAccounts(r.Context())
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list accounts")
		return
	}

	response := make([]AccountResponse, len(accounts))
	for i, account := range accounts {
		response[i] = accountToResponse(account)
	}
	shared.RespondWithJSON(w, r, http.StatusOK, response)
}

// GetAccount handles GET /{id} requests. The response carries only the
// locally owned fields; no remote call is made.
func (h *AccountHandler) GetAccount(w http.ResponseWriter, r *http.Request) {
	accountID, err := getPathID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	account, err := h.accountService.GetAccountByID(r.Context(), accountID)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, accountToResponse(account))
}

// GetAccountDetail handles GET /detail/{id} requests. The account is
// composed with a fresh client snapshot from the client service.
func (h *AccountHandler) GetAccountDetail(w http.ResponseWriter, r *http.Request) {
	accountID, err := getPathID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	detail, err := h.accountService.GetAccountWithClientDetail(r.Context(), accountID)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, AccountDetailResponse{
		Account: accountToResponse(detail.Account),
		Client:  detail.Client,
	})
}

// CreateAccount handles POST / requests
func (h *AccountHandler) CreateAccount(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	// A JSON null body decodes to a nil request and flows through the
	// service as a no-op.
	var req *CreateAccountRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		log.Warn("invalid request format", slog.String("error", redact.Error(err)))
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	var input *service.CreateAccountInput
	if req != nil {
		if err := shared.ValidateRequest(req); err != nil {
			log.Warn("validation error", slog.String("error", redact.Error(err)))
			shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, SanitizeValidationError(err), err)
			return
		}
		input = &service.CreateAccountInput{
			ClientID:       req.ClientID,
			AccountType:    req.AccountType,
			InitialBalance: req.InitialBalance,
			Status:         req.Status,
		}
	}

	detail, err := h.accountService.CreateAccount(r.Context(), input)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}
	if detail == nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Account payload is required")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, AccountDetailResponse{
		Account: accountToResponse(detail.Account),
		Client:  detail.Client,
	})
}

// UpdateAccount handles PUT /{id} requests
func (h *AccountHandler) UpdateAccount(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	accountID, err := getPathID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	var req *UpdateAccountRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		log.Warn("invalid request format", slog.String("error", redact.Error(err)))
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	var input *service.UpdateAccountInput
	if req != nil {
		if err := shared.ValidateRequest(req); err != nil {
			log.Warn("validation error", slog.String("error", redact.Error(err)))
			shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, SanitizeValidationError(err), err)
			return
		}
		input = &service.UpdateAccountInput{
			AccountType:    req.AccountType,
			InitialBalance: req.InitialBalance,
			Status:         req.Status,
		}
	}

	account, err := h.accountService.UpdateAccount(r.Context(), input, accountID)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}
	if account == nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Account payload is required")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, accountToResponse(account))
}

// UpdateAccountBalance handles PATCH /{id}/balance requests
func (h *AccountHandler) UpdateAccountBalance(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	accountID, err := getPathID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	var req UpdateBalanceRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		log.Warn("invalid request format", slog.String("error", redact.Error(err)))
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	account, err := h.accountService.UpdateAccountBalance(r.Context(), accountID, req.Balance)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, accountToResponse(account))
}

// DeleteAccount handles DELETE /{id} requests.
// The local delete commits before the client service is told to drop the
// reverse linkage; a failed follow-up call answers 404 while the account is
// already gone.
func (h *AccountHandler) DeleteAccount(w http.ResponseWriter, r *http.Request) {
	accountID, err := getPathID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	if err := h.accountService.DeleteAccount(r.Context(), accountID); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ListExternalAccounts handles GET /external?account_ids=1,2,3 requests.
// It serves the account summaries the client service composes into its
// detail responses; IDs that match nothing are silently omitted.
func (h *AccountHandler) ListExternalAccounts(w http.ResponseWriter, r *http.Request) {
	ids, err := getQueryIDList(r, "account_ids")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	accounts, err := h.accountService.ListAccountsForPeer(r.Context(), ids)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list accounts")
		return
	}

	summaries := make([]gateway.AccountSummary, len(accounts))
	for i, account := range accounts {
		summaries[i] = gateway.AccountSummary{
			ID:             account.ID,
			AccountNumber:  account.AccountNumber,
			AccountType:    account.AccountType.Name,
			InitialBalance: account.InitialBalance,
			Status:         account.Status,
		}
	}
	shared.RespondWithJSON(w, r, http.StatusOK, summaries)
}

// accountToResponse converts a domain.Account to an AccountResponse
func accountToResponse(account *domain.Account) AccountResponse {
	response := AccountResponse{
		ID:             account.ID,
		AccountNumber:  account.AccountNumber,
		InitialBalance: account.InitialBalance,
		Status:         account.Status,
		CreatedAt:      account.CreatedAt,
		UpdatedAt:      account.UpdatedAt,
	}
	if account.AccountType != nil {
		response.AccountType = account.AccountType.Name
	}
	if account.AccountClient != nil {
		response.ClientID = account.AccountClient.ClientID
	}
	return response
}
