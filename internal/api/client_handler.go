package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/andesbank/core-banking/internal/api/shared"
	"github.com/andesbank/core-banking/internal/domain"
	"github.com/andesbank/core-banking/internal/gateway"
	"github.com/andesbank/core-banking/internal/platform/logger"
	"github.com/andesbank/core-banking/internal/redact"
	"github.com/andesbank/core-banking/internal/service"
)

// CreateClientRequest defines the payload for registering a client.
type CreateClientRequest struct {
	Name           string `json:"name"           validate:"required"`
	Gender         string `json:"gender"         validate:"required"`
	Age            int    `json:"age"            validate:"required,gt=0"`
	Identification string `json:"identification" validate:"required"`
	Address        string `json:"address"        validate:"required"`
	Phone          string `json:"phone"          validate:"required"`
	Password       string `json:"password"       validate:"required"`
	Status         bool   `json:"status"`
}

// UpdateClientRequest defines the payload for updating a client.
// An empty password keeps the stored one.
type UpdateClientRequest struct {
	Name     string `json:"name"    validate:"required"`
	Gender   string `json:"gender"  validate:"required"`
	Age      int    `json:"age"     validate:"required,gt=0"`
	Address  string `json:"address" validate:"required"`
	Phone    string `json:"phone"   validate:"required"`
	Password string `json:"password"`
	Status   bool   `json:"status"`
}

// ClientResponse represents the response data for a client
type ClientResponse struct {
	ID             int64     `json:"id"`
	Name           string    `json:"name"`
	Gender         string    `json:"gender"`
	Age            int       `json:"age"`
	Identification string    `json:"identification"`
	Address        string    `json:"address"`
	Phone          string    `json:"phone"`
	Status         bool      `json:"status"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// ClientDetailResponse represents a client composed with summaries of its
// accounts, fetched from the account service at request time.
type ClientDetailResponse struct {
	Client   ClientResponse           `json:"client"`
	Accounts []gateway.AccountSummary `json:"accounts"`
}

// ClientHandler handles client-related HTTP requests
type ClientHandler struct {
	clientService service.ClientService
	logger        *slog.Logger
}

// NewClientHandler creates a new ClientHandler
func NewClientHandler(clientService service.ClientService, logger *slog.Logger) *ClientHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for ClientHandler")
	}

	return &ClientHandler{
		clientService: clientService,
		logger:        logger.With(slog.String("component", "client_handler")),
	}
}

// ListClients handles GET / requests
func (h *ClientHandler) ListClients(w http.ResponseWriter, r *http.Request) {
	clients, err := h.clientService.ListClients(r.Context())
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list clients")
		return
	}

	response := make([]ClientResponse, len(clients))
	for i, client := range clients {
		response[i] = clientToResponse(client)
	}
	shared.RespondWithJSON(w, r, http.StatusOK, response)
}

// GetClient handles GET /{id} requests
func (h *ClientHandler) GetClient(w http.ResponseWriter, r *http.Request) {
	clientID, err := getPathID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	client, err := h.clientService.GetClientByID(r.Context(), clientID)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, clientToResponse(client))
}

// GetClientDetail handles GET /detail/{id} requests. The client is composed
// with account summaries from the account service.
func (h *ClientHandler) GetClientDetail(w http.ResponseWriter, r *http.Request) {
	clientID, err := getPathID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	detail, err := h.clientService.GetClientDetail(r.Context(), clientID)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	accounts := detail.Accounts
	if accounts == nil {
		accounts = []gateway.AccountSummary{}
	}
	shared.RespondWithJSON(w, r, http.StatusOK, ClientDetailResponse{
		Client:   clientToResponse(detail.Client),
		Accounts: accounts,
	})
}

// CreateClient handles POST / requests
func (h *ClientHandler) CreateClient(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	// A JSON null body decodes to a nil request and flows through the
	// service as a no-op.
	var req *CreateClientRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		log.Warn("invalid request format", slog.String("error", redact.Error(err)))
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	var input *service.CreateClientInput
	if req != nil {
		if err := shared.ValidateRequest(req); err != nil {
			log.Warn("validation error", slog.String("error", redact.Error(err)))
			shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, SanitizeValidationError(err), err)
			return
		}
		input = &service.CreateClientInput{
			Name:           req.Name,
			Gender:         req.Gender,
			Age:            req.Age,
			Identification: req.Identification,
			Address:        req.Address,
			Phone:          req.Phone,
			Password:       req.Password,
			Status:         req.Status,
		}
	}

	client, err := h.clientService.CreateClient(r.Context(), input)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}
	if client == nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Client payload is required")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, clientToResponse(client))
}

// UpdateClient handles PUT /{id} requests
func (h *ClientHandler) UpdateClient(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	clientID, err := getPathID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	var req *UpdateClientRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		log.Warn("invalid request format", slog.String("error", redact.Error(err)))
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	var input *service.UpdateClientInput
	if req != nil {
		if err := shared.ValidateRequest(req); err != nil {
			log.Warn("validation error", slog.String("error", redact.Error(err)))
			shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, SanitizeValidationError(err), err)
			return
		}
		input = &service.UpdateClientInput{
			Name:     req.Name,
			Gender:   req.Gender,
			Age:      req.Age,
			Address:  req.Address,
			Phone:    req.Phone,
			Password: req.Password,
			Status:   req.Status,
		}
	}

	client, err := h.clientService.UpdateClient(r.Context(), input, clientID)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}
	if client == nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Client payload is required")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, clientToResponse(client))
}

// DeleteClient handles DELETE /{id} requests
func (h *ClientHandler) DeleteClient(w http.ResponseWriter, r *http.Request) {
	clientID, err := getPathID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	if err := h.clientService.DeleteClient(r.Context(), clientID); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// GetExternalClient handles GET /external/{id} requests. It serves the
// client snapshot the account service composes into its detail responses.
// The password never appears on the wire; domain.Client excludes it from
// JSON.
func (h *ClientHandler) GetExternalClient(w http.ResponseWriter, r *http.Request) {
	clientID, err := getPathID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	client, err := h.clientService.GetClientForPeer(r.Context(), clientID)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, client)
}

// RegisterExternalLink handles POST /external requests. The account service
// calls this after opening an account for one of our clients; the answer is
// 201 with no body.
func (h *ClientHandler) RegisterExternalLink(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var link domain.ClientAccountLink
	if err := shared.DecodeJSON(r, &link); err != nil {
		log.Warn("invalid request format", slog.String("error", redact.Error(err)))
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := shared.ValidateRequest(link); err != nil {
		log.Warn("validation error", slog.String("error", redact.Error(err)))
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, SanitizeValidationError(err), err)
		return
	}

	if err := h.clientService.RegisterAccountLink(r.Context(), link); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	w.WriteHeader(http.StatusCreated)
}

// RemoveExternalLink handles DELETE /external?client_id=&account_id=
// requests. The account service calls this after deleting an account.
func (h *ClientHandler) RemoveExternalLink(w http.ResponseWriter, r *http.Request) {
	clientID, err := getQueryID(r, "client_id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}
	accountID, err := getQueryID(r, "account_id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	if err := h.clientService.RemoveAccountLink(r.Context(), clientID, accountID); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// clientToResponse converts a domain.Client to a ClientResponse
func clientToResponse(client *domain.Client) ClientResponse {
	return ClientResponse{
		ID:             client.ID,
		Name:           client.Name,
		Gender:         client.Gender,
		Age:            client.Age,
		Identification: client.Identification,
		Address:        client.Address,
		Phone:          client.Phone,
		Status:         client.Status,
		CreatedAt:      client.CreatedAt,
		UpdatedAt:      client.UpdatedAt,
	}
}
