package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/andesbank/core-banking/internal/domain"
	"github.com/andesbank/core-banking/internal/platform/logger"
)

// HTTPClientGateway implements ClientGateway over the client service's
// external HTTP endpoints. A plain blocking call per operation, no retries;
// timeout policy belongs to the injected http.Client, not to this type.
type HTTPClientGateway struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewHTTPClientGateway creates a gateway for the client service reachable at
// baseURL (e.g. "http://clientsvc:8081/api/v1/clients").
// If httpClient is nil, http.DefaultClient is used. If logger is nil, a
// default logger will be used.
func NewHTTPClientGateway(baseURL string, httpClient *http.Client, logger *slog.Logger) *HTTPClientGateway {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &HTTPClientGateway{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
		logger:     logger.With(slog.String("component", "client_gateway")),
	}
}

// Ensure HTTPClientGateway implements ClientGateway
var _ ClientGateway = (*HTTPClientGateway)(nil)

// FetchClient implements ClientGateway.FetchClient
// It calls GET {base}/external/{clientID} on the client service.
func (g *HTTPClientGateway) FetchClient(ctx context.Context, clientID int64) (*domain.Client, error) {
	log := logger.FromContextOrDefault(ctx, g.logger)

	endpoint := fmt.Sprintf("%s/external/%d", g.baseURL, clientID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, &RemoteError{Kind: KindOther, Operation: "fetch client", Err: err}
	}

	resp, err := g.httpClient.Do(req)
	if err != nil {
		log.Warn("client service unreachable",
			slog.String("operation", "fetch client"),
			slog.Int64("client_id", clientID),
			slog.String("error", err.Error()))
		return nil, &RemoteError{Kind: KindUnreachable, Operation: "fetch client", Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		drain(resp.Body)
		log.Debug("client service rejected fetch",
			slog.Int64("client_id", clientID),
			slog.Int("status", resp.StatusCode))
		return nil, remoteErrorFromStatus("fetch client", resp.StatusCode)
	}

	var client domain.Client
	if err := json.NewDecoder(resp.Body).Decode(&client); err != nil {
		return nil, &RemoteError{Kind: KindOther, Operation: "fetch client", Err: err}
	}

	return &client, nil
}

// RegisterLink implements ClientGateway.RegisterLink
// It calls POST {base}/external with the linkage message; the peer answers
// 201 with no body.
func (g *HTTPClientGateway) RegisterLink(ctx context.Context, link domain.ClientAccountLink) error {
	log := logger.FromContextOrDefault(ctx, g.logger)

	body, err := json.Marshal(link)
	if err != nil {
		return &RemoteError{Kind: KindOther, Operation: "register link", Err: err}
	}

	endpoint := g.baseURL + "/external"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return &RemoteError{Kind: KindOther, Operation: "register link", Err: err}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.httpClient.Do(req)
	if err != nil {
		log.Warn("client service unreachable",
			slog.String("operation", "register link"),
			slog.Int64("account_id", link.AccountID),
			slog.Int64("client_id", link.ClientID),
			slog.String("error", err.Error()))
		return &RemoteError{Kind: KindUnreachable, Operation: "register link", Err: err}
	}
	defer func() { _ = resp.Body.Close() }()
	drain(resp.Body)

	if resp.StatusCode != http.StatusCreated {
		log.Debug("client service rejected link registration",
			slog.Int64("account_id", link.AccountID),
			slog.Int64("client_id", link.ClientID),
			slog.Int("status", resp.StatusCode))
		return remoteErrorFromStatus("register link", resp.StatusCode)
	}

	return nil
}

// RemoveLink implements ClientGateway.RemoveLink
// It calls DELETE {base}/external?client_id=...&account_id=...; the peer
// answers 204 with no body.
func (g *HTTPClientGateway) RemoveLink(ctx context.Context, clientID, accountID int64) error {
	log := logger.FromContextOrDefault(ctx, g.logger)

	params := url.Values{}
	params.Set("client_id", strconv.FormatInt(clientID, 10))
	params.Set("account_id", strconv.FormatInt(accountID, 10))
	endpoint := g.baseURL + "/external?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, endpoint, nil)
	if err != nil {
		return &RemoteError{Kind: KindOther, Operation: "remove link", Err: err}
	}

	resp, err := g.httpClient.Do(req)
	if err != nil {
		log.Warn("client service unreachable",
			slog.String("operation", "remove link"),
			slog.Int64("client_id", clientID),
			slog.Int64("account_id", accountID),
			slog.String("error", err.Error()))
		return &RemoteError{Kind: KindUnreachable, Operation: "remove link", Err: err}
	}
	defer func() { _ = resp.Body.Close() }()
	drain(resp.Body)

	if resp.StatusCode != http.StatusNoContent {
		log.Debug("client service rejected link removal",
			slog.Int64("client_id", clientID),
			slog.Int64("account_id", accountID),
			slog.Int("status", resp.StatusCode))
		return remoteErrorFromStatus("remove link", resp.StatusCode)
	}

	return nil
}

// remoteErrorFromStatus tags a completed-but-unsuccessful response.
func remoteErrorFromStatus(operation string, status int) *RemoteError {
	kind := KindOther
	if status == http.StatusNotFound {
		kind = KindNotFound
	}
	return &RemoteError{
		Kind:      kind,
		Operation: operation,
		Err:       fmt.Errorf("peer returned status %d", status),
	}
}

// drain discards the remainder of a response body so the connection can be
// reused by the transport.
func drain(body io.Reader) {
	_, _ = io.Copy(io.Discard, body)
}
