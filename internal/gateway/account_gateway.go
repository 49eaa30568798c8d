package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/andesbank/core-banking/internal/platform/logger"
)

// HTTPAccountGateway implements AccountGateway over the account service's
// external HTTP endpoint.
type HTTPAccountGateway struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewHTTPAccountGateway creates a gateway for the account service reachable
// at baseURL (e.g. "http://accountsvc:8080/api/v1/accounts").
// If httpClient is nil, http.DefaultClient is used. If logger is nil, a
// default logger will be used.
func NewHTTPAccountGateway(baseURL string, httpClient *http.Client, logger *slog.Logger) *HTTPAccountGateway {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &HTTPAccountGateway{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
		logger:     logger.With(slog.String("component", "account_gateway")),
	}
}

// Ensure HTTPAccountGateway implements AccountGateway
var _ AccountGateway = (*HTTPAccountGateway)(nil)

// FetchAccounts implements AccountGateway.FetchAccounts
// It calls GET {base}/external?account_ids=1,2,3 on the account service.
// IDs the peer does not know are simply missing from the result.
func (g *HTTPAccountGateway) FetchAccounts(ctx context.Context, accountIDs []int64) ([]AccountSummary, error) {
	log := logger.FromContextOrDefault(ctx, g.logger)

	if len(accountIDs) == 0 {
		return []AccountSummary{}, nil
	}

	idList := make([]string, len(accountIDs))
	for i, id := range accountIDs {
		idList[i] = strconv.FormatInt(id, 10)
	}
	params := url.Values{}
	params.Set("account_ids", strings.Join(idList, ","))
	endpoint := g.baseURL + "/external?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, &RemoteError{Kind: KindOther, Operation: "fetch accounts", Err: err}
	}

	resp, err := g.httpClient.Do(req)
	if err != nil {
		log.Warn("account service unreachable",
			slog.String("operation", "fetch accounts"),
			slog.Int("requested", len(accountIDs)),
			slog.String("error", err.Error()))
		return nil, &RemoteError{Kind: KindUnreachable, Operation: "fetch accounts", Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		drain(resp.Body)
		log.Debug("account service rejected fetch",
			slog.Int("requested", len(accountIDs)),
			slog.Int("status", resp.StatusCode))
		return nil, remoteErrorFromStatus("fetch accounts", resp.StatusCode)
	}

	var summaries []AccountSummary
	if err := json.NewDecoder(resp.Body).Decode(&summaries); err != nil {
		return nil, &RemoteError{
			Kind:      KindOther,
			Operation: "fetch accounts",
			Err:       fmt.Errorf("decoding response: %w", err),
		}
	}

	return summaries, nil
}
