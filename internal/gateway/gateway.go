// Package gateway defines the outbound boundary between the two services.
// Each service talks to its peer exclusively through the interfaces here;
// every failure surfaces as a *RemoteError so callers never see raw
// transport errors.
package gateway

import (
	"context"
	"errors"
	"fmt"

	"github.com/andesbank/core-banking/internal/domain"
	"github.com/shopspring/decimal"
)

// FailureKind tags why a remote call failed. The entity being absent on the
// remote side and the remote being unreachable arrive over the same wire
// signal; the tag records what could be distinguished (HTTP status vs.
// transport error) so tests and logs can tell the cases apart, even though
// the services map every kind to the same domain error per operation.
type FailureKind int

const (
	// KindNotFound means the peer answered and said the entity is absent.
	KindNotFound FailureKind = iota

	// KindUnreachable means the call never completed (connection, timeout,
	// canceled context).
	KindUnreachable

	// KindOther covers completed calls with any other non-success answer.
	KindOther
)

// String returns a short label for the failure kind, used in logs.
func (k FailureKind) String() string {
	switch k {
	case KindNotFound:
		return "not_found"
	case KindUnreachable:
		return "unreachable"
	default:
		return "other"
	}
}

// RemoteError is the single failure type every gateway call returns.
type RemoteError struct {
	Kind      FailureKind
	Operation string // e.g. "fetch client", "register link"
	Err       error  // underlying transport or decode error, may be nil
}

// Error implements the error interface for RemoteError.
func (e *RemoteError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("remote %s failed (%s): %v", e.Operation, e.Kind, e.Err)
	}
	return fmt.Sprintf("remote %s failed (%s)", e.Operation, e.Kind)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *RemoteError) Unwrap() error {
	return e.Err
}

// AsRemoteError extracts a *RemoteError from err, if it carries one.
func AsRemoteError(err error) (*RemoteError, bool) {
	var remoteErr *RemoteError
	if errors.As(err, &remoteErr) {
		return remoteErr, true
	}
	return nil, false
}

// AccountSummary is the lighter account projection the account service
// exposes to its peer. It deliberately omits the client linkage; the client
// service already knows which of its clients the accounts belong to.
type AccountSummary struct {
	ID             int64           `json:"id"`
	AccountNumber  string          `json:"account_number"`
	AccountType    string          `json:"account_type"`
	InitialBalance decimal.Decimal `json:"initial_balance"`
	Status         bool            `json:"status"`
}

// ClientGateway is the account service's view of the client service.
type ClientGateway interface {
	// FetchClient retrieves a read-only snapshot of a client.
	FetchClient(ctx context.Context, clientID int64) (*domain.Client, error)

	// RegisterLink asks the client service to record an account↔client
	// linkage on its side.
	RegisterLink(ctx context.Context, link domain.ClientAccountLink) error

	// RemoveLink asks the client service to remove a previously registered
	// linkage.
	RemoveLink(ctx context.Context, clientID, accountID int64) error
}

// AccountGateway is the client service's view of the account service.
type AccountGateway interface {
	// FetchAccounts retrieves summaries for the given account IDs.
	// Unknown IDs are omitted by the peer, not reported as errors.
	FetchAccounts(ctx context.Context, accountIDs []int64) ([]AccountSummary, error)
}
