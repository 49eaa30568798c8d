package service

import "errors"

// Service-level errors raised when a gateway call fails mid-operation.
// Local absence keeps surfacing as the store sentinels (store.ErrAccountNotFound
// and friends); the errors here exist because the coordinator must never leak
// the gateway's raw failure type to its callers.
var (
	// ErrClientNotFound is returned by account creation when the client
	// service could not resolve the requested client. It also covers a
	// failed link registration at the end of creation: by then the account
	// exists durably, but the caller still sees the same error.
	ErrClientNotFound = errors.New("client not found")

	// ErrAccountClientLinkNotFound is returned when the account side could
	// not reach the client linked to an account, during detail lookup or
	// after a local delete whose follow-up link removal failed.
	ErrAccountClientLinkNotFound = errors.New("no client associated with account")

	// ErrClientAccountLinkNotFound is the mirror error on the client side:
	// the accounts linked to a client could not be fetched from the
	// account service.
	ErrClientAccountLinkNotFound = errors.New("no accounts associated with client")
)
