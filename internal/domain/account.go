package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Account-specific validation errors. All wrap ErrValidation so callers
// up the stack can treat any of them as a bad-request condition.
var (
	// ErrAccountNumberEmpty is returned when an account's number is empty.
	ErrAccountNumberEmpty = fmt.Errorf("%w: account number cannot be empty", ErrValidation)

	// ErrAccountTypeMissing is returned when an account has no resolved type.
	ErrAccountTypeMissing = fmt.Errorf("%w: account type cannot be empty", ErrValidation)

	// ErrAccountClientMissing is returned when an account is about to be
	// persisted without its client linkage.
	ErrAccountClientMissing = fmt.Errorf("%w: account client linkage cannot be empty", ErrValidation)

	// ErrNegativeBalance is returned when an account balance is negative.
	ErrNegativeBalance = fmt.Errorf("%w: account balance cannot be negative", ErrValidation)
)

// Known account type names. AccountType rows are immutable reference data;
// these constants mirror what the account_types table is seeded with.
const (
	AccountTypeSavings  = "SAVINGS"
	AccountTypeChecking = "CHECKING"
)

// AccountType is an immutable reference row identifying the kind of account.
type AccountType struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// AccountClient is the linkage row the account service keeps for each
// account, pointing at the owning client in the client service. One row per
// account; one remote client may be referenced by many rows.
type AccountClient struct {
	ID       int64 `json:"id"`
	ClientID int64 `json:"client_id"`
}

// Account represents a bank account owned by the account service.
// AccountClient is set once during creation and never changes afterwards.
// The owning client itself lives in the client service and is never stored
// here; detail responses compose an Account with a freshly fetched Client
// snapshot (see service.AccountDetail).
type Account struct {
	ID             int64           `json:"id"`
	AccountNumber  string          `json:"account_number"`
	AccountType    *AccountType    `json:"account_type"`
	InitialBalance decimal.Decimal `json:"initial_balance"`
	Status         bool            `json:"status"`
	AccountClient  *AccountClient  `json:"account_client"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// Validate checks that the Account is complete enough to persist.
// An account is never stored with a dangling type or without its linkage.
func (a *Account) Validate() error {
	if a.AccountNumber == "" {
		return ErrAccountNumberEmpty
	}
	if a.AccountType == nil {
		return ErrAccountTypeMissing
	}
	if a.AccountClient == nil {
		return ErrAccountClientMissing
	}
	if a.InitialBalance.IsNegative() {
		return ErrNegativeBalance
	}
	return nil
}
