package domain

import (
	"fmt"
	"time"
)

// Client-specific validation errors. All wrap ErrValidation, same as the
// account sentinels.
var (
	// ErrClientNameEmpty is returned when a client's name is empty.
	ErrClientNameEmpty = fmt.Errorf("%w: client name cannot be empty", ErrValidation)

	// ErrClientIdentificationEmpty is returned when a client's identification
	// document number is empty.
	ErrClientIdentificationEmpty = fmt.Errorf("%w: client identification cannot be empty", ErrValidation)

	// ErrClientAgeInvalid is returned when a client's age is zero or negative.
	ErrClientAgeInvalid = fmt.Errorf("%w: client age must be positive", ErrValidation)
)

// Client represents a person registered with the client service.
// The account service only ever sees read-only snapshots of this type,
// fetched per request through the gateway; it never persists them.
type Client struct {
	ID             int64     `json:"id"`
	Name           string    `json:"name"`
	Gender         string    `json:"gender"`
	Age            int       `json:"age"`
	Identification string    `json:"identification"`
	Address        string    `json:"address"`
	Phone          string    `json:"phone"`
	Password       string    `json:"-"`
	Status         bool      `json:"status"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// Validate checks that the Client has the fields the client service
// requires before persisting it.
func (c *Client) Validate() error {
	if c.Name == "" {
		return ErrClientNameEmpty
	}
	if c.Identification == "" {
		return ErrClientIdentificationEmpty
	}
	if c.Age <= 0 {
		return ErrClientAgeInvalid
	}
	return nil
}

// ClientAccount is the linkage row the client service keeps for each account
// a client holds on the account service. It is written and removed by the
// inbound register-link / remove-link endpoints; the client service never
// reaches back into the account service to maintain it.
type ClientAccount struct {
	ID        int64 `json:"id"`
	AccountID int64 `json:"account_id"`
	ClientID  int64 `json:"client_id"`
}
