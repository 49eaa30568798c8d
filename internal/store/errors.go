package store

import (
	"errors"
	"fmt"
)

// Common store errors used across all store implementations.
var (
	// ErrNotFound is returned when a requested entity does not exist in the
	// store. This is a generic version of the entity-specific not found
	// errors (e.g., ErrAccountNotFound, ErrClientNotFound).
	ErrNotFound = errors.New("entity not found")

	// ErrDuplicate is returned when an operation would create a duplicate
	// of a unique entity (e.g., an account with the same account number).
	ErrDuplicate = errors.New("entity already exists")

	// ErrInvalidEntity is returned when an entity fails validation before
	// being stored. Check the wrapped error for specific validation details.
	ErrInvalidEntity = errors.New("invalid entity")

	// ErrTransactionFailed is returned when a database transaction fails
	// to commit or when an operation within a transaction fails.
	ErrTransactionFailed = errors.New("transaction failed")

	// Entity-specific "not found" errors

	// ErrAccountNotFound indicates that the requested account does not exist.
	ErrAccountNotFound = fmt.Errorf("%w: account", ErrNotFound)

	// ErrAccountTypeNotFound indicates that no account type with the
	// requested name exists.
	ErrAccountTypeNotFound = fmt.Errorf("%w: account type", ErrNotFound)

	// ErrAccountClientNotFound indicates that the requested account-client
	// linkage row does not exist.
	ErrAccountClientNotFound = fmt.Errorf("%w: account client", ErrNotFound)

	// ErrClientNotFound indicates that the requested client does not exist.
	ErrClientNotFound = fmt.Errorf("%w: client", ErrNotFound)

	// ErrClientAccountNotFound indicates that the requested client-account
	// linkage row does not exist.
	ErrClientAccountNotFound = fmt.Errorf("%w: client account", ErrNotFound)

	// Entity-specific "duplicate" errors

	// ErrAccountNumberExists indicates that an account with the generated
	// account number already exists.
	ErrAccountNumberExists = fmt.Errorf("%w: account number", ErrDuplicate)

	// ErrIdentificationExists indicates that a client with the given
	// identification document already exists.
	ErrIdentificationExists = fmt.Errorf("%w: identification", ErrDuplicate)
)

// IsNotFoundError checks if the error is any kind of "not found" error.
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsDuplicateError checks if the error is any kind of "duplicate" error.
func IsDuplicateError(err error) bool {
	return errors.Is(err, ErrDuplicate)
}
