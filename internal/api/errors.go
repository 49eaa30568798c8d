package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/andesbank/core-banking/internal/api/shared"
	"github.com/andesbank/core-banking/internal/domain"
	"github.com/andesbank/core-banking/internal/service"
	"github.com/andesbank/core-banking/internal/store"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	// Not found errors: local absence (store sentinels) and remote-derived
	// absence (service sentinels) both answer 404.
	case store.IsNotFoundError(err),
		errors.Is(err, service.ErrClientNotFound),
		errors.Is(err, service.ErrAccountClientLinkNotFound),
		errors.Is(err, service.ErrClientAccountLinkNotFound):
		return http.StatusNotFound

	// Conflict errors
	case store.IsDuplicateError(err):
		return http.StatusConflict

	// Bad request errors
	case errors.Is(err, store.ErrInvalidEntity),
		errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrInvalidID):
		return http.StatusBadRequest

	// Default: internal server error
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. This prevents leaking sensitive internal details.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	switch {
	// Remote-derived errors first: these wrap nothing from the store
	// taxonomy but must keep their exact wording, clients distinguish the
	// partial-failure cases by it.
	case errors.Is(err, service.ErrClientNotFound):
		return "Client not found"

	case errors.Is(err, service.ErrAccountClientLinkNotFound):
		return "No client associated with account"

	case errors.Is(err, service.ErrClientAccountLinkNotFound):
		return "No accounts associated with client"

	// Local not found errors
	case errors.Is(err, store.ErrAccountNotFound):
		return "Account not found"

	case errors.Is(err, store.ErrAccountTypeNotFound):
		return "Account type not found"

	case errors.Is(err, store.ErrClientNotFound):
		return "Client not found"

	case errors.Is(err, store.ErrAccountClientNotFound),
		errors.Is(err, store.ErrClientAccountNotFound):
		return "Linkage not found"

	// Conflict errors
	case errors.Is(err, store.ErrAccountNumberExists):
		return "Account number already exists"

	case errors.Is(err, store.ErrIdentificationExists):
		return "Identification already registered"

	// Bad request errors
	case errors.Is(err, store.ErrInvalidEntity), errors.Is(err, domain.ErrValidation):
		return "Invalid entity data"

	case errors.Is(err, domain.ErrInvalidID):
		return "Invalid ID format"

	default:
		return "An unexpected error occurred"
	}
}

// HandleAPIError maps err to a status code and safe message, then writes the
// JSON error response. An empty overrideMessage keeps the mapped message.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error, overrideMessage string) {
	statusCode := MapErrorToStatusCode(err)
	message := overrideMessage
	if message == "" {
		message = GetSafeErrorMessage(err)
	}
	shared.RespondWithErrorAndLog(w, r, statusCode, message, err)
}

// SanitizeValidationError removes sensitive details from validation errors
// and returns a user-friendly message.
func SanitizeValidationError(err error) string {
	errMsg := err.Error()

	// Check if this is likely a validation error message
	if strings.Contains(errMsg, "Field validation") {
		// Extract the field name and validation tag
		// Example format: "Key: 'CreateClientRequest.Name' Error:Field validation for 'Name' failed on the 'required' tag"
		parts := strings.Split(errMsg, "Error:")
		if len(parts) >= 2 {
			fieldParts := strings.Split(parts[1], "'")
			if len(fieldParts) >= 3 {
				field := fieldParts[1]
				var tag string
				if len(fieldParts) >= 5 {
					tag = fieldParts[3]
				}

				if tag != "" {
					return fmt.Sprintf("Invalid %s: %s", field, getValidationTagMessage(tag))
				}
				return fmt.Sprintf("Invalid %s", field)
			}
		}
	}

	return "Validation error"
}

// getValidationTagMessage maps validation tags to user-friendly error messages
func getValidationTagMessage(tag string) string {
	switch tag {
	case "required":
		return "required field"
	case "min":
		return "too small"
	case "max":
		return "too large"
	case "gte":
		return "value too small"
	case "oneof":
		return "invalid value"
	default:
		return "validation failed"
	}
}
