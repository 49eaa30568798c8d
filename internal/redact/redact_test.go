package redact_test

import (
	"errors"
	"testing"

	"github.com/andesbank/core-banking/internal/redact"
	"github.com/stretchr/testify/assert"
)

func TestString(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "empty string",
			input:    "",
			expected: "",
		},
		{
			name:     "plain message untouched",
			input:    "account not found",
			expected: "account not found",
		},
		{
			name:     "postgres connection string",
			input:    "dial failed: postgres://banking:hunter2@db:5432/accounts",
			expected: "dial failed: [REDACTED_CREDENTIAL]db:5432/accounts",
		},
		{
			name:     "password in message",
			input:    "login rejected: password=supersecret",
			expected: "login rejected: [REDACTED_CREDENTIAL]",
		},
		{
			name:     "sql fragment",
			input:    "query failed: SELECT id, account_number FROM accounts WHERE id = 42",
			expected: "query failed: [REDACTED_SQL]",
		},
		{
			name:     "unix path",
			input:    "open /etc/banking/config.yaml failed",
			expected: "open [REDACTED_PATH] failed",
		},
		{
			name:     "email address",
			input:    "notify jose.lema@example.com failed",
			expected: "notify [REDACTED_EMAIL] failed",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, redact.String(tc.input))
		})
	}
}

func TestIdentificationRedaction(t *testing.T) {
	redacted := redact.String(`duplicate identification: "1718231001"`)
	assert.NotContains(t, redacted, "1718231001")
	assert.Contains(t, redacted, "[REDACTED_IDENTIFICATION]")
}

func TestError(t *testing.T) {
	assert.Equal(t, "", redact.Error(nil))

	err := errors.New("connect to postgres://u:p@host:5432/db refused")
	redacted := redact.Error(err)
	assert.NotContains(t, redacted, "u:p")
	assert.Contains(t, redacted, "[REDACTED_CREDENTIAL]")
}
