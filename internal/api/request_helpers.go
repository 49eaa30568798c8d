package api

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/andesbank/core-banking/internal/domain"
)

// getPathID extracts a numeric ID from the URL path parameters.
//
// Returns:
//   - (id, nil): The parsed ID if valid
//   - (0, error): Zero and an appropriate error if the parameter is missing
//     or not a positive integer
func getPathID(r *http.Request, paramName string) (int64, error) {
	pathParam := chi.URLParam(r, paramName)
	if pathParam == "" {
		return 0, fmt.Errorf("%w: %s is required", domain.ErrValidation, paramName)
	}

	id, err := strconv.ParseInt(pathParam, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %s", domain.ErrInvalidID, paramName)
	}

	return id, nil
}

// getQueryID extracts a numeric ID from the URL query parameters.
func getQueryID(r *http.Request, paramName string) (int64, error) {
	queryParam := r.URL.Query().Get(paramName)
	if queryParam == "" {
		return 0, fmt.Errorf("%w: %s is required", domain.ErrValidation, paramName)
	}

	id, err := strconv.ParseInt(queryParam, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %s", domain.ErrInvalidID, paramName)
	}

	return id, nil
}

// getQueryIDList extracts a comma-separated list of numeric IDs from the URL
// query parameters. An absent or empty parameter yields an empty list, not an
// error; the callers treat an empty list as "nothing to look up".
func getQueryIDList(r *http.Request, paramName string) ([]int64, error) {
	raw := r.URL.Query().Get(paramName)
	if raw == "" {
		return nil, nil
	}

	parts := strings.Split(raw, ",")
	ids := make([]int64, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.ParseInt(part, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", domain.ErrInvalidID, paramName)
		}
		ids = append(ids, id)
	}

	return ids, nil
}
