package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"events-marketplace/internal/models"
)

// errorResponse is the single caller-facing failure shape: a human readable
// message, no internal identifiers
type errorResponse struct {
	Error string `json:"error"`
}

// writeJSON writes a JSON response
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// writeError maps a domain error to its HTTP status category
func writeError(w http.ResponseWriter, err error) {
	var invalidZone *models.InvalidZoneError
	var insufficientStock *models.InsufficientStockError
	var persistence *models.PersistenceError

	switch {
	case errors.Is(err, models.ErrClientNotFound),
		errors.Is(err, models.ErrEventNotFound),
		errors.Is(err, models.ErrOrderNotFound),
		errors.Is(err, models.ErrZoneNotFound),
		errors.Is(err, models.ErrUserNotFound),
		errors.As(err, &invalidZone):
		writeJSON(w, http.StatusNotFound, errorResponse{Error: err.Error()})

	case errors.Is(err, models.ErrEventNotAvailable),
		errors.Is(err, models.ErrInvalidInput),
		errors.Is(err, models.ErrInvalidTransition):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})

	case errors.As(err, &insufficientStock):
		writeJSON(w, http.StatusConflict, errorResponse{Error: err.Error()})

	case errors.Is(err, models.ErrForbidden):
		writeJSON(w, http.StatusForbidden, errorResponse{Error: "forbidden"})

	case errors.Is(err, models.ErrInvalidCredentials):
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: err.Error()})

	case errors.Is(err, models.ErrDuplicateEmail):
		writeJSON(w, http.StatusConflict, errorResponse{Error: err.Error()})

	case errors.As(err, &persistence):
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal server error"})

	default:
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal server error"})
	}
}

// decodeJSON decodes a request body, rejecting unknown fields
func decodeJSON(r *http.Request, dest interface{}) error {
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	return decoder.Decode(dest)
}

// pagination reads page/limit query parameters with sane bounds
func pagination(r *http.Request) (limit, offset int) {
	limit = 20
	page := 1

	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := atoiInRange(v, 1, 100); err == nil {
			limit = n
		}
	}
	if v := r.URL.Query().Get("page"); v != "" {
		if n, err := atoiInRange(v, 1, 1000000); err == nil {
			page = n
		}
	}

	return limit, (page - 1) * limit
}

func atoiInRange(s string, min, max int) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	if n < min || n > max {
		return 0, fmt.Errorf("value %d out of range [%d, %d]", n, min, max)
	}
	return n, nil
}
