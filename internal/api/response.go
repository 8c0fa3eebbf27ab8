package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/adiwjy/denimstok/internal/store"
)

// jsonResponse writes a JSON response with the given status code.
func jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			slog.Error("encoding response", "error", err)
		}
	}
}

// jsonError writes a JSON error response.
func jsonError(w http.ResponseWriter, status int, message string) {
	jsonResponse(w, status, map[string]string{"error": message})
}

// decodeJSON decodes a JSON request body into the given target.
func decodeJSON(r *http.Request, target any) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(target)
}

// storeError translates a store failure to its HTTP status. entity names
// the collection for not-found messages; anything untyped is a store
// failure and surfaces as 500.
func storeError(w http.ResponseWriter, err error, entity string) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		jsonError(w, http.StatusNotFound, entity+" not found")
	case errors.Is(err, store.ErrEmptyUpdate):
		jsonError(w, http.StatusBadRequest, "no fields to update")
	case errors.Is(err, store.ErrInsufficientStock):
		jsonError(w, http.StatusBadRequest, "insufficient stock")
	case errors.Is(err, store.ErrInvalidQuantity):
		jsonError(w, http.StatusBadRequest, "quantity must be a positive integer")
	case errors.Is(err, store.ErrEmptyName):
		jsonError(w, http.StatusBadRequest, "name must not be empty")
	default:
		slog.Error("store operation failed", "entity", entity, "error", err)
		jsonError(w, http.StatusInternalServerError, "internal error")
	}
}
