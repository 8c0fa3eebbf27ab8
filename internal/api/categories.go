package api

import (
	"context"
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/adiwjy/denimstok/internal/model"
	"github.com/adiwjy/denimstok/internal/store"
)

// CategoriesHandler handles category endpoints.
type CategoriesHandler struct {
	DB *sql.DB
}

type createCategoryRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// List handles GET /api/kategori.
func (h *CategoriesHandler) List(w http.ResponseWriter, r *http.Request) {
	categories, err := store.ListCategories(r.Context(), h.DB)
	if err != nil {
		storeError(w, err, "category")
		return
	}
	if categories == nil {
		categories = []model.Category{}
	}
	jsonResponse(w, http.StatusOK, categories)
}

// Create handles POST /api/kategori.
func (h *CategoriesHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createCategoryRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Name == "" {
		jsonError(w, http.StatusBadRequest, "name required")
		return
	}

	category, err := store.CreateCategory(r.Context(), h.DB, req.Name, req.Description)
	if err != nil {
		storeError(w, err, "category")
		return
	}

	recordActivity(r.Context(), h.DB, model.ActionCreate, "category", category.ID, category.Name)
	jsonResponse(w, http.StatusOK, category)
}

// Update handles PUT /api/kategori/{id}.
func (h *CategoriesHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	var upd store.CategoryUpdate
	if err := decodeJSON(r, &upd); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	category, err := store.UpdateCategory(r.Context(), h.DB, id, upd)
	if err != nil {
		storeError(w, err, "category")
		return
	}

	recordActivity(r.Context(), h.DB, model.ActionUpdate, "category", id, category.Name)
	jsonResponse(w, http.StatusOK, category)
}

// recordActivity appends to the activity log, best-effort. A failed log
// write never fails the request that triggered it.
func recordActivity(ctx context.Context, db *sql.DB, action, entity, entityID, details string) {
	if err := store.RecordActivity(ctx, db, action, entity, entityID, details); err != nil {
		slog.Warn("recording activity", "action", action, "entity", entity, "error", err)
	}
}
