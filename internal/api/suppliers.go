package api

import (
	"database/sql"
	"net/http"

	"github.com/adiwjy/denimstok/internal/model"
	"github.com/adiwjy/denimstok/internal/store"
)

// SuppliersHandler handles supplier endpoints.
type SuppliersHandler struct {
	DB *sql.DB
}

type createSupplierRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
	Notes string `json:"notes"`
}

// List handles GET /api/suppliers.
func (h *SuppliersHandler) List(w http.ResponseWriter, r *http.Request) {
	suppliers, err := store.ListSuppliers(r.Context(), h.DB)
	if err != nil {
		storeError(w, err, "supplier")
		return
	}
	if suppliers == nil {
		suppliers = []model.Supplier{}
	}
	jsonResponse(w, http.StatusOK, suppliers)
}

// Create handles POST /api/suppliers.
func (h *SuppliersHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createSupplierRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Name == "" || req.Email == "" || req.Phone == "" {
		jsonError(w, http.StatusBadRequest, "name, email, and phone required")
		return
	}

	supplier, err := store.CreateSupplier(r.Context(), h.DB, req.Name, req.Email, req.Phone, req.Notes)
	if err != nil {
		storeError(w, err, "supplier")
		return
	}

	recordActivity(r.Context(), h.DB, model.ActionCreate, "supplier", supplier.ID, supplier.Name)
	jsonResponse(w, http.StatusOK, supplier)
}

// Get handles GET /api/suppliers/{id}.
func (h *SuppliersHandler) Get(w http.ResponseWriter, r *http.Request) {
	supplier, err := store.GetSupplier(r.Context(), h.DB, r.PathValue("id"))
	if err != nil {
		storeError(w, err, "supplier")
		return
	}
	jsonResponse(w, http.StatusOK, supplier)
}

// Update handles PUT /api/suppliers/{id}.
func (h *SuppliersHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	var upd store.SupplierUpdate
	if err := decodeJSON(r, &upd); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	supplier, err := store.UpdateSupplier(r.Context(), h.DB, id, upd)
	if err != nil {
		storeError(w, err, "supplier")
		return
	}

	recordActivity(r.Context(), h.DB, model.ActionUpdate, "supplier", id, supplier.Name)
	jsonResponse(w, http.StatusOK, supplier)
}
