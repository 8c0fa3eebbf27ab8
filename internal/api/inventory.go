package api

import (
	"database/sql"
	"fmt"
	"net/http"

	"github.com/adiwjy/denimstok/internal/model"
	"github.com/adiwjy/denimstok/internal/store"
)

// InventoryHandler handles inventory and stock movement endpoints.
type InventoryHandler struct {
	DB *sql.DB
}

type stockRequest struct {
	InventoryID string `json:"inventory_id"`
	Quantity    int    `json:"quantity"`
}

type stockResponse struct {
	Message     string `json:"message"`
	NewQuantity int    `json:"new_quantity"`
}

// List handles GET /api/inventory.
func (h *InventoryHandler) List(w http.ResponseWriter, r *http.Request) {
	search := r.URL.Query().Get("search")
	items, err := store.ListInventory(r.Context(), h.DB, search)
	if err != nil {
		storeError(w, err, "inventory item")
		return
	}
	if items == nil {
		items = []model.InventoryItem{}
	}
	jsonResponse(w, http.StatusOK, items)
}

// Create handles POST /api/inventory.
func (h *InventoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req store.InventoryInput
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.ProductID == "" || req.JeansType == "" || req.Size == "" {
		jsonError(w, http.StatusBadRequest, "product_id, jeans_type, and size required")
		return
	}
	if req.Quantity < 0 {
		jsonError(w, http.StatusBadRequest, "quantity must not be negative")
		return
	}

	item, err := store.CreateInventoryItem(r.Context(), h.DB, req)
	if err != nil {
		storeError(w, err, "inventory item")
		return
	}

	recordActivity(r.Context(), h.DB, model.ActionCreate, "inventory", item.ID, item.JeansType)
	jsonResponse(w, http.StatusOK, item)
}

// Get handles GET /api/inventory/{id}.
func (h *InventoryHandler) Get(w http.ResponseWriter, r *http.Request) {
	item, err := store.GetInventoryItem(r.Context(), h.DB, r.PathValue("id"))
	if err != nil {
		storeError(w, err, "inventory item")
		return
	}
	jsonResponse(w, http.StatusOK, item)
}

// Update handles PUT /api/inventory/{id}.
func (h *InventoryHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	var upd store.InventoryUpdate
	if err := decodeJSON(r, &upd); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if upd.Quantity != nil && *upd.Quantity < 0 {
		jsonError(w, http.StatusBadRequest, "quantity must not be negative")
		return
	}

	item, err := store.UpdateInventoryItem(r.Context(), h.DB, id, upd)
	if err != nil {
		storeError(w, err, "inventory item")
		return
	}

	recordActivity(r.Context(), h.DB, model.ActionUpdate, "inventory", id, item.JeansType)
	jsonResponse(w, http.StatusOK, item)
}

// Delete handles DELETE /api/inventory/{id}.
func (h *InventoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	if err := store.DeleteInventoryItem(r.Context(), h.DB, id); err != nil {
		storeError(w, err, "inventory item")
		return
	}

	recordActivity(r.Context(), h.DB, model.ActionDelete, "inventory", id, "")
	jsonResponse(w, http.StatusOK, map[string]string{"message": "inventory item deleted"})
}

// Receive handles POST /api/inventory/receive.
func (h *InventoryHandler) Receive(w http.ResponseWriter, r *http.Request) {
	h.adjust(w, r, model.KindReceive, "stock received successfully")
}

// Ship handles POST /api/inventory/ship.
func (h *InventoryHandler) Ship(w http.ResponseWriter, r *http.Request) {
	h.adjust(w, r, model.KindShip, "stock shipped successfully")
}

func (h *InventoryHandler) adjust(w http.ResponseWriter, r *http.Request, kind, message string) {
	var req stockRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.InventoryID == "" {
		jsonError(w, http.StatusBadRequest, "inventory_id required")
		return
	}

	newQuantity, err := store.AdjustStock(r.Context(), h.DB, req.InventoryID, req.Quantity, kind)
	if err != nil {
		storeError(w, err, "inventory item")
		return
	}

	recordActivity(r.Context(), h.DB, kind, "inventory", req.InventoryID,
		fmt.Sprintf("%s %d", kind, req.Quantity))
	jsonResponse(w, http.StatusOK, stockResponse{Message: message, NewQuantity: newQuantity})
}

// Transactions handles GET /api/inventory/{id}/transactions.
func (h *InventoryHandler) Transactions(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	// The item must exist; its history may still be empty.
	if _, err := store.GetInventoryItem(r.Context(), h.DB, id); err != nil {
		storeError(w, err, "inventory item")
		return
	}

	transactions, err := store.ListTransactions(r.Context(), h.DB, id)
	if err != nil {
		storeError(w, err, "transaction")
		return
	}
	if transactions == nil {
		transactions = []model.StockTransaction{}
	}
	jsonResponse(w, http.StatusOK, transactions)
}
