package api

import (
	"database/sql"
	"net/http"

	"github.com/adiwjy/denimstok/internal/imaging"
	"github.com/adiwjy/denimstok/internal/model"
	"github.com/adiwjy/denimstok/internal/store"
)

// ProductsHandler handles product endpoints.
type ProductsHandler struct {
	DB *sql.DB
}

// List handles GET /api/produk.
func (h *ProductsHandler) List(w http.ResponseWriter, r *http.Request) {
	search := r.URL.Query().Get("search")
	products, err := store.ListProducts(r.Context(), h.DB, search)
	if err != nil {
		storeError(w, err, "product")
		return
	}
	if products == nil {
		products = []model.Product{}
	}
	jsonResponse(w, http.StatusOK, products)
}

// Create handles POST /api/produk.
func (h *ProductsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req store.ProductInput
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.CategoryID == "" || req.SupplierID == "" || req.Code == "" ||
		req.Brand == "" || req.Model == "" || req.Size == "" {
		jsonError(w, http.StatusBadRequest, "category_id, supplier_id, code, brand, model, and size required")
		return
	}
	if req.Price.IsNegative() {
		jsonError(w, http.StatusBadRequest, "price must not be negative")
		return
	}
	if req.StockQuantity < 0 {
		jsonError(w, http.StatusBadRequest, "stock_quantity must not be negative")
		return
	}

	product, err := store.CreateProduct(r.Context(), h.DB, req)
	if err != nil {
		storeError(w, err, "product")
		return
	}

	recordActivity(r.Context(), h.DB, model.ActionCreate, "product", product.ID, product.Code)
	jsonResponse(w, http.StatusOK, product)
}

// Get handles GET /api/produk/{id}.
func (h *ProductsHandler) Get(w http.ResponseWriter, r *http.Request) {
	product, err := store.GetProduct(r.Context(), h.DB, r.PathValue("id"))
	if err != nil {
		storeError(w, err, "product")
		return
	}
	jsonResponse(w, http.StatusOK, product)
}

// Update handles PUT /api/produk/{id}.
func (h *ProductsHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	var upd store.ProductUpdate
	if err := decodeJSON(r, &upd); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if upd.Price != nil && upd.Price.IsNegative() {
		jsonError(w, http.StatusBadRequest, "price must not be negative")
		return
	}
	if upd.StockQuantity != nil && *upd.StockQuantity < 0 {
		jsonError(w, http.StatusBadRequest, "stock_quantity must not be negative")
		return
	}

	product, err := store.UpdateProduct(r.Context(), h.DB, id, upd)
	if err != nil {
		storeError(w, err, "product")
		return
	}

	recordActivity(r.Context(), h.DB, model.ActionUpdate, "product", id, product.Code)
	jsonResponse(w, http.StatusOK, product)
}

// Delete handles DELETE /api/produk/{id}.
func (h *ProductsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	if err := store.DeleteProduct(r.Context(), h.DB, id); err != nil {
		storeError(w, err, "product")
		return
	}

	recordActivity(r.Context(), h.DB, model.ActionDelete, "product", id, "")
	jsonResponse(w, http.StatusOK, map[string]string{"message": "product deleted"})
}

// UploadPhoto handles PUT /api/produk/{id}/photo.
func (h *ProductsHandler) UploadPhoto(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	// Limit to 5 MB.
	r.Body = http.MaxBytesReader(w, r.Body, 5<<20)

	if err := r.ParseMultipartForm(5 << 20); err != nil {
		jsonError(w, http.StatusBadRequest, "file too large or invalid multipart form")
		return
	}

	file, _, err := r.FormFile("photo")
	if err != nil {
		jsonError(w, http.StatusBadRequest, "photo file required")
		return
	}
	defer file.Close()

	photo, err := imaging.ProcessPhoto(file)
	if err != nil {
		jsonError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := store.SetProductPhoto(r.Context(), h.DB, id, photo.Data, photo.MIME); err != nil {
		storeError(w, err, "product")
		return
	}

	recordActivity(r.Context(), h.DB, model.ActionUpdate, "product", id, "photo uploaded")
	jsonResponse(w, http.StatusOK, map[string]string{"message": "photo uploaded"})
}

// GetPhoto handles GET /api/produk/{id}/photo.
func (h *ProductsHandler) GetPhoto(w http.ResponseWriter, r *http.Request) {
	data, mime, err := store.GetProductPhoto(r.Context(), h.DB, r.PathValue("id"))
	if err != nil {
		storeError(w, err, "product photo")
		return
	}

	w.Header().Set("Content-Type", mime)
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.Write(data)
}
