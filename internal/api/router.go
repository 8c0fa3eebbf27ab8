package api

import (
	"database/sql"
	"net/http"
)

// NewRouter creates the API router with all endpoints registered.
func NewRouter(db *sql.DB, adminUsername string, adminHash []byte, sessionSecret string) http.Handler {
	mux := http.NewServeMux()

	authHandler := &AuthHandler{
		AdminUsername: adminUsername,
		AdminHash:     adminHash,
		SessionSecret: sessionSecret,
	}
	categoriesHandler := &CategoriesHandler{DB: db}
	suppliersHandler := &SuppliersHandler{DB: db}
	productsHandler := &ProductsHandler{DB: db}
	inventoryHandler := &InventoryHandler{DB: db}
	dashboardHandler := &DashboardHandler{DB: db}
	activityHandler := &ActivityHandler{DB: db}

	mux.HandleFunc("POST /api/login", authHandler.Login)

	// Categories.
	mux.HandleFunc("GET /api/kategori", categoriesHandler.List)
	mux.HandleFunc("POST /api/kategori", categoriesHandler.Create)
	mux.HandleFunc("PUT /api/kategori/{id}", categoriesHandler.Update)

	// Suppliers.
	mux.HandleFunc("GET /api/suppliers", suppliersHandler.List)
	mux.HandleFunc("POST /api/suppliers", suppliersHandler.Create)
	mux.HandleFunc("GET /api/suppliers/{id}", suppliersHandler.Get)
	mux.HandleFunc("PUT /api/suppliers/{id}", suppliersHandler.Update)

	// Products.
	mux.HandleFunc("GET /api/produk", productsHandler.List)
	mux.HandleFunc("POST /api/produk", productsHandler.Create)
	mux.HandleFunc("GET /api/produk/{id}", productsHandler.Get)
	mux.HandleFunc("PUT /api/produk/{id}", productsHandler.Update)
	mux.HandleFunc("DELETE /api/produk/{id}", productsHandler.Delete)
	mux.HandleFunc("PUT /api/produk/{id}/photo", productsHandler.UploadPhoto)
	mux.HandleFunc("GET /api/produk/{id}/photo", productsHandler.GetPhoto)

	// Inventory and stock movements.
	mux.HandleFunc("GET /api/inventory", inventoryHandler.List)
	mux.HandleFunc("POST /api/inventory", inventoryHandler.Create)
	mux.HandleFunc("POST /api/inventory/receive", inventoryHandler.Receive)
	mux.HandleFunc("POST /api/inventory/ship", inventoryHandler.Ship)
	mux.HandleFunc("GET /api/inventory/{id}", inventoryHandler.Get)
	mux.HandleFunc("PUT /api/inventory/{id}", inventoryHandler.Update)
	mux.HandleFunc("DELETE /api/inventory/{id}", inventoryHandler.Delete)
	mux.HandleFunc("GET /api/inventory/{id}/transactions", inventoryHandler.Transactions)

	// Dashboard and audit trail.
	mux.HandleFunc("GET /api/dashboard/stats", dashboardHandler.Stats)
	mux.HandleFunc("GET /api/logs", activityHandler.List)

	return mux
}
