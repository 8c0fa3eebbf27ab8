package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/adiwjy/denimstok/internal/db"
	"github.com/adiwjy/denimstok/internal/model"
)

func setupTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	database := db.NewTestDB(t)

	hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hashing test password: %v", err)
	}

	router := NewRouter(database, "admin", hash, "test-secret")
	server := httptest.NewServer(router)
	t.Cleanup(server.Close)
	return server
}

func postJSON(t *testing.T, url string, body any) *http.Response {
	t.Helper()
	data, _ := json.Marshal(body)
	resp, err := http.Post(url, "application/json", bytes.NewReader(data))
	if err != nil {
		t.Fatalf("POST %s: %v", url, err)
	}
	return resp
}

func putJSON(t *testing.T, url string, body any) *http.Response {
	t.Helper()
	data, _ := json.Marshal(body)
	req, _ := http.NewRequest(http.MethodPut, url, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("PUT %s: %v", url, err)
	}
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, target any) {
	t.Helper()
	defer resp.Body.Close()
	if err := json.NewDecoder(resp.Body).Decode(target); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
}

func TestLoginEndpoint(t *testing.T) {
	server := setupTestServer(t)

	resp := postJSON(t, server.URL+"/api/login", map[string]string{"username": "admin", "password": "admin123"})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	var login struct {
		Success  bool   `json:"success"`
		Message  string `json:"message"`
		Username string `json:"username"`
		Token    string `json:"token"`
	}
	decodeBody(t, resp, &login)
	if !login.Success || login.Username != "admin" {
		t.Errorf("unexpected login response: %+v", login)
	}
	if login.Token == "" {
		t.Error("expected a session token")
	}

	resp = postJSON(t, server.URL+"/api/login", map[string]string{"username": "admin", "password": "wrong"})
	if resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("expected 401 for bad password, got %d", resp.StatusCode)
	}
	resp.Body.Close()
}

func TestCategoryFlow(t *testing.T) {
	server := setupTestServer(t)

	// Missing name is rejected before reaching the store.
	resp := postJSON(t, server.URL+"/api/kategori", map[string]string{"description": "no name"})
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("expected 400 for missing name, got %d", resp.StatusCode)
	}
	resp.Body.Close()

	resp = postJSON(t, server.URL+"/api/kategori", map[string]string{"name": "Slim Fit", "description": "Narrow leg"})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	var category model.Category
	decodeBody(t, resp, &category)

	// Empty patch.
	resp = putJSON(t, server.URL+"/api/kategori/"+category.ID, map[string]string{})
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("expected 400 for empty patch, got %d", resp.StatusCode)
	}
	resp.Body.Close()

	// Clearing the name is rejected; a category always has one.
	resp = putJSON(t, server.URL+"/api/kategori/"+category.ID, map[string]string{"name": ""})
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("expected 400 for empty name, got %d", resp.StatusCode)
	}
	resp.Body.Close()

	// Unknown ID.
	resp = putJSON(t, server.URL+"/api/kategori/missing-id", map[string]string{"name": "x"})
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("expected 404 for unknown id, got %d", resp.StatusCode)
	}
	resp.Body.Close()

	resp = putJSON(t, server.URL+"/api/kategori/"+category.ID, map[string]string{"name": "Relaxed"})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	var updated model.Category
	decodeBody(t, resp, &updated)
	if updated.Name != "Relaxed" || updated.Description != "Narrow leg" {
		t.Errorf("partial update mismatch: %+v", updated)
	}

	resp, err := http.Get(server.URL + "/api/kategori")
	if err != nil {
		t.Fatalf("GET kategori: %v", err)
	}
	var categories []model.Category
	decodeBody(t, resp, &categories)
	if len(categories) != 1 {
		t.Errorf("expected 1 category, got %d", len(categories))
	}
}

func TestProductSearchEndpoint(t *testing.T) {
	server := setupTestServer(t)

	products := []map[string]any{
		{"category_id": "c1", "supplier_id": "s1", "code": "JN-501", "brand": "Levi's", "model": "501", "size": "32", "price": 89.9, "stock_quantity": 10},
		{"category_id": "c1", "supplier_id": "s1", "code": "JN-702", "brand": "Wrangler", "model": "Texas", "size": "34", "price": 59.5, "stock_quantity": 4},
	}
	for _, p := range products {
		resp := postJSON(t, server.URL+"/api/produk", p)
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("creating product: %d", resp.StatusCode)
		}
		resp.Body.Close()
	}

	resp, err := http.Get(server.URL + "/api/produk?search=levi")
	if err != nil {
		t.Fatalf("GET produk: %v", err)
	}
	var results []model.Product
	decodeBody(t, resp, &results)
	if len(results) != 1 || results[0].Brand != "Levi's" {
		t.Errorf("expected single Levi's match, got %+v", results)
	}
}

func TestStockMovementFlow(t *testing.T) {
	server := setupTestServer(t)

	resp := postJSON(t, server.URL+"/api/inventory", map[string]any{
		"product_id": "p1", "jeans_type": "Skinny Blue", "size": "30", "quantity": 20,
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("creating inventory item: %d", resp.StatusCode)
	}
	var item model.InventoryItem
	decodeBody(t, resp, &item)

	resp = postJSON(t, server.URL+"/api/inventory/receive", map[string]any{"inventory_id": item.ID, "quantity": 10})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("receive: expected 200, got %d", resp.StatusCode)
	}
	var adj struct {
		Message     string `json:"message"`
		NewQuantity int    `json:"new_quantity"`
	}
	decodeBody(t, resp, &adj)
	if adj.NewQuantity != 30 {
		t.Errorf("expected new_quantity 30, got %d", adj.NewQuantity)
	}

	resp = postJSON(t, server.URL+"/api/inventory/ship", map[string]any{"inventory_id": item.ID, "quantity": 5})
	decodeBody(t, resp, &adj)
	if adj.NewQuantity != 25 {
		t.Errorf("expected new_quantity 25, got %d", adj.NewQuantity)
	}

	resp = postJSON(t, server.URL+"/api/inventory/ship", map[string]any{"inventory_id": item.ID, "quantity": 1000})
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("expected 400 for insufficient stock, got %d", resp.StatusCode)
	}
	resp.Body.Close()

	resp = postJSON(t, server.URL+"/api/inventory/receive", map[string]any{"inventory_id": "missing-id", "quantity": 1})
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("expected 404 for unknown item, got %d", resp.StatusCode)
	}
	resp.Body.Close()

	resp = postJSON(t, server.URL+"/api/inventory/receive", map[string]any{"inventory_id": item.ID, "quantity": -2})
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("expected 400 for negative quantity, got %d", resp.StatusCode)
	}
	resp.Body.Close()

	// Movement history for the item.
	resp, err := http.Get(server.URL + "/api/inventory/" + item.ID + "/transactions")
	if err != nil {
		t.Fatalf("GET transactions: %v", err)
	}
	var transactions []model.StockTransaction
	decodeBody(t, resp, &transactions)
	if len(transactions) != 2 {
		t.Errorf("expected 2 recorded movements, got %d", len(transactions))
	}
}

func TestDashboardStatsEndpoint(t *testing.T) {
	server := setupTestServer(t)

	for _, quantity := range []int{5, 15, 3} {
		resp := postJSON(t, server.URL+"/api/inventory", map[string]any{
			"product_id": "p1", "jeans_type": "Type", "size": "30", "quantity": quantity,
		})
		resp.Body.Close()
	}

	resp, err := http.Get(server.URL + "/api/dashboard/stats")
	if err != nil {
		t.Fatalf("GET dashboard/stats: %v", err)
	}
	var stats model.DashboardStats
	decodeBody(t, resp, &stats)
	if stats.TotalStock != 23 {
		t.Errorf("expected total_stock 23, got %d", stats.TotalStock)
	}
	if stats.LowStockItems != 2 {
		t.Errorf("expected low_stock_items 2, got %d", stats.LowStockItems)
	}
}

func TestActivityLogEndpoint(t *testing.T) {
	server := setupTestServer(t)

	resp := postJSON(t, server.URL+"/api/kategori", map[string]string{"name": "Cargo"})
	resp.Body.Close()

	resp, err := http.Get(server.URL + "/api/logs")
	if err != nil {
		t.Fatalf("GET logs: %v", err)
	}
	var entries []model.ActivityEntry
	decodeBody(t, resp, &entries)
	if len(entries) != 1 {
		t.Fatalf("expected 1 activity entry, got %d", len(entries))
	}
	if entries[0].Action != model.ActionCreate || entries[0].Entity != "category" {
		t.Errorf("unexpected entry: %+v", entries[0])
	}
}

func TestSupplierFlow(t *testing.T) {
	server := setupTestServer(t)

	resp := postJSON(t, server.URL+"/api/suppliers", map[string]string{"name": "Denim Works"})
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("expected 400 for missing email/phone, got %d", resp.StatusCode)
	}
	resp.Body.Close()

	resp = postJSON(t, server.URL+"/api/suppliers", map[string]string{
		"name": "Denim Works", "email": "sales@denimworks.example", "phone": "555-0101",
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	var supplier model.Supplier
	decodeBody(t, resp, &supplier)

	resp, err := http.Get(server.URL + "/api/suppliers/" + supplier.ID)
	if err != nil {
		t.Fatalf("GET supplier: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Errorf("expected 200, got %d", resp.StatusCode)
	}
	resp.Body.Close()

	resp, _ = http.Get(server.URL + "/api/suppliers/missing-id")
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("expected 404, got %d", resp.StatusCode)
	}
	resp.Body.Close()
}

func TestProductDeleteEndpoint(t *testing.T) {
	server := setupTestServer(t)

	resp := postJSON(t, server.URL+"/api/produk", map[string]any{
		"category_id": "c1", "supplier_id": "s1", "code": "JN-900", "brand": "Lee",
		"model": "Rider", "size": "31", "price": 75.0, "stock_quantity": 3,
	})
	var product model.Product
	decodeBody(t, resp, &product)

	req, _ := http.NewRequest(http.MethodDelete, server.URL+"/api/produk/"+product.ID, nil)
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("DELETE produk: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	resp.Body.Close()

	resp, _ = http.Get(server.URL + "/api/produk/" + product.ID)
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("expected 404 after delete, got %d", resp.StatusCode)
	}
	resp.Body.Close()

	// Second delete also 404s.
	req, _ = http.NewRequest(http.MethodDelete, server.URL+"/api/produk/"+product.ID, nil)
	resp, _ = http.DefaultClient.Do(req)
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("expected 404 on repeated delete, got %d", resp.StatusCode)
	}
	resp.Body.Close()
}
