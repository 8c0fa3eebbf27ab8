package model

import "time"

// InventoryItem tracks the on-hand quantity of one jeans type and size.
// Quantity never goes below zero; the store enforces this on every
// stock movement.
type InventoryItem struct {
	ID        string    `json:"id"`
	ProductID string    `json:"product_id"`
	JeansType string    `json:"jeans_type"`
	Size      string    `json:"size"`
	Quantity  int       `json:"quantity"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// StockTransaction is one entry in the append-only stock movement log.
// Quantity is always positive; Kind says which way the stock moved.
type StockTransaction struct {
	ID              string    `json:"id"`
	InventoryItemID string    `json:"inventory_item_id"`
	Quantity        int       `json:"quantity"`
	Kind            string    `json:"kind"`
	TransactionDate time.Time `json:"transaction_date"`
}

// Stock movement kinds.
const (
	KindReceive = "receive"
	KindShip    = "ship"
)

// LowStockThreshold is the quantity below which an item counts as low
// stock on the dashboard.
const LowStockThreshold = 10
