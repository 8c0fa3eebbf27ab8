package model

// DashboardStats is a point-in-time summary computed from the inventory
// and transaction collections. Nothing here is persisted.
type DashboardStats struct {
	TotalStock    int `json:"total_stock"`
	ReceivedToday int `json:"received_today"`
	ShippedToday  int `json:"shipped_today"`
	LowStockItems int `json:"low_stock_items"`
}
