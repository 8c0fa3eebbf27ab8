package model

import (
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	// Price is a plain JSON number on the wire.
	decimal.MarshalJSONWithoutQuotes = true
}

// Product is a catalog entry for one jeans article.
// CategoryID and SupplierID are weak references: they point at other
// collections but their existence is not enforced at write time.
type Product struct {
	ID            string          `json:"id"`
	CategoryID    string          `json:"category_id"`
	SupplierID    string          `json:"supplier_id"`
	Code          string          `json:"code"`
	Brand         string          `json:"brand"`
	Model         string          `json:"model"`
	Size          string          `json:"size"`
	Price         decimal.Decimal `json:"price"`
	StockQuantity int             `json:"stock_quantity"`
	PhotoMime     string          `json:"photo_mime,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}
