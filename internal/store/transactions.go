package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/adiwjy/denimstok/internal/model"
)

// transactionsCap bounds transaction scans; the movement log grows
// without bound while everything else stays small.
const transactionsCap = 10000

// ListTransactions returns stock movements, newest first, optionally
// filtered by inventory item.
func ListTransactions(ctx context.Context, db *sql.DB, inventoryItemID string) ([]model.StockTransaction, error) {
	var rows *sql.Rows
	var err error

	if inventoryItemID != "" {
		rows, err = db.QueryContext(ctx,
			`SELECT id, inventory_item_id, quantity, kind, transaction_date
			 FROM transactions WHERE inventory_item_id = ?
			 ORDER BY transaction_date DESC LIMIT ?`,
			inventoryItemID, transactionsCap,
		)
	} else {
		rows, err = db.QueryContext(ctx,
			`SELECT id, inventory_item_id, quantity, kind, transaction_date
			 FROM transactions ORDER BY transaction_date DESC LIMIT ?`,
			transactionsCap,
		)
	}
	if err != nil {
		return nil, fmt.Errorf("listing transactions: %w", err)
	}
	defer rows.Close()

	var transactions []model.StockTransaction
	for rows.Next() {
		var t model.StockTransaction
		if err := rows.Scan(&t.ID, &t.InventoryItemID, &t.Quantity, &t.Kind, &t.TransactionDate); err != nil {
			return nil, fmt.Errorf("scanning transaction: %w", err)
		}
		transactions = append(transactions, t)
	}
	return transactions, rows.Err()
}
