package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/adiwjy/denimstok/internal/model"
)

// AdjustStock applies a stock movement to one inventory item and appends
// the matching transaction record, both inside a single database
// transaction. The quantity change is a guarded in-place update
// (quantity = quantity ± ?), so concurrent movements against the same
// item serialize at the store and a shipment can never drive the
// quantity negative. Returns the item's new quantity.
func AdjustStock(ctx context.Context, db *sql.DB, inventoryID string, quantity int, kind string) (int, error) {
	if quantity <= 0 {
		return 0, ErrInvalidQuantity
	}
	if kind != model.KindReceive && kind != model.KindShip {
		return 0, fmt.Errorf("unknown stock movement kind %q", kind)
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	now := time.Now().UTC()

	var result sql.Result
	if kind == model.KindReceive {
		result, err = tx.ExecContext(ctx,
			`UPDATE inventory SET quantity = quantity + ?, updated_at = ? WHERE id = ?`,
			quantity, now, inventoryID,
		)
	} else {
		result, err = tx.ExecContext(ctx,
			`UPDATE inventory SET quantity = quantity - ?, updated_at = ?
			 WHERE id = ? AND quantity >= ?`,
			quantity, now, inventoryID, quantity,
		)
	}
	if err != nil {
		return 0, fmt.Errorf("adjusting stock: %w", err)
	}

	n, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("checking stock adjustment: %w", err)
	}
	if n == 0 {
		// Either the item doesn't exist, or the shipment guard rejected it.
		var exists int
		err = tx.QueryRowContext(ctx,
			`SELECT 1 FROM inventory WHERE id = ?`, inventoryID,
		).Scan(&exists)
		if err == sql.ErrNoRows {
			return 0, ErrNotFound
		}
		if err != nil {
			return 0, fmt.Errorf("checking inventory item: %w", err)
		}
		return 0, ErrInsufficientStock
	}

	var newQuantity int
	err = tx.QueryRowContext(ctx,
		`SELECT quantity FROM inventory WHERE id = ?`, inventoryID,
	).Scan(&newQuantity)
	if err != nil {
		return 0, fmt.Errorf("reading new quantity: %w", err)
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO transactions (id, inventory_item_id, quantity, kind, transaction_date)
		 VALUES (?, ?, ?, ?, ?)`,
		uuid.NewString(), inventoryID, quantity, kind, now,
	)
	if err != nil {
		return 0, fmt.Errorf("recording transaction: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing stock adjustment: %w", err)
	}
	return newQuantity, nil
}
