package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/adiwjy/denimstok/internal/model"
)

// InventoryInput holds the fields required to create an inventory item.
type InventoryInput struct {
	ProductID string `json:"product_id"`
	JeansType string `json:"jeans_type"`
	Size      string `json:"size"`
	Quantity  int    `json:"quantity"`
}

// CreateInventoryItem creates a new inventory line item.
func CreateInventoryItem(ctx context.Context, db *sql.DB, in InventoryInput) (*model.InventoryItem, error) {
	id := uuid.NewString()
	now := time.Now().UTC()

	_, err := db.ExecContext(ctx,
		`INSERT INTO inventory (id, product_id, jeans_type, size, quantity, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		id, in.ProductID, in.JeansType, in.Size, in.Quantity, now, now,
	)
	if err != nil {
		return nil, fmt.Errorf("creating inventory item: %w", err)
	}

	return GetInventoryItem(ctx, db, id)
}

// GetInventoryItem returns an inventory item by ID.
func GetInventoryItem(ctx context.Context, db *sql.DB, id string) (*model.InventoryItem, error) {
	item := &model.InventoryItem{}
	err := db.QueryRowContext(ctx,
		`SELECT id, product_id, jeans_type, size, quantity, created_at, updated_at
		 FROM inventory WHERE id = ?`, id,
	).Scan(&item.ID, &item.ProductID, &item.JeansType, &item.Size, &item.Quantity,
		&item.CreatedAt, &item.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("getting inventory item: %w", err)
	}
	return item, nil
}

// ListInventory returns all inventory items, optionally filtered by a
// case-insensitive substring match over jeans_type and size.
func ListInventory(ctx context.Context, db *sql.DB, search string) ([]model.InventoryItem, error) {
	var rows *sql.Rows
	var err error

	if search != "" {
		rows, err = db.QueryContext(ctx,
			`SELECT id, product_id, jeans_type, size, quantity, created_at, updated_at
			 FROM inventory
			 WHERE instr(lower(jeans_type), lower(?)) > 0
			    OR instr(lower(size), lower(?)) > 0
			 LIMIT ?`,
			search, search, listCap,
		)
	} else {
		rows, err = db.QueryContext(ctx,
			`SELECT id, product_id, jeans_type, size, quantity, created_at, updated_at
			 FROM inventory LIMIT ?`, listCap,
		)
	}
	if err != nil {
		return nil, fmt.Errorf("listing inventory: %w", err)
	}
	defer rows.Close()

	var items []model.InventoryItem
	for rows.Next() {
		var item model.InventoryItem
		if err := rows.Scan(&item.ID, &item.ProductID, &item.JeansType, &item.Size,
			&item.Quantity, &item.CreatedAt, &item.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scanning inventory item: %w", err)
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// InventoryUpdate holds the optional fields of a partial inventory update.
type InventoryUpdate struct {
	ProductID *string `json:"product_id"`
	JeansType *string `json:"jeans_type"`
	Size      *string `json:"size"`
	Quantity  *int    `json:"quantity"`
}

// UpdateInventoryItem applies the supplied fields to an inventory item
// and refreshes its updated_at timestamp.
func UpdateInventoryItem(ctx context.Context, db *sql.DB, id string, upd InventoryUpdate) (*model.InventoryItem, error) {
	var p patch
	if upd.ProductID != nil {
		p.set("product_id", *upd.ProductID)
	}
	if upd.JeansType != nil {
		p.set("jeans_type", *upd.JeansType)
	}
	if upd.Size != nil {
		p.set("size", *upd.Size)
	}
	if upd.Quantity != nil {
		p.set("quantity", *upd.Quantity)
	}
	if p.empty() {
		return nil, ErrEmptyUpdate
	}
	p.set("updated_at", time.Now().UTC())

	result, err := db.ExecContext(ctx,
		`UPDATE inventory SET `+p.clause()+` WHERE id = ?`,
		append(p.args, id)...,
	)
	if err != nil {
		return nil, fmt.Errorf("updating inventory item: %w", err)
	}
	if n, err := result.RowsAffected(); err != nil {
		return nil, fmt.Errorf("checking inventory update: %w", err)
	} else if n == 0 {
		return nil, ErrNotFound
	}

	return GetInventoryItem(ctx, db, id)
}

// DeleteInventoryItem removes an inventory item. Its transaction history
// is kept; the log is append-only.
func DeleteInventoryItem(ctx context.Context, db *sql.DB, id string) error {
	result, err := db.ExecContext(ctx, `DELETE FROM inventory WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting inventory item: %w", err)
	}
	if n, err := result.RowsAffected(); err != nil {
		return fmt.Errorf("checking inventory delete: %w", err)
	} else if n == 0 {
		return ErrNotFound
	}
	return nil
}
