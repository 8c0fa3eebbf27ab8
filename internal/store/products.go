package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/adiwjy/denimstok/internal/model"
)

// ProductInput holds the fields required to create a product.
type ProductInput struct {
	CategoryID    string          `json:"category_id"`
	SupplierID    string          `json:"supplier_id"`
	Code          string          `json:"code"`
	Brand         string          `json:"brand"`
	Model         string          `json:"model"`
	Size          string          `json:"size"`
	Price         decimal.Decimal `json:"price"`
	StockQuantity int             `json:"stock_quantity"`
}

// CreateProduct creates a new product.
func CreateProduct(ctx context.Context, db *sql.DB, in ProductInput) (*model.Product, error) {
	id := uuid.NewString()
	now := time.Now().UTC()

	_, err := db.ExecContext(ctx,
		`INSERT INTO products (id, category_id, supplier_id, code, brand, model, size, price, stock_quantity, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		id, in.CategoryID, in.SupplierID, in.Code, in.Brand, in.Model, in.Size,
		in.Price.String(), in.StockQuantity, now, now,
	)
	if err != nil {
		return nil, fmt.Errorf("creating product: %w", err)
	}

	return GetProduct(ctx, db, id)
}

func scanProduct(scan func(...any) error) (*model.Product, error) {
	p := &model.Product{}
	var price string
	var photoMime sql.NullString
	if err := scan(&p.ID, &p.CategoryID, &p.SupplierID, &p.Code, &p.Brand, &p.Model,
		&p.Size, &price, &p.StockQuantity, &photoMime, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return nil, err
	}
	d, err := decimal.NewFromString(price)
	if err != nil {
		return nil, fmt.Errorf("parsing stored price %q: %w", price, err)
	}
	p.Price = d
	p.PhotoMime = photoMime.String
	return p, nil
}

const productColumns = `id, category_id, supplier_id, code, brand, model, size, price, stock_quantity, photo_mime, created_at, updated_at`

// GetProduct returns a product by ID.
func GetProduct(ctx context.Context, db *sql.DB, id string) (*model.Product, error) {
	row := db.QueryRowContext(ctx,
		`SELECT `+productColumns+` FROM products WHERE id = ?`, id,
	)
	p, err := scanProduct(row.Scan)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("getting product: %w", err)
	}
	return p, nil
}

// ListProducts returns all products, optionally filtered by a
// case-insensitive substring match over code, brand, and model.
func ListProducts(ctx context.Context, db *sql.DB, search string) ([]model.Product, error) {
	var rows *sql.Rows
	var err error

	if search != "" {
		rows, err = db.QueryContext(ctx,
			`SELECT `+productColumns+` FROM products
			 WHERE instr(lower(code), lower(?)) > 0
			    OR instr(lower(brand), lower(?)) > 0
			    OR instr(lower(model), lower(?)) > 0
			 LIMIT ?`,
			search, search, search, listCap,
		)
	} else {
		rows, err = db.QueryContext(ctx,
			`SELECT `+productColumns+` FROM products LIMIT ?`, listCap,
		)
	}
	if err != nil {
		return nil, fmt.Errorf("listing products: %w", err)
	}
	defer rows.Close()

	var products []model.Product
	for rows.Next() {
		p, err := scanProduct(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scanning product: %w", err)
		}
		products = append(products, *p)
	}
	return products, rows.Err()
}

// ProductUpdate holds the optional fields of a partial product update.
type ProductUpdate struct {
	CategoryID    *string          `json:"category_id"`
	SupplierID    *string          `json:"supplier_id"`
	Code          *string          `json:"code"`
	Brand         *string          `json:"brand"`
	Model         *string          `json:"model"`
	Size          *string          `json:"size"`
	Price         *decimal.Decimal `json:"price"`
	StockQuantity *int             `json:"stock_quantity"`
}

// UpdateProduct applies the supplied fields to a product and refreshes
// its updated_at timestamp.
func UpdateProduct(ctx context.Context, db *sql.DB, id string, upd ProductUpdate) (*model.Product, error) {
	var p patch
	if upd.CategoryID != nil {
		p.set("category_id", *upd.CategoryID)
	}
	if upd.SupplierID != nil {
		p.set("supplier_id", *upd.SupplierID)
	}
	if upd.Code != nil {
		p.set("code", *upd.Code)
	}
	if upd.Brand != nil {
		p.set("brand", *upd.Brand)
	}
	if upd.Model != nil {
		p.set("model", *upd.Model)
	}
	if upd.Size != nil {
		p.set("size", *upd.Size)
	}
	if upd.Price != nil {
		p.set("price", upd.Price.String())
	}
	if upd.StockQuantity != nil {
		p.set("stock_quantity", *upd.StockQuantity)
	}
	if p.empty() {
		return nil, ErrEmptyUpdate
	}
	p.set("updated_at", time.Now().UTC())

	result, err := db.ExecContext(ctx,
		`UPDATE products SET `+p.clause()+` WHERE id = ?`,
		append(p.args, id)...,
	)
	if err != nil {
		return nil, fmt.Errorf("updating product: %w", err)
	}
	if n, err := result.RowsAffected(); err != nil {
		return nil, fmt.Errorf("checking product update: %w", err)
	} else if n == 0 {
		return nil, ErrNotFound
	}

	return GetProduct(ctx, db, id)
}

// DeleteProduct removes a product.
func DeleteProduct(ctx context.Context, db *sql.DB, id string) error {
	result, err := db.ExecContext(ctx, `DELETE FROM products WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting product: %w", err)
	}
	if n, err := result.RowsAffected(); err != nil {
		return fmt.Errorf("checking product delete: %w", err)
	} else if n == 0 {
		return ErrNotFound
	}
	return nil
}

// SetProductPhoto stores a product's photo and refreshes updated_at.
func SetProductPhoto(ctx context.Context, db *sql.DB, id string, photo []byte, mime string) error {
	result, err := db.ExecContext(ctx,
		`UPDATE products SET photo = ?, photo_mime = ?, updated_at = ? WHERE id = ?`,
		photo, mime, time.Now().UTC(), id,
	)
	if err != nil {
		return fmt.Errorf("setting product photo: %w", err)
	}
	if n, err := result.RowsAffected(); err != nil {
		return fmt.Errorf("checking photo update: %w", err)
	} else if n == 0 {
		return ErrNotFound
	}
	return nil
}

// GetProductPhoto returns a product's photo data and MIME type.
// Returns ErrNotFound for both a missing product and a product without
// a photo.
func GetProductPhoto(ctx context.Context, db *sql.DB, id string) ([]byte, string, error) {
	var photo []byte
	var mime sql.NullString
	err := db.QueryRowContext(ctx,
		`SELECT photo, photo_mime FROM products WHERE id = ?`, id,
	).Scan(&photo, &mime)
	if err == sql.ErrNoRows {
		return nil, "", ErrNotFound
	}
	if err != nil {
		return nil, "", fmt.Errorf("getting product photo: %w", err)
	}
	if photo == nil {
		return nil, "", ErrNotFound
	}
	return photo, mime.String, nil
}
