package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/adiwjy/denimstok/internal/model"
)

// CreateSupplier creates a new supplier.
func CreateSupplier(ctx context.Context, db *sql.DB, name, email, phone, notes string) (*model.Supplier, error) {
	id := uuid.NewString()
	now := time.Now().UTC()

	_, err := db.ExecContext(ctx,
		`INSERT INTO suppliers (id, name, email, phone, notes, created_at) VALUES (?, ?, ?, ?, ?, ?)`,
		id, name, email, phone, notes, now,
	)
	if err != nil {
		return nil, fmt.Errorf("creating supplier: %w", err)
	}

	return GetSupplier(ctx, db, id)
}

// GetSupplier returns a supplier by ID.
func GetSupplier(ctx context.Context, db *sql.DB, id string) (*model.Supplier, error) {
	s := &model.Supplier{}
	var email, phone, notes sql.NullString
	err := db.QueryRowContext(ctx,
		`SELECT id, name, email, phone, notes, created_at FROM suppliers WHERE id = ?`, id,
	).Scan(&s.ID, &s.Name, &email, &phone, &notes, &s.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("getting supplier: %w", err)
	}
	s.Email = email.String
	s.Phone = phone.String
	s.Notes = notes.String
	return s, nil
}

// ListSuppliers returns all suppliers.
func ListSuppliers(ctx context.Context, db *sql.DB) ([]model.Supplier, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT id, name, email, phone, notes, created_at FROM suppliers LIMIT ?`, listCap,
	)
	if err != nil {
		return nil, fmt.Errorf("listing suppliers: %w", err)
	}
	defer rows.Close()

	var suppliers []model.Supplier
	for rows.Next() {
		var s model.Supplier
		var email, phone, notes sql.NullString
		if err := rows.Scan(&s.ID, &s.Name, &email, &phone, &notes, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning supplier: %w", err)
		}
		s.Email = email.String
		s.Phone = phone.String
		s.Notes = notes.String
		suppliers = append(suppliers, s)
	}
	return suppliers, rows.Err()
}

// SupplierUpdate holds the optional fields of a partial supplier update.
type SupplierUpdate struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
	Phone *string `json:"phone"`
	Notes *string `json:"notes"`
}

// UpdateSupplier applies the supplied fields to a supplier. As with
// categories, the name may change but never be cleared.
func UpdateSupplier(ctx context.Context, db *sql.DB, id string, upd SupplierUpdate) (*model.Supplier, error) {
	var p patch
	if upd.Name != nil {
		if *upd.Name == "" {
			return nil, ErrEmptyName
		}
		p.set("name", *upd.Name)
	}
	if upd.Email != nil {
		p.set("email", *upd.Email)
	}
	if upd.Phone != nil {
		p.set("phone", *upd.Phone)
	}
	if upd.Notes != nil {
		p.set("notes", *upd.Notes)
	}
	if p.empty() {
		return nil, ErrEmptyUpdate
	}

	result, err := db.ExecContext(ctx,
		`UPDATE suppliers SET `+p.clause()+` WHERE id = ?`,
		append(p.args, id)...,
	)
	if err != nil {
		return nil, fmt.Errorf("updating supplier: %w", err)
	}
	if n, err := result.RowsAffected(); err != nil {
		return nil, fmt.Errorf("checking supplier update: %w", err)
	} else if n == 0 {
		return nil, ErrNotFound
	}

	return GetSupplier(ctx, db, id)
}
