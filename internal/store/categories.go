package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/adiwjy/denimstok/internal/model"
)

// listCap bounds every list query. Callers must not depend on result
// ordering unless the query sorts explicitly.
const listCap = 1000

// CreateCategory creates a new category.
func CreateCategory(ctx context.Context, db *sql.DB, name, description string) (*model.Category, error) {
	id := uuid.NewString()
	now := time.Now().UTC()

	_, err := db.ExecContext(ctx,
		`INSERT INTO categories (id, name, description, created_at) VALUES (?, ?, ?, ?)`,
		id, name, description, now,
	)
	if err != nil {
		return nil, fmt.Errorf("creating category: %w", err)
	}

	return GetCategory(ctx, db, id)
}

// GetCategory returns a category by ID.
func GetCategory(ctx context.Context, db *sql.DB, id string) (*model.Category, error) {
	c := &model.Category{}
	var description sql.NullString
	err := db.QueryRowContext(ctx,
		`SELECT id, name, description, created_at FROM categories WHERE id = ?`, id,
	).Scan(&c.ID, &c.Name, &description, &c.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("getting category: %w", err)
	}
	c.Description = description.String
	return c, nil
}

// ListCategories returns all categories.
func ListCategories(ctx context.Context, db *sql.DB) ([]model.Category, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT id, name, description, created_at FROM categories LIMIT ?`, listCap,
	)
	if err != nil {
		return nil, fmt.Errorf("listing categories: %w", err)
	}
	defer rows.Close()

	var categories []model.Category
	for rows.Next() {
		var c model.Category
		var description sql.NullString
		if err := rows.Scan(&c.ID, &c.Name, &description, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning category: %w", err)
		}
		c.Description = description.String
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

// CategoryUpdate holds the optional fields of a partial category update.
type CategoryUpdate struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

// UpdateCategory applies the supplied fields to a category. A category
// always has a name, so an update may change it but never clear it.
func UpdateCategory(ctx context.Context, db *sql.DB, id string, upd CategoryUpdate) (*model.Category, error) {
	var p patch
	if upd.Name != nil {
		if *upd.Name == "" {
			return nil, ErrEmptyName
		}
		p.set("name", *upd.Name)
	}
	if upd.Description != nil {
		p.set("description", *upd.Description)
	}
	if p.empty() {
		return nil, ErrEmptyUpdate
	}

	result, err := db.ExecContext(ctx,
		`UPDATE categories SET `+p.clause()+` WHERE id = ?`,
		append(p.args, id)...,
	)
	if err != nil {
		return nil, fmt.Errorf("updating category: %w", err)
	}
	if n, err := result.RowsAffected(); err != nil {
		return nil, fmt.Errorf("checking category update: %w", err)
	} else if n == 0 {
		return nil, ErrNotFound
	}

	return GetCategory(ctx, db, id)
}
