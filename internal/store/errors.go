package store

import "errors"

// Typed failures surfaced by store operations. The API layer maps each
// of these to a fixed HTTP status; anything else is a store failure.
var (
	// ErrNotFound means no document matched the given ID.
	ErrNotFound = errors.New("not found")

	// ErrEmptyUpdate means a partial update supplied no fields.
	ErrEmptyUpdate = errors.New("no fields to update")

	// ErrInsufficientStock means a shipment asked for more than is on hand.
	ErrInsufficientStock = errors.New("insufficient stock")

	// ErrInvalidQuantity means a stock movement quantity was not positive.
	ErrInvalidQuantity = errors.New("quantity must be positive")

	// ErrEmptyName means an update tried to clear a required name field.
	ErrEmptyName = errors.New("name must not be empty")
)
