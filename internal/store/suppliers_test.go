package store

import (
	"context"
	"errors"
	"testing"

	"github.com/adiwjy/denimstok/internal/db"
)

func TestCreateAndGetSupplier(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	supplier, err := CreateSupplier(ctx, database, "Denim Works", "sales@denimworks.example", "+62 811 000 111", "weekly delivery")
	if err != nil {
		t.Fatalf("CreateSupplier: %v", err)
	}

	got, err := GetSupplier(ctx, database, supplier.ID)
	if err != nil {
		t.Fatalf("GetSupplier: %v", err)
	}
	if got.Name != "Denim Works" || got.Email != "sales@denimworks.example" ||
		got.Phone != "+62 811 000 111" || got.Notes != "weekly delivery" {
		t.Errorf("round trip mismatch: %+v", got)
	}
}

func TestUpdateSupplierPartial(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	supplier, _ := CreateSupplier(ctx, database, "Indigo Mills", "info@indigo.example", "555-0101", "")

	if _, err := UpdateSupplier(ctx, database, supplier.ID, SupplierUpdate{}); !errors.Is(err, ErrEmptyUpdate) {
		t.Errorf("expected ErrEmptyUpdate, got %v", err)
	}

	updated, err := UpdateSupplier(ctx, database, supplier.ID, SupplierUpdate{Phone: strptr("555-0202")})
	if err != nil {
		t.Fatalf("UpdateSupplier: %v", err)
	}
	if updated.Phone != "555-0202" {
		t.Errorf("expected updated phone, got %q", updated.Phone)
	}
	if updated.Name != "Indigo Mills" || updated.Email != "info@indigo.example" {
		t.Errorf("expected other fields untouched: %+v", updated)
	}
}

func TestUpdateSupplierRejectsEmptyName(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	supplier, _ := CreateSupplier(ctx, database, "Indigo Mills", "info@indigo.example", "555-0101", "")

	if _, err := UpdateSupplier(ctx, database, supplier.ID, SupplierUpdate{Name: strptr("")}); !errors.Is(err, ErrEmptyName) {
		t.Fatalf("expected ErrEmptyName, got %v", err)
	}

	got, _ := GetSupplier(ctx, database, supplier.ID)
	if got.Name != "Indigo Mills" {
		t.Errorf("expected name unchanged, got %q", got.Name)
	}
}

func TestSupplierNotFound(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	if _, err := GetSupplier(ctx, database, "missing-id"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
	if _, err := UpdateSupplier(ctx, database, "missing-id", SupplierUpdate{Name: strptr("x")}); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}
