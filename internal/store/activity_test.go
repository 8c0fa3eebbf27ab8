package store

import (
	"context"
	"testing"

	"github.com/adiwjy/denimstok/internal/db"
	"github.com/adiwjy/denimstok/internal/model"
)

func TestRecordAndListActivity(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	if err := RecordActivity(ctx, database, model.ActionCreate, "category", "cat-1", "Slim Fit"); err != nil {
		t.Fatalf("RecordActivity: %v", err)
	}
	if err := RecordActivity(ctx, database, model.ActionShip, "inventory", "inv-1", "ship 5"); err != nil {
		t.Fatalf("RecordActivity: %v", err)
	}

	entries, err := ListActivity(ctx, database)
	if err != nil {
		t.Fatalf("ListActivity: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}

	// Newest first.
	if entries[0].Action != model.ActionShip || entries[0].Entity != "inventory" {
		t.Errorf("expected ship entry first, got %+v", entries[0])
	}
	if entries[1].Action != model.ActionCreate || entries[1].EntityID != "cat-1" {
		t.Errorf("expected create entry second, got %+v", entries[1])
	}
}

func TestListActivityEmpty(t *testing.T) {
	database := db.NewTestDB(t)

	entries, err := ListActivity(context.Background(), database)
	if err != nil {
		t.Fatalf("ListActivity: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("expected no entries, got %d", len(entries))
	}
}
