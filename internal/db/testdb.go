package db

import (
	"database/sql"
	"testing"
)

// NewTestDB returns an in-memory database with the full schema applied,
// closed automatically when the test finishes.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := Open(":memory:")
	if err != nil {
		t.Fatalf("opening test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := EnsureSchema(db); err != nil {
		t.Fatalf("applying test schema: %v", err)
	}

	return db
}
