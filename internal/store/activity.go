package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/adiwjy/denimstok/internal/model"
)

// RecordActivity appends one entry to the activity log. Entries are
// never updated or deleted.
func RecordActivity(ctx context.Context, db *sql.DB, action, entity, entityID, details string) error {
	_, err := db.ExecContext(ctx,
		`INSERT INTO activity_log (action, entity, entity_id, details, created_at)
		 VALUES (?, ?, ?, ?, ?)`,
		action, entity, entityID, details, time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("recording activity: %w", err)
	}
	return nil
}

// ListActivity returns activity entries, newest first.
func ListActivity(ctx context.Context, db *sql.DB) ([]model.ActivityEntry, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT id, action, entity, entity_id, details, created_at
		 FROM activity_log ORDER BY created_at DESC, id DESC LIMIT ?`,
		listCap,
	)
	if err != nil {
		return nil, fmt.Errorf("listing activity: %w", err)
	}
	defer rows.Close()

	var entries []model.ActivityEntry
	for rows.Next() {
		var e model.ActivityEntry
		var entityID, details sql.NullString
		if err := rows.Scan(&e.ID, &e.Action, &e.Entity, &entityID, &details, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning activity entry: %w", err)
		}
		e.EntityID = entityID.String
		e.Details = details.String
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
