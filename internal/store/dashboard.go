package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/adiwjy/denimstok/internal/model"
)

// DashboardStats computes the dashboard summary fresh on every call.
// "Today" starts at UTC midnight; there is no timezone configuration.
func DashboardStats(ctx context.Context, db *sql.DB) (*model.DashboardStats, error) {
	stats := &model.DashboardStats{}

	err := db.QueryRowContext(ctx,
		`SELECT COALESCE(SUM(quantity), 0), COALESCE(SUM(quantity < ?), 0) FROM inventory`,
		model.LowStockThreshold,
	).Scan(&stats.TotalStock, &stats.LowStockItems)
	if err != nil {
		return nil, fmt.Errorf("aggregating inventory: %w", err)
	}

	todayStart := time.Now().UTC().Truncate(24 * time.Hour)
	err = db.QueryRowContext(ctx,
		`SELECT COALESCE(SUM(CASE WHEN kind = 'receive' THEN quantity ELSE 0 END), 0),
		        COALESCE(SUM(CASE WHEN kind = 'ship' THEN quantity ELSE 0 END), 0)
		 FROM transactions WHERE transaction_date >= ?`,
		todayStart,
	).Scan(&stats.ReceivedToday, &stats.ShippedToday)
	if err != nil {
		return nil, fmt.Errorf("aggregating transactions: %w", err)
	}

	return stats, nil
}
