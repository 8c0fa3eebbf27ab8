package api

import (
	"database/sql"
	"net/http"

	"github.com/adiwjy/denimstok/internal/store"
)

// DashboardHandler handles the dashboard stats endpoint.
type DashboardHandler struct {
	DB *sql.DB
}

// Stats handles GET /api/dashboard/stats.
func (h *DashboardHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := store.DashboardStats(r.Context(), h.DB)
	if err != nil {
		storeError(w, err, "dashboard")
		return
	}
	jsonResponse(w, http.StatusOK, stats)
}
