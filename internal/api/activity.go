package api

import (
	"database/sql"
	"net/http"

	"github.com/adiwjy/denimstok/internal/model"
	"github.com/adiwjy/denimstok/internal/store"
)

// ActivityHandler handles the activity log endpoint.
type ActivityHandler struct {
	DB *sql.DB
}

// List handles GET /api/logs.
func (h *ActivityHandler) List(w http.ResponseWriter, r *http.Request) {
	entries, err := store.ListActivity(r.Context(), h.DB)
	if err != nil {
		storeError(w, err, "activity")
		return
	}
	if entries == nil {
		entries = []model.ActivityEntry{}
	}
	jsonResponse(w, http.StatusOK, entries)
}
