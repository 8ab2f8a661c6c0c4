package handlers

import (
	"net/http"

	"github.com/dravedigitals/careerguard/server/store"
)

type DashboardHandler struct {
	DB *store.DB
}

// Stats returns the admin dashboard aggregate counts.
func (h *DashboardHandler) Stats(w http.ResponseWriter, r *http.Request) {
	counts, err := h.DB.CountSubmissions(r.Context())
	if err != nil {
		writeServerError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, counts)
}
