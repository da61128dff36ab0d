package handlers

import (
	"net/http"
	"time"

	"github.com/jmcastillo/zodiac-prophecy-backend/internal/services"
)

// ClearDataResponse confirms the clear-all operation.
type ClearDataResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// GetStats handles GET /api/admin/stats with aggregates over the
// consultation log.
func (h *Handler) GetStats(w http.ResponseWriter, r *http.Request) {
	stats := services.ComputeStats(h.store.GetAllConsultations(), time.Now())
	respondJSON(w, http.StatusOK, stats)
}

// ListConsultations handles GET /api/admin/users: every consultation record
// flattened for the admin table.
func (h *Handler) ListConsultations(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, services.Summaries(h.store.GetAllConsultations()))
}

// ClearData handles DELETE /api/admin/clear: atomically empties users and
// consultations. The store is volatile anyway; this is the only bulk
// removal besides a restart.
func (h *Handler) ClearData(w http.ResponseWriter, r *http.Request) {
	h.store.ClearAllData()
	h.log.Info("admin cleared all data")
	respondJSON(w, http.StatusOK, ClearDataResponse{Success: true, Message: "All data cleared"})
}

// ExportData handles GET /api/admin/export?format=csv|json. CSV downloads as
// an attachment; anything else falls back to the JSON listing.
func (h *Handler) ExportData(w http.ResponseWriter, r *http.Request) {
	if r.URL.Query().Get("format") == "csv" {
		csv := services.ConsultationsCSV(h.store.GetAllConsultations())
		w.Header().Set("Content-Type", "text/csv")
		w.Header().Set("Content-Disposition", "attachment; filename=zodiac_data.csv")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(csv))
		return
	}
	h.ListConsultations(w, r)
}
