package handlers

import (
	"net/http"
	"time"

	"github.com/fleetops/fleet-management/internal/services"
)

// ReportHandler exposes the read-only reporting routes.
type ReportHandler struct {
	reports *services.ReportService
}

// NewReportHandler creates a report handler.
func NewReportHandler(reports *services.ReportService) *ReportHandler {
	return &ReportHandler{reports: reports}
}

// MaintenanceCosts handles GET /api/Reports/maintenance/costs?startDate&endDate.
func (h *ReportHandler) MaintenanceCosts(w http.ResponseWriter, r *http.Request) {
	start, ok := parseDateParam(w, r, "startDate")
	if !ok {
		return
	}
	end, ok := parseDateParam(w, r, "endDate")
	if !ok {
		return
	}

	report, err := h.reports.MaintenanceCosts(r.Context(), start, end)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}

// FuelEfficiency handles GET /api/Reports/fuel-efficiency.
func (h *ReportHandler) FuelEfficiency(w http.ResponseWriter, r *http.Request) {
	summaries, err := h.reports.FuelEfficiency(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, summaries)
}

// FuelEfficiencyByVehicle handles GET /api/Reports/fuel-efficiency/vehicle/{id}.
func (h *ReportHandler) FuelEfficiencyByVehicle(w http.ResponseWriter, r *http.Request) {
	summary, err := h.reports.FuelEfficiencyByVehicle(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

// parseDateParam reads an optional RFC 3339 or YYYY-MM-DD query parameter.
// It writes a 400 and reports false when the value is present but malformed.
func parseDateParam(w http.ResponseWriter, r *http.Request, name string) (*time.Time, bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, true
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return &t, true
	}
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return &t, true
	}
	writeError(w, http.StatusBadRequest, name+" must be an RFC 3339 timestamp or YYYY-MM-DD date")
	return nil, false
}
