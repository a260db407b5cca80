package handlers

import (
	"net/http"

	"github.com/fleetops/fleet-management/internal/models"
	"github.com/fleetops/fleet-management/internal/services"
)

// MaintenanceHandler exposes the maintenance routes.
type MaintenanceHandler struct {
	maintenance *services.MaintenanceService
}

// NewMaintenanceHandler creates a maintenance handler.
func NewMaintenanceHandler(maintenance *services.MaintenanceService) *MaintenanceHandler {
	return &MaintenanceHandler{maintenance: maintenance}
}

// List handles GET /api/Maintenance.
func (h *MaintenanceHandler) List(w http.ResponseWriter, r *http.Request) {
	records, err := h.maintenance.List(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, records)
}

// Get handles GET /api/Maintenance/{id}.
func (h *MaintenanceHandler) Get(w http.ResponseWriter, r *http.Request) {
	record, err := h.maintenance.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, record)
}

// ListByVehicle handles GET /api/Maintenance/vehicle/{id}.
func (h *MaintenanceHandler) ListByVehicle(w http.ResponseWriter, r *http.Request) {
	records, err := h.maintenance.ListByVehicle(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, records)
}

// Create handles POST /api/Maintenance and POST /api/Maintenance/schedule.
func (h *MaintenanceHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateMaintenanceRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	record, err := h.maintenance.Create(r.Context(), req)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, record)
}

// Update handles PUT /api/Maintenance/records/{id}.
func (h *MaintenanceHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateMaintenanceRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	record, err := h.maintenance.Update(r.Context(), r.PathValue("id"), req)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, record)
}

// Delete handles DELETE /api/Maintenance/records/{id}.
func (h *MaintenanceHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.maintenance.Delete(r.Context(), r.PathValue("id")); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Alerts handles GET /api/Maintenance/alerts.
func (h *MaintenanceHandler) Alerts(w http.ResponseWriter, r *http.Request) {
	alerts, err := h.maintenance.Alerts(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, alerts)
}
