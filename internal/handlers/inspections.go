package handlers

import (
	"net/http"
	"strconv"

	"github.com/fleetops/fleet-management/internal/models"
	"github.com/fleetops/fleet-management/internal/services"
)

// InspectionHandler exposes the inspection routes.
type InspectionHandler struct {
	inspections *services.InspectionService
}

// NewInspectionHandler creates an inspection handler.
func NewInspectionHandler(inspections *services.InspectionService) *InspectionHandler {
	return &InspectionHandler{inspections: inspections}
}

// List handles GET /api/Inspections.
func (h *InspectionHandler) List(w http.ResponseWriter, r *http.Request) {
	inspections, err := h.inspections.List(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, inspections)
}

// Get handles GET /api/Inspections/{id}.
func (h *InspectionHandler) Get(w http.ResponseWriter, r *http.Request) {
	inspection, err := h.inspections.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, inspection)
}

// ListByVehicle handles GET /api/Inspections/vehicle/{id}.
func (h *InspectionHandler) ListByVehicle(w http.ResponseWriter, r *http.Request) {
	inspections, err := h.inspections.ListByVehicle(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, inspections)
}

// ListByType handles GET /api/Inspections/type/{type}.
func (h *InspectionHandler) ListByType(w http.ResponseWriter, r *http.Request) {
	inspections, err := h.inspections.ListByType(r.Context(), models.InspectionType(r.PathValue("type")))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, inspections)
}

// Upcoming handles GET /api/Inspections/upcoming?daysAhead=30.
func (h *InspectionHandler) Upcoming(w http.ResponseWriter, r *http.Request) {
	daysAhead := services.InspectionAlertWindow
	if raw := r.URL.Query().Get("daysAhead"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			writeError(w, http.StatusBadRequest, "daysAhead must be a positive integer")
			return
		}
		daysAhead = parsed
	}

	inspections, err := h.inspections.Upcoming(r.Context(), daysAhead)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, inspections)
}

// Create handles POST /api/Inspections.
func (h *InspectionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateInspectionRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	inspection, err := h.inspections.Create(r.Context(), req)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, inspection)
}

// Update handles PUT /api/Inspections/{id}.
func (h *InspectionHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateInspectionRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	inspection, err := h.inspections.Update(r.Context(), r.PathValue("id"), req)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, inspection)
}

// Delete handles DELETE /api/Inspections/{id}.
func (h *InspectionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.inspections.Delete(r.Context(), r.PathValue("id")); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Alerts handles GET /api/Inspections/alerts.
func (h *InspectionHandler) Alerts(w http.ResponseWriter, r *http.Request) {
	alerts, err := h.inspections.Alerts(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, alerts)
}
