package handlers

import (
	"net/http"

	"github.com/fleetops/fleet-management/internal/models"
	"github.com/fleetops/fleet-management/internal/services"
)

// VehicleHandler exposes the vehicle routes.
type VehicleHandler struct {
	vehicles *services.VehicleService
}

// NewVehicleHandler creates a vehicle handler.
func NewVehicleHandler(vehicles *services.VehicleService) *VehicleHandler {
	return &VehicleHandler{vehicles: vehicles}
}

// List handles GET /api/Vehicles.
func (h *VehicleHandler) List(w http.ResponseWriter, r *http.Request) {
	vehicles, err := h.vehicles.List(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, vehicles)
}

// Get handles GET /api/Vehicles/{id}.
func (h *VehicleHandler) Get(w http.ResponseWriter, r *http.Request) {
	vehicle, err := h.vehicles.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, vehicle)
}

// ListByStatus handles GET /api/Vehicles/status/{status}.
func (h *VehicleHandler) ListByStatus(w http.ResponseWriter, r *http.Request) {
	vehicles, err := h.vehicles.ListByStatus(r.Context(), models.VehicleStatus(r.PathValue("status")))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, vehicles)
}

// Create handles POST /api/Vehicles.
func (h *VehicleHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateVehicleRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	vehicle, err := h.vehicles.Create(r.Context(), req)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, vehicle)
}

// Update handles PUT /api/Vehicles/{id}.
func (h *VehicleHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateVehicleRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	vehicle, err := h.vehicles.Update(r.Context(), r.PathValue("id"), req)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, vehicle)
}

// Delete handles DELETE /api/Vehicles/{id}.
func (h *VehicleHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.vehicles.Delete(r.Context(), r.PathValue("id")); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// AssignDriver handles POST /api/Vehicles/{vehicleId}/assign/{driverId}.
func (h *VehicleHandler) AssignDriver(w http.ResponseWriter, r *http.Request) {
	ok, err := h.vehicles.AssignDriver(r.Context(), r.PathValue("vehicleId"), r.PathValue("driverId"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if !ok {
		writeError(w, http.StatusBadRequest, "Failed to assign driver")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Driver assigned"})
}
