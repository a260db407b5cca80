package handlers

import (
	"net/http"

	"github.com/fleetops/fleet-management/internal/middleware"
	"github.com/fleetops/fleet-management/internal/models"
	"github.com/fleetops/fleet-management/internal/services"
)

// TripHandler exposes the trip routes.
type TripHandler struct {
	trips *services.TripService
}

// NewTripHandler creates a trip handler.
func NewTripHandler(trips *services.TripService) *TripHandler {
	return &TripHandler{trips: trips}
}

// List handles GET /api/Trips.
func (h *TripHandler) List(w http.ResponseWriter, r *http.Request) {
	trips, err := h.trips.List(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, trips)
}

// Get handles GET /api/Trips/{id}.
func (h *TripHandler) Get(w http.ResponseWriter, r *http.Request) {
	trip, err := h.trips.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, trip)
}

// ListByDriver handles GET /api/Trips/driver/{id}.
func (h *TripHandler) ListByDriver(w http.ResponseWriter, r *http.Request) {
	trips, err := h.trips.ListByDriver(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, trips)
}

// ListByVehicle handles GET /api/Trips/vehicle/{id}.
func (h *TripHandler) ListByVehicle(w http.ResponseWriter, r *http.Request) {
	trips, err := h.trips.ListByVehicle(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, trips)
}

// Start handles POST /api/Trips/start. The driver is the authenticated caller.
func (h *TripHandler) Start(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.GetUserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "User context not found")
		return
	}

	var req models.StartTripRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	trip, err := h.trips.StartTrip(r.Context(), claims.UserID, req)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, trip)
}

// End handles POST /api/Trips/{id}/end.
func (h *TripHandler) End(w http.ResponseWriter, r *http.Request) {
	var req models.EndTripRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	trip, err := h.trips.EndTrip(r.Context(), r.PathValue("id"), req)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, trip)
}
