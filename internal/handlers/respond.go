package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	log "github.com/sirupsen/logrus"

	"github.com/fleetops/fleet-management/internal/services"
)

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		if err := json.NewEncoder(w).Encode(v); err != nil {
			log.WithError(err).Error("failed to encode response")
		}
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

// writeServiceError maps service sentinel errors to status codes:
// not-found conditions to 404, duplicates to 409, every other business-rule
// or validation failure to 400.
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, services.ErrNotFound),
		errors.Is(err, services.ErrVehicleNotFound),
		errors.Is(err, services.ErrTripNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, services.ErrDuplicateVIN),
		errors.Is(err, services.ErrDuplicatePlate),
		errors.Is(err, services.ErrDuplicateSKU):
		writeError(w, http.StatusConflict, err.Error())
	case errors.Is(err, services.ErrValidation),
		errors.Is(err, services.ErrVehicleUnavailable),
		errors.Is(err, services.ErrTripAlreadyEnded),
		errors.Is(err, services.ErrUserReferenced),
		errors.Is(err, services.ErrDuplicateUsername),
		errors.Is(err, services.ErrDuplicateEmail):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		log.WithError(err).Error("internal error")
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

func decodeJSON(r *http.Request, v interface{}) error {
	return json.NewDecoder(r.Body).Decode(v)
}
