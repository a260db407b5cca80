package handlers

import (
	"net/http"

	"github.com/fleetops/fleet-management/internal/models"
	"github.com/fleetops/fleet-management/internal/services"
)

// PartHandler exposes the parts-inventory routes.
type PartHandler struct {
	parts *services.PartService
}

// NewPartHandler creates a parts handler.
func NewPartHandler(parts *services.PartService) *PartHandler {
	return &PartHandler{parts: parts}
}

// List handles GET /api/Parts.
func (h *PartHandler) List(w http.ResponseWriter, r *http.Request) {
	parts, err := h.parts.List(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, parts)
}

// Get handles GET /api/Parts/{id}.
func (h *PartHandler) Get(w http.ResponseWriter, r *http.Request) {
	part, err := h.parts.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, part)
}

// ListLowStock handles GET /api/Parts/low-stock.
func (h *PartHandler) ListLowStock(w http.ResponseWriter, r *http.Request) {
	parts, err := h.parts.ListLowStock(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, parts)
}

// Create handles POST /api/Parts.
func (h *PartHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreatePartRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	part, err := h.parts.Create(r.Context(), req)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, part)
}

// Update handles PUT /api/Parts/{id}.
func (h *PartHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req models.UpdatePartRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	part, err := h.parts.Update(r.Context(), r.PathValue("id"), req)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, part)
}

// UseStock handles POST /api/Parts/{id}/use.
func (h *PartHandler) UseStock(w http.ResponseWriter, r *http.Request) {
	var req models.UseStockRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	part, ok, err := h.parts.UseStock(r.Context(), r.PathValue("id"), req.Quantity)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if !ok {
		writeError(w, http.StatusNotFound, "Part not found")
		return
	}
	writeJSON(w, http.StatusOK, part)
}

// Delete handles DELETE /api/Parts/{id}.
func (h *PartHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.parts.Delete(r.Context(), r.PathValue("id")); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
