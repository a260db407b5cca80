package handlers

import (
	"net/http"

	"github.com/fleetops/fleet-management/internal/middleware"
	"github.com/fleetops/fleet-management/internal/models"
	"github.com/fleetops/fleet-management/internal/services"
)

// IssueHandler exposes the issue routes.
type IssueHandler struct {
	issues *services.IssueService
}

// NewIssueHandler creates an issue handler.
func NewIssueHandler(issues *services.IssueService) *IssueHandler {
	return &IssueHandler{issues: issues}
}

// List handles GET /api/Issues.
func (h *IssueHandler) List(w http.ResponseWriter, r *http.Request) {
	issues, err := h.issues.List(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, issues)
}

// Get handles GET /api/Issues/{id}.
func (h *IssueHandler) Get(w http.ResponseWriter, r *http.Request) {
	issue, err := h.issues.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, issue)
}

// ListByVehicle handles GET /api/Issues/vehicle/{id}.
func (h *IssueHandler) ListByVehicle(w http.ResponseWriter, r *http.Request) {
	issues, err := h.issues.ListByVehicle(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, issues)
}

// ListByStatus handles GET /api/Issues/status/{status}.
func (h *IssueHandler) ListByStatus(w http.ResponseWriter, r *http.Request) {
	issues, err := h.issues.ListByStatus(r.Context(), models.IssueStatus(r.PathValue("status")))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, issues)
}

// Create handles POST /api/Issues. The reporter is always the authenticated
// caller, never a body field.
func (h *IssueHandler) Create(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.GetUserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "User context not found")
		return
	}

	var req models.CreateIssueRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	issue, err := h.issues.Create(r.Context(), claims.UserID, req)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, issue)
}

// Update handles PUT /api/Issues/{id}.
func (h *IssueHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateIssueRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	issue, err := h.issues.Update(r.Context(), r.PathValue("id"), req)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, issue)
}

// Delete handles DELETE /api/Issues/{id}.
func (h *IssueHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.issues.Delete(r.Context(), r.PathValue("id")); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
