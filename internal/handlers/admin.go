package handlers

import (
	"net/http"

	"events-marketplace/internal/middleware"
	"events-marketplace/internal/models"
	"events-marketplace/internal/services"
)

// AdminHandler handles the event moderation workflow and admin reports
type AdminHandler struct {
	moderation *services.ModerationService
	reports    *services.ReportService
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(moderation *services.ModerationService, reports *services.ReportService) *AdminHandler {
	return &AdminHandler{
		moderation: moderation,
		reports:    reports,
	}
}

// PendingEvents handles GET /api/admin/events/pending
func (h *AdminHandler) PendingEvents(w http.ResponseWriter, r *http.Request) {
	limit, offset := pagination(r)

	events, err := h.moderation.ListPending(r.Context(), limit, offset)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"events": events})
}

// ApproveEvent handles POST /api/admin/events/{eventId}/approve
func (h *AdminHandler) ApproveEvent(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r.Context())

	eventID, err := eventIDParam(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid event id"})
		return
	}

	if err := h.moderation.Approve(r.Context(), user, eventID); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": string(models.StatusPublished)})
}

type rejectRequest struct {
	Reason string `json:"reason"`
}

// RejectEvent handles POST /api/admin/events/{eventId}/reject
func (h *AdminHandler) RejectEvent(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r.Context())

	eventID, err := eventIDParam(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid event id"})
		return
	}

	var req rejectRequest
	if err := decodeJSON(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	if err := h.moderation.Reject(r.Context(), user, eventID, req.Reason); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": string(models.StatusDraft)})
}

// CancelEvent handles POST /api/admin/events/{eventId}/cancel
func (h *AdminHandler) CancelEvent(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r.Context())

	eventID, err := eventIDParam(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid event id"})
		return
	}

	if err := h.moderation.Cancel(r.Context(), user, eventID); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": string(models.StatusCancelled)})
}

// SalesReport handles GET /api/admin/reports/sales
func (h *AdminHandler) SalesReport(w http.ResponseWriter, r *http.Request) {
	report, err := h.reports.SalesReport(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"events": report})
}

// ActionReport handles GET /api/admin/reports/actions
func (h *AdminHandler) ActionReport(w http.ResponseWriter, r *http.Request) {
	limit, offset := pagination(r)

	report, err := h.reports.ActionReport(r.Context(), limit, offset)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, report)
}
