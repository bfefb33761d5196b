package handler

import (
	"encoding/json"
	"net/http"

	"github.com/mcallister/ro-casework/internal/auth"
	"github.com/mcallister/ro-casework/internal/domain"
)

func (h *Handler) ListTeamUpdates(w http.ResponseWriter, r *http.Request) {
	updates, err := h.teamUpdateService.List(r.Context(), auth.OwnerID(r.Context()))
	if err != nil {
		h.handleError(w, err)
		return
	}

	result := make([]TeamUpdateResponse, 0, len(updates))
	for _, update := range updates {
		result = append(result, domainTeamUpdateToHTTP(update))
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(ListTeamUpdatesResponse{Updates: result})
}

func (h *Handler) CreateTeamUpdate(w http.ResponseWriter, r *http.Request) {
	var req TeamUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.handleError(w, domain.NewValidationError("invalid request body"))
		return
	}

	update, err := h.teamUpdateService.Create(r.Context(), &domain.TeamUpdate{
		OwnerID: auth.OwnerID(r.Context()),
		CaseID:  req.CaseID,
		Title:   req.Title,
		Type:    domain.UpdateType(req.Type),
		Content: req.Content,
	})
	if err != nil {
		h.handleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(domainTeamUpdateToHTTP(update))
}
