package handler

import (
	"encoding/json"
	"net/http"

	"github.com/mcallister/ro-casework/internal/auth"
)

func (h *Handler) GetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.statsService.Dashboard(r.Context(), auth.OwnerID(r.Context()))
	if err != nil {
		h.handleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(domainStatsToHTTP(stats))
}
