package handler

import (
	"encoding/json"
	"net/http"

	"github.com/mcallister/ro-casework/internal/domain"
)

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.handleError(w, domain.NewValidationError("invalid request body"))
		return
	}

	token, account, err := h.authService.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		h.handleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(LoginResponse{
		Token: token,
		User: AccountResponse{
			ID:       account.ID,
			Username: account.Username,
		},
	})
}
