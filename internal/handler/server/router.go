package server

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/mcallister/ro-casework/internal/auth"
	"github.com/mcallister/ro-casework/internal/handler"
)

// SetupRoutes wires the HTTP surface. Everything except login sits behind
// the bearer-token middleware.
func SetupRoutes(mux *http.ServeMux, h *handler.Handler, tokens *auth.TokenService, logger *zap.Logger) {
	mux.HandleFunc("POST /api/login", h.Login)

	requireAuth := auth.RequireAuth(tokens, logger)
	protect := func(pattern string, hf http.HandlerFunc) {
		mux.Handle(pattern, requireAuth(hf))
	}

	protect("GET /api/cases", h.ListCases)
	protect("POST /api/cases", h.CreateCase)
	protect("POST /api/cases/parse", h.ParseCase)
	protect("GET /api/cases/{id}", h.GetCase)
	protect("PUT /api/cases/{id}", h.UpdateCase)
	protect("DELETE /api/cases/{id}", h.DeleteCase)
	protect("GET /api/cases/{id}/legal-run-form", h.LegalRunForm)
	protect("GET /api/cases/{id}/advice-letter", h.AdviceLetter)

	protect("GET /api/hospitals", h.ListHospitals)
	protect("POST /api/hospitals", h.CreateHospital)
	protect("DELETE /api/hospitals/{id}", h.DeleteHospital)

	protect("GET /api/meetings", h.ListMeetings)
	protect("POST /api/meetings", h.CreateMeeting)
	protect("DELETE /api/meetings/{id}", h.DeleteMeeting)

	protect("GET /api/documents", h.ListDocuments)
	protect("POST /api/documents", h.CreateDocument)
	protect("DELETE /api/documents/{id}", h.DeleteDocument)

	protect("GET /api/team-updates", h.ListTeamUpdates)
	protect("POST /api/team-updates", h.CreateTeamUpdate)

	protect("GET /api/stats", h.GetStats)
}
