package handler

import (
	"go.uber.org/zap"

	"github.com/mcallister/ro-casework/internal/service"
)

type Handler struct {
	authService       service.AuthService
	caseService       service.CaseService
	hospitalService   service.HospitalService
	meetingService    service.MeetingService
	documentService   service.DocumentService
	teamUpdateService service.TeamUpdateService
	statsService      service.StatsService
	logger            *zap.Logger
}

func NewHandler(
	authService service.AuthService,
	caseService service.CaseService,
	hospitalService service.HospitalService,
	meetingService service.MeetingService,
	documentService service.DocumentService,
	teamUpdateService service.TeamUpdateService,
	statsService service.StatsService,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		authService:       authService,
		caseService:       caseService,
		hospitalService:   hospitalService,
		meetingService:    meetingService,
		documentService:   documentService,
		teamUpdateService: teamUpdateService,
		statsService:      statsService,
		logger:            logger,
	}
}
