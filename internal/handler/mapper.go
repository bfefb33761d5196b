package handler

import (
	"time"

	"github.com/mcallister/ro-casework/internal/deadline"
	"github.com/mcallister/ro-casework/internal/domain"
)

// domainCaseToHTTP computes the urgency fields against the now argument so
// that every case in a response is classified against the same instant.
func domainCaseToHTTP(c *domain.Case, now time.Time) CaseResponse {
	urgency := deadline.Classify(c.Deadline, now)

	return CaseResponse{
		ID:             c.ID,
		CaseReference:  c.CaseReference,
		MemberNumber:   c.MemberNumber,
		Name:           c.Name,
		JoinDate:       c.JoinDate,
		Employer:       c.Employer,
		Workplace:      c.Workplace,
		Address:        c.Address,
		Postcode:       c.Postcode,
		JobTitle:       c.JobTitle,
		Email:          c.Email,
		Phone:          c.Phone,
		Issue:          c.Issue,
		CaseType:       string(c.CaseType),
		Status:         string(c.Status),
		Priority:       string(c.Priority),
		CreatedDate:    c.CreatedDate.Format(time.RFC3339),
		Deadline:       c.Deadline.Format(time.RFC3339),
		DeadlineStatus: string(urgency.Status),
		DeadlineLabel:  urgency.Label,
	}
}

func domainCasesToHTTP(cases []*domain.Case, now time.Time) []CaseResponse {
	result := make([]CaseResponse, 0, len(cases))
	for _, c := range cases {
		result = append(result, domainCaseToHTTP(c, now))
	}
	return result
}

func httpCaseToDraft(req CreateCaseRequest) domain.CaseDraft {
	return domain.CaseDraft{
		CaseReference: req.CaseReference,
		MemberNumber:  req.MemberNumber,
		Name:          req.Name,
		JoinDate:      req.JoinDate,
		Employer:      req.Employer,
		Workplace:     req.Workplace,
		Address:       req.Address,
		Postcode:      req.Postcode,
		JobTitle:      req.JobTitle,
		Email:         req.Email,
		Phone:         req.Phone,
		Issue:         req.Issue,
		CaseType:      domain.CaseType(req.CaseType),
		Priority:      domain.Priority(req.Priority),
	}
}

func httpPatchToDomain(req UpdateCaseRequest) (domain.CasePatch, error) {
	patch := domain.CasePatch{Issue: req.Issue}

	if req.Status != nil {
		status := domain.Status(*req.Status)
		patch.Status = &status
	}
	if req.Priority != nil {
		priority := domain.Priority(*req.Priority)
		patch.Priority = &priority
	}
	if req.Deadline != nil {
		parsed, err := time.Parse(time.RFC3339, *req.Deadline)
		if err != nil {
			return domain.CasePatch{}, domain.NewValidationError("deadline must be an RFC 3339 timestamp")
		}
		patch.Deadline = &parsed
	}

	return patch, nil
}

func domainHospitalToHTTP(h *domain.Hospital) HospitalResponse {
	return HospitalResponse{
		ID:       h.ID,
		Name:     h.Name,
		Address:  h.Address,
		Postcode: h.Postcode,
		Phone:    h.Phone,
		Email:    h.Email,
	}
}

func domainMeetingToHTTP(m *domain.Meeting) MeetingResponse {
	return MeetingResponse{
		ID:        m.ID,
		Title:     m.Title,
		Date:      m.Date.Format(time.RFC3339),
		Location:  m.Location,
		Attendees: m.Attendees,
		Notes:     m.Notes,
	}
}

func domainDocumentToHTTP(d *domain.DocumentRecord) DocumentResponse {
	return DocumentResponse{
		ID:        d.ID,
		CaseID:    d.CaseID,
		Name:      d.Name,
		Type:      d.Type,
		CreatedAt: d.CreatedAt.Format(time.RFC3339),
	}
}

func domainTeamUpdateToHTTP(u *domain.TeamUpdate) TeamUpdateResponse {
	return TeamUpdateResponse{
		ID:        u.ID,
		CaseID:    u.CaseID,
		Title:     u.Title,
		Type:      string(u.Type),
		Content:   u.Content,
		CreatedAt: u.CreatedAt.Format(time.RFC3339),
	}
}

func domainStatsToHTTP(s *domain.DashboardStats) StatsResponse {
	return StatsResponse{
		Urgent:   s.Urgent,
		Active:   s.Active,
		Resolved: s.Resolved,
		Total:    s.Total,
	}
}
