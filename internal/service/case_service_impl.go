package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/mcallister/ro-casework/internal/document"
	"github.com/mcallister/ro-casework/internal/document/pdf"
	"github.com/mcallister/ro-casework/internal/domain"
	"github.com/mcallister/ro-casework/internal/intake"
	"github.com/mcallister/ro-casework/internal/lifecycle"
	"github.com/mcallister/ro-casework/internal/repository"
)

// intakeWindow is how long an officer has to make first contact on a new
// case; every case starts with its deadline this far from creation.
const intakeWindow = 24 * time.Hour

type caseService struct {
	caseRepo     repository.CaseRepository
	documentRepo repository.DocumentRepository
}

func NewCaseService(caseRepo repository.CaseRepository, documentRepo repository.DocumentRepository) CaseService {
	return &caseService{
		caseRepo:     caseRepo,
		documentRepo: documentRepo,
	}
}

func (s *caseService) CreateFromText(ctx context.Context, ownerID, raw string) (*domain.Case, error) {
	draft := intake.Parse(raw)

	c := newCaseFromDraft(ownerID, draft, time.Now())
	if err := s.caseRepo.Create(ctx, c); err != nil {
		return nil, err
	}

	return c, nil
}

func (s *caseService) Create(ctx context.Context, ownerID string, draft domain.CaseDraft) (*domain.Case, error) {
	if draft.Name == "" && draft.MemberNumber == "" {
		return nil, domain.NewValidationError("member name or member number is required")
	}
	if draft.Issue == "" {
		return nil, domain.NewValidationError("issue details are required")
	}

	c := newCaseFromDraft(ownerID, draft, time.Now())
	if err := s.caseRepo.Create(ctx, c); err != nil {
		return nil, err
	}

	return c, nil
}

// newCaseFromDraft assigns everything the draft does not carry: identity,
// creation time, the initial lifecycle status and the intake deadline.
func newCaseFromDraft(ownerID string, d domain.CaseDraft, now time.Time) *domain.Case {
	caseType := d.CaseType
	if caseType == "" {
		caseType = domain.CaseTypeMemberAssist
	}
	priority := d.Priority
	if priority == "" {
		priority = domain.PriorityHigh
	}

	return &domain.Case{
		ID:            uuid.NewString(),
		OwnerID:       ownerID,
		CaseReference: d.CaseReference,
		MemberNumber:  d.MemberNumber,
		Name:          d.Name,
		JoinDate:      d.JoinDate,
		Employer:      d.Employer,
		Workplace:     d.Workplace,
		Address:       d.Address,
		Postcode:      d.Postcode,
		JobTitle:      d.JobTitle,
		Email:         d.Email,
		Phone:         d.Phone,
		Issue:         d.Issue,
		CaseType:      caseType,
		Status:        lifecycle.Initial,
		Priority:      priority,
		CreatedDate:   now,
		Deadline:      now.Add(intakeWindow),
	}
}

func (s *caseService) Get(ctx context.Context, ownerID, id string) (*domain.Case, error) {
	return s.caseRepo.GetByID(ctx, ownerID, id)
}

func (s *caseService) List(ctx context.Context, ownerID string) ([]*domain.Case, error) {
	return s.caseRepo.ListByOwner(ctx, ownerID)
}

func (s *caseService) Update(ctx context.Context, ownerID, id string, patch domain.CasePatch) (*domain.Case, error) {
	c, err := s.caseRepo.GetByID(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}

	if patch.Status != nil {
		next, err := lifecycle.Transition(*c, *patch.Status)
		if err != nil {
			return nil, err
		}
		c = &next
	}
	if patch.Priority != nil {
		c.Priority = *patch.Priority
	}
	if patch.Issue != nil {
		c.Issue = *patch.Issue
	}
	if patch.Deadline != nil {
		// An explicit reschedule may land in the past; that simply makes
		// the case overdue, it is not an error.
		c.Deadline = *patch.Deadline
	}

	if err := s.caseRepo.Update(ctx, c); err != nil {
		return nil, err
	}

	return c, nil
}

func (s *caseService) Delete(ctx context.Context, ownerID, id string) error {
	return s.caseRepo.Delete(ctx, ownerID, id)
}

func (s *caseService) GenerateLegalRunForm(ctx context.Context, ownerID, id string) (*Export, error) {
	c, err := s.caseRepo.GetByID(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}
	return s.export(ctx, c, document.LegalRunForm(*c, time.Now()), "Legal Run Form")
}

func (s *caseService) GenerateAdviceLetter(ctx context.Context, ownerID, id string) (*Export, error) {
	c, err := s.caseRepo.GetByID(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}
	return s.export(ctx, c, document.AdviceLetter(*c, time.Now()), "Advice Letter")
}

func (s *caseService) export(ctx context.Context, c *domain.Case, doc *document.Document, docType string) (*Export, error) {
	data, err := pdf.Render(doc)
	if err != nil {
		return nil, err
	}

	record := &domain.DocumentRecord{
		ID:        uuid.NewString(),
		OwnerID:   c.OwnerID,
		CaseID:    c.ID,
		Name:      doc.Filename,
		Type:      docType,
		CreatedAt: time.Now(),
	}
	if err := s.documentRepo.Create(ctx, record); err != nil {
		return nil, err
	}

	return &Export{
		Filename:    doc.Filename + ".pdf",
		ContentType: "application/pdf",
		Data:        data,
	}, nil
}
