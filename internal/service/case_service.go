package service

import (
	"context"

	"github.com/mcallister/ro-casework/internal/domain"
)

// Export is a rendered document ready to be offered as a download by the
// HTTP layer.
type Export struct {
	Filename    string
	ContentType string
	Data        []byte
}

type CaseService interface {
	// CreateFromText runs the intake parser over pasted free text and
	// opens a case from whatever it extracted. Unlike Create it applies
	// no required-field validation: a partial draft is still useful for
	// manual correction.
	CreateFromText(ctx context.Context, ownerID, raw string) (*domain.Case, error)

	// Create opens a case from a direct form submission. Name or member
	// number, plus issue text, are required.
	Create(ctx context.Context, ownerID string, draft domain.CaseDraft) (*domain.Case, error)

	Get(ctx context.Context, ownerID, id string) (*domain.Case, error)

	// List returns the owner's cases, newest first.
	List(ctx context.Context, ownerID string) ([]*domain.Case, error)

	// Update applies a patch; a status change goes through the lifecycle
	// state machine.
	Update(ctx context.Context, ownerID, id string, patch domain.CasePatch) (*domain.Case, error)

	Delete(ctx context.Context, ownerID, id string) error

	// GenerateLegalRunForm renders the solicitor referral form for a case
	// as PDF and records document metadata.
	GenerateLegalRunForm(ctx context.Context, ownerID, id string) (*Export, error)

	// GenerateAdviceLetter renders the member advice letter for a case as
	// PDF and records document metadata.
	GenerateAdviceLetter(ctx context.Context, ownerID, id string) (*Export, error)
}
