package document

import (
	"fmt"
	"time"

	"github.com/mcallister/ro-casework/internal/domain"
)

const dateFormat = "02/01/2006"

// LegalRunForm lays out the referral form sent to the union's solicitors:
// member details, case information, the word-wrapped issue text and a fixed
// request note. now is only used for the footer timestamp.
func LegalRunForm(c domain.Case, now time.Time) *Document {
	b := newBuilder("Legal Run Form", "Legal_Run_Form_"+c.MemberNumber)

	b.text(centerX, 20, 20, colorBlue, AlignCenter, "Legal Run Form")

	b.text(marginLeft, 40, 12, colorBlack, AlignLeft, "Member Details:")
	b.text(marginLeft, 50, 10, colorBlack, AlignLeft, fmt.Sprintf("Member Number: %s", c.MemberNumber))
	b.text(marginLeft, 58, 10, colorBlack, AlignLeft, fmt.Sprintf("Name: %s", c.Name))
	b.text(marginLeft, 66, 10, colorBlack, AlignLeft, fmt.Sprintf("Employer: %s", c.Employer))
	b.text(marginLeft, 74, 10, colorBlack, AlignLeft, fmt.Sprintf("Workplace: %s", c.Workplace))
	b.text(marginLeft, 82, 10, colorBlack, AlignLeft, fmt.Sprintf("Job Title: %s", c.JobTitle))
	b.text(marginLeft, 90, 10, colorBlack, AlignLeft, fmt.Sprintf("Email: %s", c.Email))
	b.text(marginLeft, 98, 10, colorBlack, AlignLeft, fmt.Sprintf("Phone: %s", c.Phone))

	b.text(marginLeft, 115, 12, colorBlack, AlignLeft, "Case Information:")
	b.text(marginLeft, 125, 10, colorBlack, AlignLeft, fmt.Sprintf("Case Type: %s", c.CaseType))
	b.text(marginLeft, 133, 10, colorBlack, AlignLeft, fmt.Sprintf("Status: %s", c.Status))
	b.text(marginLeft, 141, 10, colorBlack, AlignLeft, fmt.Sprintf("Priority: %s", c.Priority))
	b.text(marginLeft, 149, 10, colorBlack, AlignLeft, fmt.Sprintf("Date Received: %s", c.CreatedDate.Format(dateFormat)))

	b.text(marginLeft, 170, 12, colorBlack, AlignLeft, "Issue Details:")
	endY := b.wrapped(marginLeft, 180, 10, colorBlack, c.Issue)

	notesY := 220.0
	if endY+15 > notesY {
		notesY = endY + 15
	}
	if notesY > flowLimit-10 {
		b.newPage()
		notesY = topMargin
	}
	b.text(marginLeft, notesY, 12, colorBlack, AlignLeft, "Regional Officer Notes:")
	b.text(marginLeft, notesY+10, 10, colorBlack, AlignLeft, "Please provide legal advice for this case.")

	b.text(centerX, 280, 8, colorGrey, AlignCenter, "Generated by Regional Officer Case Management System")
	b.text(centerX, 286, 8, colorGrey, AlignCenter, now.Format(dateFormat))

	return b.doc
}
