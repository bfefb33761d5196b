package document

import (
	"strings"
	"testing"
	"time"

	"github.com/mcallister/ro-casework/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleCase() domain.Case {
	created := time.Date(2024, 1, 31, 10, 0, 0, 0, time.UTC)
	return domain.Case{
		ID:           "case-1",
		OwnerID:      "officer-1",
		MemberNumber: "12345",
		Name:         "Jane Doe",
		Employer:     "Acme NHS Trust",
		Workplace:    "Wexham Park Hospital",
		Address:      "1 Hospital Way\nSlough",
		Postcode:     "SL2 4HL",
		JobTitle:     "Staff Nurse",
		Email:        "jane.doe@example.com",
		Phone:        "07700 900123",
		Issue:        "Unfair treatment.",
		CaseType:     domain.CaseTypeMemberAssist,
		Status:       domain.StatusNew,
		Priority:     domain.PriorityHigh,
		CreatedDate:  created,
		Deadline:     created.Add(24 * time.Hour),
	}
}

func allText(doc *Document) []string {
	var out []string
	for _, page := range doc.Pages {
		for _, op := range page.Ops {
			out = append(out, op.Text)
		}
	}
	return out
}

func findOp(t *testing.T, doc *Document, substr string) TextOp {
	t.Helper()
	for _, page := range doc.Pages {
		for _, op := range page.Ops {
			if strings.Contains(op.Text, substr) {
				return op
			}
		}
	}
	t.Fatalf("no text op containing %q", substr)
	return TextOp{}
}

func TestLegalRunForm(t *testing.T) {
	now := time.Date(2024, 2, 1, 12, 0, 0, 0, time.UTC)

	t.Run("fixed layout blocks", func(t *testing.T) {
		doc := LegalRunForm(sampleCase(), now)

		assert.Equal(t, "Legal_Run_Form_12345", doc.Filename)
		assert.Equal(t, PageWidth, doc.PageWidth)
		assert.Equal(t, PageHeight, doc.PageHeight)

		title := findOp(t, doc, "Legal Run Form")
		assert.Equal(t, AlignCenter, title.Align)
		assert.Equal(t, colorBlue, title.Color)

		texts := allText(doc)
		assert.Contains(t, texts, "Member Number: 12345")
		assert.Contains(t, texts, "Name: Jane Doe")
		assert.Contains(t, texts, "Case Type: Member Assist")
		assert.Contains(t, texts, "Date Received: 31/01/2024")
		assert.Contains(t, texts, "Unfair treatment.")
		assert.Contains(t, texts, "Please provide legal advice for this case.")

		footer := findOp(t, doc, "Generated by Regional Officer Case Management System")
		assert.Equal(t, colorGrey, footer.Color)
	})

	t.Run("empty optional fields render blank", func(t *testing.T) {
		c := sampleCase()
		c.Email = ""
		c.Phone = ""

		doc := LegalRunForm(c, now)

		texts := allText(doc)
		assert.Contains(t, texts, "Email: ")
		assert.Contains(t, texts, "Phone: ")
		for _, text := range texts {
			assert.NotContains(t, text, "undefined")
			assert.NotContains(t, text, "null")
			assert.NotContains(t, text, "<nil>")
		}
	})

	t.Run("long issue text wraps and flows onto further pages", func(t *testing.T) {
		c := sampleCase()
		c.Issue = strings.TrimSpace(strings.Repeat("The rota was changed without consultation. ", 120))

		doc := LegalRunForm(c, now)

		require.Greater(t, len(doc.Pages), 1)
		limit := maxChars(10)
		for _, page := range doc.Pages {
			for _, op := range page.Ops {
				assert.LessOrEqual(t, len(op.Text), limit)
			}
		}
	})

	t.Run("rendering is deterministic", func(t *testing.T) {
		first := LegalRunForm(sampleCase(), now)
		second := LegalRunForm(sampleCase(), now)

		assert.Equal(t, first, second)
	})
}

func TestAdviceLetter(t *testing.T) {
	now := time.Date(2024, 2, 1, 12, 0, 0, 0, time.UTC)

	t.Run("letter structure", func(t *testing.T) {
		doc := AdviceLetter(sampleCase(), now)

		assert.Equal(t, "Advice_Letter_12345", doc.Filename)

		texts := allText(doc)
		assert.Contains(t, texts, "Dear Jane,")
		assert.Contains(t, texts, "Jane Doe")
		assert.Contains(t, texts, "SL2 4HL")
		assert.Contains(t, texts, "01/02/2024")

		body := strings.Join(texts, "\n")
		assert.Contains(t, body, "Wexham Park Hospital")
		assert.Contains(t, body, "Unfair treatment.")
		assert.Contains(t, body, "Employment Tribunal")
		assert.Contains(t, body, "Yours sincerely,")
	})

	t.Run("limitation date is computed from the received date and shown in red", func(t *testing.T) {
		doc := AdviceLetter(sampleCase(), now)

		// 31 January + 3 months clamps to 30 April
		op := findOp(t, doc, "Limitation Date: 30/04/2024")
		assert.Equal(t, colorRed, op.Color)
	})

	t.Run("empty name and address stay blank", func(t *testing.T) {
		c := sampleCase()
		c.Name = ""
		c.Address = ""
		c.Postcode = ""

		doc := AdviceLetter(c, now)

		texts := allText(doc)
		assert.Contains(t, texts, "Dear ,")
		for _, text := range texts {
			assert.NotContains(t, text, "undefined")
			assert.NotContains(t, text, "null")
		}
	})
}

func TestWrap(t *testing.T) {
	t.Run("keeps short text on one line", func(t *testing.T) {
		assert.Equal(t, []string{"hello world"}, wrap("hello world", 40))
	})

	t.Run("wraps at word boundaries", func(t *testing.T) {
		lines := wrap("one two three four five", 9)

		assert.Equal(t, []string{"one two", "three", "four five"}, lines)
	})

	t.Run("preserves paragraph breaks", func(t *testing.T) {
		lines := wrap("first\n\nsecond", 40)

		assert.Equal(t, []string{"first", "", "second"}, lines)
	})

	t.Run("hard-breaks words longer than a line", func(t *testing.T) {
		lines := wrap("abcdefghij", 4)

		assert.Equal(t, []string{"abcd", "efgh", "ij"}, lines)
	})
}
