package document

import (
	"fmt"
	"strings"
	"time"

	"github.com/mcallister/ro-casework/internal/deadline"
	"github.com/mcallister/ro-casework/internal/domain"
)

const adviceLetterBody = `Thank you for contacting Unite in Health regarding your recent situation at %s.

Based on the information provided, I am writing to provide you with the following advice and guidance:

%s

Important Legal Notice:
Please note that you have a strict time limit of 3 months from the date of dismissal to bring a claim to the Employment Tribunal. This is known as the "limitation date".

If you believe you have been unfairly dismissed or have suffered any other detriment, you must ensure any claim is submitted to ACAS for Early Conciliation within this time limit.

If you have any questions or require further assistance, please do not hesitate to contact me.

Yours sincerely,

Regional Officer
Unite in Health`

// AdviceLetter lays out the formal advice letter for the member, quoting the
// issue text verbatim inside the boilerplate body and closing with the
// statutory limitation date computed from the case's received date.
func AdviceLetter(c domain.Case, now time.Time) *Document {
	b := newBuilder("Advice Letter", "Advice_Letter_"+c.MemberNumber)

	b.text(centerX, 20, 16, colorBlue, AlignCenter, "Advice Letter")
	b.text(180, 35, 11, colorBlack, AlignLeft, now.Format(dateFormat))

	b.text(marginLeft, 50, 12, colorBlack, AlignLeft, c.Name)
	y := 58.0
	for _, line := range strings.Split(c.Address, "\n") {
		b.text(marginLeft, y, 12, colorBlack, AlignLeft, line)
		y += 8
	}
	b.text(marginLeft, y, 12, colorBlack, AlignLeft, c.Postcode)

	b.text(marginLeft, y+19, 12, colorBlack, AlignLeft, fmt.Sprintf("Dear %s,", firstName(c.Name)))

	body := fmt.Sprintf(adviceLetterBody, c.Workplace, c.Issue)
	endY := b.wrapped(marginLeft, y+34, 11, colorBlack, body)

	limitY := 250.0
	if endY+10 > limitY {
		limitY = endY + 10
	}
	if limitY > flowLimit {
		b.newPage()
		limitY = topMargin
	}
	limitation := deadline.LimitationDate(c.CreatedDate)
	b.text(marginLeft, limitY, 10, colorRed, AlignLeft, fmt.Sprintf("Limitation Date: %s", limitation.Format(dateFormat)))

	return b.doc
}

// firstName returns the leading token of a full name, or "" when the name
// itself is empty.
func firstName(name string) string {
	fields := strings.Fields(name)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}
