// Package intake extracts a structured case draft from semi-structured
// free text, typically an email pasted by a regional officer. Extraction is
// best effort: every field is independently optional and an unmatched label
// simply leaves that field empty, so partial or malformed text still yields
// a draft the officer can correct by hand.
package intake

import (
	"regexp"
	"strings"

	"github.com/mcallister/ro-casework/internal/domain"
)

type captureMode int

const (
	// singleLine captures from the label to the end of that line.
	singleLine captureMode = iota
	// untilLabel captures across lines until a stop label is reached.
	untilLabel
	// toEnd captures everything after the label to the end of the input.
	toEnd
)

// fieldRule binds one draft field to a labelled region of the input.
// Adding a field is a new table entry, not new control flow. A non-empty
// pattern overrides the regex normally derived from label and mode.
type fieldRule struct {
	label   string
	mode    captureMode
	stop    string
	pattern string
	trim    bool
	assign  func(d *domain.CaseDraft, v string)
}

var rules = []fieldRule{
	// The member line packs two fields: "Member: 12345 - Jane Doe".
	{
		label:   "Member:",
		pattern: `Member:\s*(\d+)`,
		assign:  func(d *domain.CaseDraft, v string) { d.MemberNumber = v },
	},
	{
		label:   "Member:",
		pattern: `(?s:Member:.*?-)\s*([^\n]+)`,
		trim:    true,
		assign:  func(d *domain.CaseDraft, v string) { d.Name = v },
	},
	{
		label:  "Join date:",
		mode:   singleLine,
		assign: func(d *domain.CaseDraft, v string) { d.JoinDate = v },
	},
	{
		label:  "Employer Name:",
		mode:   singleLine,
		assign: func(d *domain.CaseDraft, v string) { d.Employer = v },
	},
	{
		label:  "Workplace Name:",
		mode:   singleLine,
		assign: func(d *domain.CaseDraft, v string) { d.Workplace = v },
	},
	{
		label:  "Workplace Address:",
		mode:   untilLabel,
		stop:   "Post Code:",
		trim:   true,
		assign: func(d *domain.CaseDraft, v string) { d.Address = v },
	},
	{
		label:  "Post Code:",
		mode:   singleLine,
		trim:   true,
		assign: func(d *domain.CaseDraft, v string) { d.Postcode = v },
	},
	{
		label:  "Job Title:",
		mode:   singleLine,
		assign: func(d *domain.CaseDraft, v string) { d.JobTitle = v },
	},
	{
		label:  "Email Addresses:",
		mode:   singleLine,
		assign: func(d *domain.CaseDraft, v string) { d.Email = v },
	},
	{
		label:  "Telephone:",
		mode:   singleLine,
		assign: func(d *domain.CaseDraft, v string) { d.Phone = v },
	},
	{
		label:  "Issue Details:",
		mode:   toEnd,
		trim:   true,
		assign: func(d *domain.CaseDraft, v string) { d.Issue = v },
	},
}

var compiled = compileRules(rules)

type compiledRule struct {
	re     *regexp.Regexp
	trim   bool
	assign func(d *domain.CaseDraft, v string)
}

func compileRules(rules []fieldRule) []compiledRule {
	out := make([]compiledRule, 0, len(rules))
	for _, r := range rules {
		pattern := r.pattern
		if pattern == "" {
			label := regexp.QuoteMeta(r.label)
			switch r.mode {
			case singleLine:
				pattern = label + `\s*([^\n]+)`
			case untilLabel:
				pattern = `(?s)` + label + `\s*(.*?)` + regexp.QuoteMeta(r.stop)
			case toEnd:
				pattern = `(?s)` + label + `\s*(.+)`
			}
		}
		out = append(out, compiledRule{
			re:     regexp.MustCompile(pattern),
			trim:   r.trim,
			assign: r.assign,
		})
	}
	return out
}

// Parse runs every field rule over raw and returns the resulting draft.
// First match wins when a label appears more than once. Parse never fails;
// with no labels present every field is the empty string.
func Parse(raw string) domain.CaseDraft {
	var draft domain.CaseDraft
	for _, r := range compiled {
		m := r.re.FindStringSubmatch(raw)
		if m == nil {
			continue
		}
		v := m[1]
		if r.trim {
			v = strings.TrimSpace(v)
		}
		r.assign(&draft, v)
	}
	return draft
}
