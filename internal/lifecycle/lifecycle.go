// Package lifecycle owns the case status state machine:
//
//	new -> in-progress -> resolved
//
// with a direct new -> resolved shortcut. Resolved is terminal: a resolved
// case keeps accepting the resolved status as an idempotent no-op but any
// attempt to move it elsewhere is rejected. Reopening a matter means
// raising a fresh case.
package lifecycle

import "github.com/mcallister/ro-casework/internal/domain"

// Initial is the status assigned to every newly created case.
const Initial = domain.StatusNew

// Transition returns the case with next applied to its status field and
// every other field untouched. No history of prior states is kept; audit
// notes are layered on via team updates when the officer wants them.
func Transition(c domain.Case, next domain.Status) (domain.Case, error) {
	if !next.Valid() {
		return c, domain.NewValidationError("unknown case status: " + string(next))
	}

	if c.Status == domain.StatusResolved && next != domain.StatusResolved {
		return c, domain.ErrCaseResolved
	}

	c.Status = next
	return c, nil
}
