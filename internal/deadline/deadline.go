// Package deadline computes urgency tiers and statutory limitation dates.
// Everything here is a pure function of its time arguments; callers must
// take a single "now" sample per evaluation so fields computed together
// stay consistent.
package deadline

import (
	"fmt"
	"math"
	"time"
)

type Status string

const (
	StatusOverdue Status = "overdue"
	StatusWarning Status = "warning"
	StatusNormal  Status = "normal"
)

// warningWindow is the band before a deadline during which a case is
// flagged as warning rather than normal.
const warningWindow = 12.0

// Urgency classifies how close a case is to its deadline. HoursRemaining
// keeps the real-valued figure used for the comparison; Label carries the
// rounded display form.
type Urgency struct {
	Status         Status
	HoursRemaining float64
	Label          string
}

// Classify tiers the time remaining until deadline: negative is overdue,
// under 12 hours is warning, anything else is normal. Exactly zero hours
// remaining falls in the warning band, not overdue.
func Classify(deadline, now time.Time) Urgency {
	hours := deadline.Sub(now).Hours()

	if hours < 0 {
		return Urgency{Status: StatusOverdue, HoursRemaining: hours, Label: "Overdue"}
	}

	label := fmt.Sprintf("%dh left", int(math.Round(hours)))
	if hours < warningWindow {
		return Urgency{Status: StatusWarning, HoursRemaining: hours, Label: label}
	}
	return Urgency{Status: StatusNormal, HoursRemaining: hours, Label: label}
}

// LimitationDate returns the statutory cutoff for lodging a tribunal claim:
// exactly 3 calendar months after the reference date. When the reference day
// does not exist in the target month (e.g. 31 January + 3 months) the result
// clamps to the last valid day of the target month rather than normalising
// into the following month. The time of day and location are preserved.
func LimitationDate(ref time.Time) time.Time {
	year, month, day := ref.Date()
	hour, min, sec := ref.Clock()

	firstOfTarget := time.Date(year, month+3, 1, hour, min, sec, ref.Nanosecond(), ref.Location())
	lastDay := firstOfTarget.AddDate(0, 1, -1).Day()
	if day > lastDay {
		day = lastDay
	}

	return time.Date(firstOfTarget.Year(), firstOfTarget.Month(), day, hour, min, sec, ref.Nanosecond(), ref.Location())
}
