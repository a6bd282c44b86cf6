package schedule

import (
	"fmt"
	"time"

	"github.com/username/calendar-utils/pkg/dateutil"
)

// DateLayout is the wire format for schedule dates (DD-MM-YYYY).
const DateLayout = "02-01-2006"

// Pattern describes a repeating work cycle: WorkDays consecutive working
// days followed by OffDays consecutive days off.
type Pattern struct {
	WorkDays int
	OffDays  int
}

// Validate checks that the pattern describes a usable cycle
func (p Pattern) Validate() error {
	if p.WorkDays < 1 {
		return fmt.Errorf("work days must be at least 1, got %d", p.WorkDays)
	}

	if p.OffDays < 1 {
		return fmt.Errorf("off days must be at least 1, got %d", p.OffDays)
	}

	return nil
}

// Len returns the full cycle length in days
func (p Pattern) Len() int {
	return p.WorkDays + p.OffDays
}

// Dates returns every working date of the cycle within the period, both
// bounds inclusive. The cycle is anchored at the period start: the first
// WorkDays days are working days, the next OffDays are off, then the cycle
// repeats.
func Dates(period dateutil.Period, pat Pattern) []time.Time {
	var dates []time.Time

	pos := 1
	for day := period.Start; !day.After(period.End); day = day.AddDate(0, 0, 1) {
		if pos <= pat.WorkDays {
			dates = append(dates, day)
		}

		pos++
		if pos > pat.Len() {
			pos = 1
		}
	}

	return dates
}

// Strings returns the working dates formatted in DateLayout
func Strings(period dateutil.Period, pat Pattern) []string {
	dates := Dates(period, pat)

	out := make([]string, 0, len(dates))
	for _, d := range dates {
		out = append(out, d.Format(DateLayout))
	}

	return out
}

// IsWorkDate reports whether date is a working day of the cycle anchored at
// start. Dates before the anchor are never working days. Consistent with
// Dates over any period beginning at start.
func IsWorkDate(start time.Time, pat Pattern, date time.Time) bool {
	offset := int(dateutil.StartOfDay(date).Sub(dateutil.StartOfDay(start)) / (24 * time.Hour))
	if offset < 0 {
		return false
	}

	return offset%pat.Len() < pat.WorkDays
}
