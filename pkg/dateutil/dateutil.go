package dateutil

import (
	"fmt"
	"time"
)

// Period is a date range; both bounds are inclusive.
// Start <= End is assumed and not enforced.
type Period struct {
	Start time.Time
	End   time.Time
}

// StartOfDay returns the start of the day (00:00:00) for the given date
func StartOfDay(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
}

// IsWeekend returns true if the date is Saturday or Sunday
func IsWeekend(date time.Time) bool {
	weekday := date.Weekday()
	return weekday == time.Saturday || weekday == time.Sunday
}

// ToTimestamp returns the number of milliseconds elapsed since the Unix epoch
func ToTimestamp(date time.Time) int64 {
	return date.UnixMilli()
}

// FromTimestamp returns the UTC instant for the given Unix-epoch milliseconds
func FromTimestamp(ms int64) time.Time {
	return time.UnixMilli(ms).UTC()
}

// TimeOfDay returns the wall-clock time of the date as "hh:mm:ss"
func TimeOfDay(date time.Time) string {
	return date.Format("15:04:05")
}

// DayName returns the full English weekday name for the given date
func DayName(date time.Time) string {
	return date.Weekday().String()
}

// NextFriday returns the earliest Friday strictly after the given date,
// preserving its clock time
func NextFriday(date time.Time) time.Time {
	next := date.AddDate(0, 0, 1)
	for next.Weekday() != time.Friday {
		next = next.AddDate(0, 0, 1)
	}
	return next
}

// DaysInMonth returns the number of days in the given month.
// Out-of-range months normalize rather than error, so month 13 of one year
// is January of the next.
func DaysInMonth(month, year int) int {
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// DaysInPeriod returns the number of days the period spans, counting both
// endpoints. The difference is taken between the two instants, so partial
// days truncate.
func DaysInPeriod(p Period) int {
	days := p.End.Sub(p.Start) / (24 * time.Hour)
	return int(days) + 1
}

// InPeriod reports whether the date falls within the period at day
// granularity: clock time is ignored on the date and on both bounds.
func InPeriod(date time.Time, p Period) bool {
	day := StartOfDay(date)
	return !day.Before(StartOfDay(p.Start)) && !day.After(StartOfDay(p.End))
}

// FormatDateTime renders the date in UTC as "M/D/YYYY, h:mm:ss AM/PM".
// Midnight is "12:00:00 AM" and noon is "12:00:00 PM".
func FormatDateTime(date time.Time) string {
	return date.UTC().Format("1/2/2006, 3:04:05 PM")
}

// WeekendsInMonth returns the count of Saturdays and Sundays in the month
func WeekendsInMonth(month, year int) int {
	count := 0
	days := DaysInMonth(month, year)
	for day := 1; day <= days; day++ {
		if IsWeekend(time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)) {
			count++
		}
	}
	return count
}

// WeekNumber returns the week of the year the date falls in, counting
// seven-day blocks from January 1, so Jan 1-7 is week 1 regardless of
// weekday. This is not ISO 8601 week numbering.
func WeekNumber(date time.Time) int {
	return (date.YearDay() + 6) / 7
}

// NextFridayThe13th returns the earliest day on or after the given date
// that is both a Friday and the 13th of its month, scanning up to 366 days
// ahead. The second return is false when the window holds none.
func NextFridayThe13th(date time.Time) (time.Time, bool) {
	day := date
	for i := 0; i <= 366; i++ {
		if day.Weekday() == time.Friday && day.Day() == 13 {
			return day, true
		}
		day = day.AddDate(0, 0, 1)
	}
	return time.Time{}, false
}

// Quarter returns the quarter of the year (1-4) the date falls in
func Quarter(date time.Time) int {
	return (int(date.Month())-1)/3 + 1
}

// IsLeapYear reports whether the date's year is divisible by four. Century
// years are not special-cased, so 1900 and 2100 count as leap years.
func IsLeapYear(date time.Time) bool {
	return date.Year()%4 == 0
}

// ParseDate parses date string in various formats
func ParseDate(dateStr string) (time.Time, error) {
	formats := []string{
		time.RFC3339,
		"2006-01-02T15:04:05",
		"2006-01-02 15:04:05",
		"2006-01-02",
		"02-01-2006",
		"02.01.2006",
	}

	for _, format := range formats {
		if t, err := time.Parse(format, dateStr); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("unsupported date format: %q", dateStr)
}

// ParsePeriod parses two date strings into a Period
func ParsePeriod(start, end string) (Period, error) {
	from, err := ParseDate(start)
	if err != nil {
		return Period{}, fmt.Errorf("invalid period start: %w", err)
	}

	to, err := ParseDate(end)
	if err != nil {
		return Period{}, fmt.Errorf("invalid period end: %w", err)
	}

	return Period{Start: from, End: to}, nil
}

// Today returns today's date (start of day)
func Today() time.Time {
	return StartOfDay(time.Now())
}
