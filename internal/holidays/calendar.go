package holidays

import (
	"time"

	"github.com/username/calendar-utils/pkg/dateutil"
)

// DayKind represents the classification of a day
type DayKind int

const (
	DayWork DayKind = iota + 1
	DayWeekend
	DayHoliday
)

// DayInfo represents information about a specific day
type DayInfo struct {
	Date time.Time
	Kind DayKind
	Name string // holiday name, empty otherwise
}

// MonthInfo represents calendar information for a month
type MonthInfo struct {
	Year     int
	Month    time.Month
	WorkDays int
	Weekends int
	Holidays int
	Days     []DayInfo
}

// Calendar interface for day-off lookups
type Calendar interface {
	// IsDayOff checks if the given date is a weekend or holiday
	IsDayOff(date time.Time) (bool, error)

	// GetMonthInfo returns calendar info for the entire month
	GetMonthInfo(year int, month time.Month) (*MonthInfo, error)

	// GetDayInfo returns detailed info for a specific day
	GetDayInfo(date time.Time) (*DayInfo, error)
}

// buildMonthInfo walks every day of the month through the calendar's
// GetDayInfo and aggregates the counts.
func buildMonthInfo(c Calendar, year int, month time.Month) (*MonthInfo, error) {
	daysInMonth := time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()

	info := &MonthInfo{
		Year:  year,
		Month: month,
		Days:  make([]DayInfo, 0, daysInMonth),
	}

	for day := 1; day <= daysInMonth; day++ {
		dayInfo, err := c.GetDayInfo(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
		if err != nil {
			return nil, err
		}

		info.Days = append(info.Days, *dayInfo)

		switch dayInfo.Kind {
		case DayWork:
			info.WorkDays++
		case DayWeekend:
			info.Weekends++
		case DayHoliday:
			info.Holidays++
		}
	}

	return info, nil
}

// WorkdaysInPeriod counts the days in the period that the calendar does not
// mark as days off. Both bounds are inclusive.
func WorkdaysInPeriod(c Calendar, p dateutil.Period) (int, error) {
	count := 0

	for day := dateutil.StartOfDay(p.Start); !day.After(p.End); day = day.AddDate(0, 0, 1) {
		off, err := c.IsDayOff(day)
		if err != nil {
			return 0, err
		}

		if !off {
			count++
		}
	}

	return count, nil
}
