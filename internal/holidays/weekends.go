package holidays

import (
	"time"

	"github.com/username/calendar-utils/pkg/dateutil"
)

// WeekendCalendar treats Saturdays and Sundays as the only days off
type WeekendCalendar struct{}

// NewWeekendCalendar creates a new WeekendCalendar instance
func NewWeekendCalendar() *WeekendCalendar {
	return &WeekendCalendar{}
}

// IsDayOff checks if the given date is a weekend
func (wc *WeekendCalendar) IsDayOff(date time.Time) (bool, error) {
	return dateutil.IsWeekend(date), nil
}

// GetDayInfo returns detailed info for a specific day
func (wc *WeekendCalendar) GetDayInfo(date time.Time) (*DayInfo, error) {
	kind := DayWork
	if dateutil.IsWeekend(date) {
		kind = DayWeekend
	}

	return &DayInfo{Date: dateutil.StartOfDay(date), Kind: kind}, nil
}

// GetMonthInfo returns calendar info for the entire month
func (wc *WeekendCalendar) GetMonthInfo(year int, month time.Month) (*MonthInfo, error) {
	return buildMonthInfo(wc, year, month)
}
