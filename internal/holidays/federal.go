package holidays

import (
	"time"

	cal "github.com/rickar/cal/v2"
	"github.com/rickar/cal/v2/us"

	"github.com/username/calendar-utils/pkg/dateutil"
)

// FederalCalendar marks US federal holidays as days off in addition to
// weekends
type FederalCalendar struct {
	business *cal.BusinessCalendar
}

// NewFederalCalendar creates a calendar with the standard US federal
// holiday set
func NewFederalCalendar() *FederalCalendar {
	business := cal.NewBusinessCalendar()
	business.AddHoliday(
		us.NewYear,
		us.MlkDay,
		us.PresidentsDay,
		us.MemorialDay,
		us.Juneteenth,
		us.IndependenceDay,
		us.LaborDay,
		us.ColumbusDay,
		us.VeteransDay,
		us.ThanksgivingDay,
		us.ChristmasDay,
	)

	return &FederalCalendar{business: business}
}

// IsDayOff checks if the given date is a weekend or federal holiday
func (fc *FederalCalendar) IsDayOff(date time.Time) (bool, error) {
	if dateutil.IsWeekend(date) {
		return true, nil
	}

	actual, observed, _ := fc.business.IsHoliday(date)
	return actual || observed, nil
}

// GetDayInfo returns detailed info for a specific day. Holidays take
// precedence over weekends when both apply.
func (fc *FederalCalendar) GetDayInfo(date time.Time) (*DayInfo, error) {
	day := dateutil.StartOfDay(date)

	if actual, observed, holiday := fc.business.IsHoliday(date); actual || observed {
		name := ""
		if holiday != nil {
			name = holiday.Name
		}
		return &DayInfo{Date: day, Kind: DayHoliday, Name: name}, nil
	}

	if dateutil.IsWeekend(day) {
		return &DayInfo{Date: day, Kind: DayWeekend}, nil
	}

	return &DayInfo{Date: day, Kind: DayWork}, nil
}

// GetMonthInfo returns calendar info for the entire month
func (fc *FederalCalendar) GetMonthInfo(year int, month time.Month) (*MonthInfo, error) {
	return buildMonthInfo(fc, year, month)
}
