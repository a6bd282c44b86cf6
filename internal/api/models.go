package api

import (
	"encoding/json"
	"time"

	"github.com/username/calendar-utils/pkg/dateutil"
	"github.com/username/calendar-utils/pkg/schedule"
)

// Date is a custom date type for JSON payloads. Clients send schedule
// bounds either as DD-MM-YYYY or as ISO dates, so the standard time.Time
// unmarshaling is too narrow.
type Date struct {
	time.Time
}

// UnmarshalJSON implements json.Unmarshaler for Date
func (d *Date) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}

	parsed, err := dateutil.ParseDate(s)
	if err != nil {
		return err
	}

	d.Time = parsed
	return nil
}

// MarshalJSON implements json.Marshaler for Date
func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Time.Format(schedule.DateLayout))
}

// scheduleRequest is the POST /v1/schedule payload
type scheduleRequest struct {
	Start    Date `json:"start"`
	End      Date `json:"end"`
	WorkDays int  `json:"workDays"`
	OffDays  int  `json:"offDays"`
}

// scheduleResponse lists the working dates in DD-MM-YYYY
type scheduleResponse struct {
	Dates []string `json:"dates"`
}

// monthDay is one entry of the month summary
type monthDay struct {
	Date string `json:"date"`
	Kind string `json:"kind"`
	Name string `json:"name,omitempty"`
}

// monthResponse is the /v1/month payload
type monthResponse struct {
	Year     int        `json:"year"`
	Month    int        `json:"month"`
	Days     int        `json:"days"`
	WorkDays int        `json:"workDays"`
	Weekends int        `json:"weekends"`
	Holidays int        `json:"holidays"`
	Calendar []monthDay `json:"calendar"`
}
