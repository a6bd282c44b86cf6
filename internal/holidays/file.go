package holidays

import (
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/username/calendar-utils/pkg/dateutil"
)

// holidayEntry is a single record of the holidays file
type holidayEntry struct {
	Date string `yaml:"date"`
	Name string `yaml:"name"`
}

type holidayFile struct {
	Holidays []holidayEntry `yaml:"holidays"`
}

// FileCalendar implements Calendar using a local YAML file listing
// holidays. Weekends are implicit. Queries for years the file does not
// cover return an error, which lets a composite fall back.
type FileCalendar struct {
	filePath string
	logger   *zap.Logger
	names    map[string]string // key: "YYYY-MM-DD"
	years    map[int]bool
}

// NewFileCalendar creates a new FileCalendar instance
func NewFileCalendar(filePath string, logger *zap.Logger) *FileCalendar {
	return &FileCalendar{
		filePath: filePath,
		logger:   logger,
		names:    make(map[string]string),
		years:    make(map[int]bool),
	}
}

// Load loads holiday data from file
func (fc *FileCalendar) Load() error {
	raw, err := os.ReadFile(fc.filePath)
	if err != nil {
		return fmt.Errorf("failed to read holidays file: %w", err)
	}

	var parsed holidayFile
	if err := yaml.Unmarshal(raw, &parsed); err != nil {
		return fmt.Errorf("failed to parse holidays file: %w", err)
	}

	for _, entry := range parsed.Holidays {
		date, err := time.Parse("2006-01-02", entry.Date)
		if err != nil {
			fc.logger.Warn("Failed to parse holiday date",
				zap.String("date", entry.Date),
				zap.Error(err))
			continue
		}

		fc.names[entry.Date] = entry.Name
		fc.years[date.Year()] = true
	}

	fc.logger.Info("Holidays file loaded",
		zap.String("file", fc.filePath),
		zap.Int("holidays", len(fc.names)),
		zap.Int("years", len(fc.years)))

	return nil
}

// IsDayOff checks if the given date is a weekend or listed holiday
func (fc *FileCalendar) IsDayOff(date time.Time) (bool, error) {
	dayInfo, err := fc.GetDayInfo(date)
	if err != nil {
		return false, err
	}

	return dayInfo.Kind != DayWork, nil
}

// GetDayInfo returns detailed info for a specific day
func (fc *FileCalendar) GetDayInfo(date time.Time) (*DayInfo, error) {
	if !fc.years[date.Year()] {
		return nil, fmt.Errorf("year not covered by holidays file: %d", date.Year())
	}

	day := dateutil.StartOfDay(date)

	if name, ok := fc.names[day.Format("2006-01-02")]; ok {
		return &DayInfo{Date: day, Kind: DayHoliday, Name: name}, nil
	}

	if dateutil.IsWeekend(day) {
		return &DayInfo{Date: day, Kind: DayWeekend}, nil
	}

	return &DayInfo{Date: day, Kind: DayWork}, nil
}

// GetMonthInfo returns calendar info for the entire month
func (fc *FileCalendar) GetMonthInfo(year int, month time.Month) (*MonthInfo, error) {
	if !fc.years[year] {
		return nil, fmt.Errorf("year not covered by holidays file: %d", year)
	}

	return buildMonthInfo(fc, year, month)
}
