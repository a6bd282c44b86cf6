package api

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/username/calendar-utils/internal/holidays"
	"github.com/username/calendar-utils/pkg/dateutil"
	"github.com/username/calendar-utils/pkg/schedule"
)

func (s *Server) handleHealth(c *fiber.Ctx) error {
	return c.JSON(map[string]string{"status": "OK"})
}

func (s *Server) handleTimestamp(c *fiber.Ctx) error {
	date, err := s.dateQuery(c)
	if err != nil {
		return s.badRequest(c, err)
	}

	return c.JSON(fiber.Map{
		"date":      c.Query("date"),
		"timestamp": dateutil.ToTimestamp(date),
	})
}

func (s *Server) handleTimeOfDay(c *fiber.Ctx) error {
	date, err := s.dateQuery(c)
	if err != nil {
		return s.badRequest(c, err)
	}

	return c.JSON(fiber.Map{
		"date":      c.Query("date"),
		"timeOfDay": dateutil.TimeOfDay(date),
	})
}

func (s *Server) handleDayName(c *fiber.Ctx) error {
	date, err := s.dateQuery(c)
	if err != nil {
		return s.badRequest(c, err)
	}

	return c.JSON(fiber.Map{
		"date":    c.Query("date"),
		"dayName": dateutil.DayName(date),
	})
}

func (s *Server) handleNextFriday(c *fiber.Ctx) error {
	date, err := s.dateQuery(c)
	if err != nil {
		return s.badRequest(c, err)
	}

	return c.JSON(fiber.Map{
		"date":       c.Query("date"),
		"nextFriday": dateutil.NextFriday(date).Format("2006-01-02"),
	})
}

func (s *Server) handleFriday13th(c *fiber.Ctx) error {
	date, err := s.dateQuery(c)
	if err != nil {
		return s.badRequest(c, err)
	}

	found, ok := dateutil.NextFridayThe13th(date)
	if !ok {
		return s.sendError(c, http.StatusNotFound, "no friday the 13th within a year")
	}

	return c.JSON(fiber.Map{
		"date":          c.Query("date"),
		"fridayThe13th": found.Format("2006-01-02"),
	})
}

func (s *Server) handleDaysInMonth(c *fiber.Ctx) error {
	year, month, err := s.monthQuery(c)
	if err != nil {
		return s.badRequest(c, err)
	}

	return c.JSON(fiber.Map{
		"year":  year,
		"month": month,
		"days":  dateutil.DaysInMonth(month, year),
	})
}

func (s *Server) handleWeekendsInMonth(c *fiber.Ctx) error {
	year, month, err := s.monthQuery(c)
	if err != nil {
		return s.badRequest(c, err)
	}

	return c.JSON(fiber.Map{
		"year":     year,
		"month":    month,
		"weekends": dateutil.WeekendsInMonth(month, year),
	})
}

func (s *Server) handleWeekNumber(c *fiber.Ctx) error {
	date, err := s.dateQuery(c)
	if err != nil {
		return s.badRequest(c, err)
	}

	return c.JSON(fiber.Map{
		"date":       c.Query("date"),
		"weekNumber": dateutil.WeekNumber(date),
	})
}

func (s *Server) handleQuarter(c *fiber.Ctx) error {
	date, err := s.dateQuery(c)
	if err != nil {
		return s.badRequest(c, err)
	}

	return c.JSON(fiber.Map{
		"date":    c.Query("date"),
		"quarter": dateutil.Quarter(date),
	})
}

func (s *Server) handleLeapYear(c *fiber.Ctx) error {
	date, err := s.dateQuery(c)
	if err != nil {
		return s.badRequest(c, err)
	}

	return c.JSON(fiber.Map{
		"date":     c.Query("date"),
		"leapYear": dateutil.IsLeapYear(date),
	})
}

func (s *Server) handleFormat(c *fiber.Ctx) error {
	date, err := s.dateQuery(c)
	if err != nil {
		return s.badRequest(c, err)
	}

	return c.JSON(fiber.Map{
		"date":      c.Query("date"),
		"formatted": dateutil.FormatDateTime(date),
	})
}

func (s *Server) handlePeriodDays(c *fiber.Ctx) error {
	period, err := s.periodQuery(c)
	if err != nil {
		return s.badRequest(c, err)
	}

	return c.JSON(fiber.Map{
		"start": c.Query("start"),
		"end":   c.Query("end"),
		"days":  dateutil.DaysInPeriod(period),
	})
}

func (s *Server) handlePeriodContains(c *fiber.Ctx) error {
	period, err := s.periodQuery(c)
	if err != nil {
		return s.badRequest(c, err)
	}

	date, err := s.dateQuery(c)
	if err != nil {
		return s.badRequest(c, err)
	}

	return c.JSON(fiber.Map{
		"date":     c.Query("date"),
		"start":    c.Query("start"),
		"end":      c.Query("end"),
		"contains": dateutil.InPeriod(date, period),
	})
}

func (s *Server) handleMonth(c *fiber.Ctx) error {
	year, month, err := s.monthQuery(c)
	if err != nil {
		return s.badRequest(c, err)
	}

	if month < 1 || month > 12 {
		return s.sendError(c, http.StatusBadRequest, "month must be between 1 and 12")
	}

	info, err := s.calendar.GetMonthInfo(year, time.Month(month))
	if err != nil {
		return fmt.Errorf("failed to get month info: %w", err)
	}

	resp := monthResponse{
		Year:     info.Year,
		Month:    int(info.Month),
		Days:     len(info.Days),
		WorkDays: info.WorkDays,
		Weekends: info.Weekends,
		Holidays: info.Holidays,
		Calendar: make([]monthDay, 0, len(info.Days)),
	}

	for _, day := range info.Days {
		resp.Calendar = append(resp.Calendar, monthDay{
			Date: day.Date.Format("2006-01-02"),
			Kind: kindLabel(day.Kind),
			Name: day.Name,
		})
	}

	return c.JSON(resp)
}

func (s *Server) handleWorkdays(c *fiber.Ctx) error {
	period, err := s.periodQuery(c)
	if err != nil {
		return s.badRequest(c, err)
	}

	count, err := holidays.WorkdaysInPeriod(s.calendar, period)
	if err != nil {
		return fmt.Errorf("failed to count workdays: %w", err)
	}

	return c.JSON(fiber.Map{
		"start":    c.Query("start"),
		"end":      c.Query("end"),
		"workdays": count,
	})
}

func (s *Server) handleSchedule(c *fiber.Ctx) error {
	var req scheduleRequest
	if err := c.BodyParser(&req); err != nil {
		s.logger.Warn("Failed to parse schedule payload", zap.Error(err))
		return s.sendError(c, http.StatusBadRequest, "bad json")
	}

	if req.Start.IsZero() || req.End.IsZero() {
		return s.sendError(c, http.StatusBadRequest, "start and end are required")
	}

	pattern := schedule.Pattern{WorkDays: req.WorkDays, OffDays: req.OffDays}
	if err := pattern.Validate(); err != nil {
		return s.sendError(c, http.StatusBadRequest, err.Error())
	}

	period := dateutil.Period{Start: req.Start.Time, End: req.End.Time}

	return c.JSON(scheduleResponse{Dates: schedule.Strings(period, pattern)})
}

func (s *Server) badRequest(c *fiber.Ctx, err error) error {
	s.logger.Warn("Bad request",
		zap.String("path", c.Path()),
		zap.Error(err))
	return s.sendError(c, http.StatusBadRequest, err.Error())
}

func (s *Server) sendError(c *fiber.Ctx, status int, msg string) error {
	return c.Status(status).JSON(map[string]string{"status": "ERROR", "message": msg})
}

func (s *Server) dateQuery(c *fiber.Ctx) (time.Time, error) {
	value := c.Query("date", "")
	if value == "" {
		return time.Time{}, fmt.Errorf("missing required parameter \"date\"")
	}

	date, err := dateutil.ParseDate(value)
	if err != nil {
		return time.Time{}, err
	}

	return date, nil
}

func (s *Server) periodQuery(c *fiber.Ctx) (dateutil.Period, error) {
	start := c.Query("start", "")
	end := c.Query("end", "")
	if start == "" || end == "" {
		return dateutil.Period{}, fmt.Errorf("missing required parameters \"start\" and \"end\"")
	}

	return dateutil.ParsePeriod(start, end)
}

func (s *Server) monthQuery(c *fiber.Ctx) (year, month int, err error) {
	year, err = strconv.Atoi(c.Query("year", ""))
	if err != nil {
		return 0, 0, fmt.Errorf("malformed \"year\" parameter")
	}

	month, err = strconv.Atoi(c.Query("month", ""))
	if err != nil {
		return 0, 0, fmt.Errorf("malformed \"month\" parameter")
	}

	return year, month, nil
}

func kindLabel(kind holidays.DayKind) string {
	switch kind {
	case holidays.DayWeekend:
		return "weekend"
	case holidays.DayHoliday:
		return "holiday"
	default:
		return "work"
	}
}
