package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/username/calendar-utils/internal/config"
	"github.com/username/calendar-utils/internal/holidays"
)

// Server exposes the calendar operations over HTTP
type Server struct {
	http     *fiber.App
	addr     string
	calendar holidays.Calendar
	logger   *zap.Logger
}

// NewServer creates the API server with all routes installed
func NewServer(cfg config.HTTPConfig, cal holidays.Calendar, logger *zap.Logger) *Server {
	fiberCfg := fiber.Config{
		ReadTimeout:           cfg.GetReadTimeout(),
		WriteTimeout:          cfg.GetWriteTimeout(),
		IdleTimeout:           cfg.GetIdleTimeout(),
		DisableStartupMessage: true,
		RequestMethods:        []string{fiber.MethodGet, fiber.MethodPost},
	}

	fiberCfg.ErrorHandler = func(c *fiber.Ctx, err error) error {
		logger.Warn("Failed to handle http request",
			zap.String("path", c.Path()),
			zap.Error(err))
		return c.Status(http.StatusInternalServerError).Send(nil)
	}

	s := &Server{
		http:     fiber.New(fiberCfg),
		addr:     cfg.GetAddr(),
		calendar: cal,
		logger:   logger,
	}

	s.setupRoutes()

	return s
}

func (s *Server) setupRoutes() {
	s.http.Get("/healthz", s.handleHealth)

	v1 := s.http.Group("/v1")
	v1.Get("/timestamp", s.handleTimestamp)
	v1.Get("/time-of-day", s.handleTimeOfDay)
	v1.Get("/day-name", s.handleDayName)
	v1.Get("/next-friday", s.handleNextFriday)
	v1.Get("/friday-13th", s.handleFriday13th)
	v1.Get("/days-in-month", s.handleDaysInMonth)
	v1.Get("/weekends-in-month", s.handleWeekendsInMonth)
	v1.Get("/week-number", s.handleWeekNumber)
	v1.Get("/quarter", s.handleQuarter)
	v1.Get("/leap-year", s.handleLeapYear)
	v1.Get("/format", s.handleFormat)
	v1.Get("/period/days", s.handlePeriodDays)
	v1.Get("/period/contains", s.handlePeriodContains)
	v1.Get("/month", s.handleMonth)
	v1.Get("/workdays", s.handleWorkdays)
	v1.Post("/schedule", s.handleSchedule)
}

// Serve blocks until the listener fails or the context is done
func (s *Server) Serve(ctx context.Context) error {
	errCh := make(chan error)
	go func() { errCh <- s.http.Listen(s.addr) }()

	s.logger.Info("API server listening", zap.String("addr", s.addr))

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Shutdown stops the server gracefully
func (s *Server) Shutdown(ctx context.Context) error {
	if err := s.http.ShutdownWithContext(ctx); err != nil {
		return fmt.Errorf("failed to shutdown http server: %w", err)
	}

	return nil
}
