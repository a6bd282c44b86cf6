package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/username/calendar-utils/internal/api"
	"github.com/username/calendar-utils/internal/config"
	"github.com/username/calendar-utils/internal/holidays"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	configPath string
	logger     *zap.Logger
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "calutil",
		Short: "Calendar utilities",
		Long:  "Date calculations, work schedules and day-off calendars from the command line",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Load config to get log file path
			cfg, err := config.Load(configPath)
			if err == nil && cfg.Log.File != "" {
				logger, err = initFileLogger(cfg.Log.File, cfg.Log.Level)
				if err != nil {
					initLogger() // Fallback to console
				}
			} else {
				initLogger() // Default console logger
			}
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "config.yaml", "Config file path")

	rootCmd.AddCommand(
		infoCmd(),
		timestampCmd(),
		nextFridayCmd(),
		friday13thCmd(),
		monthCmd(),
		periodCmd(),
		scheduleCmd(),
		workdaysCmd(),
		serveCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the calendar HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := loadConfigOrDefault()

			cal, err := buildCalendar(cfg)
			if err != nil {
				return err
			}

			server := api.NewServer(cfg.HTTP, cal, logger)

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			logger.Info("Starting API server",
				zap.String("addr", cfg.HTTP.GetAddr()),
				zap.String("holidays_source", cfg.Holidays.Source))

			if err := server.Serve(ctx); err != nil && !errors.Is(err, context.Canceled) {
				return fmt.Errorf("server failed: %w", err)
			}

			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			if err := server.Shutdown(shutdownCtx); err != nil {
				return fmt.Errorf("shutdown failed: %w", err)
			}

			logger.Info("Server stopped")
			return nil
		},
	}

	return cmd
}

// buildCalendar constructs the day-off calendar selected by the config
func buildCalendar(cfg *config.Config) (holidays.Calendar, error) {
	source := cfg.Holidays.Source
	if source == "" {
		source = "weekends" // Default
	}

	switch source {
	case "weekends":
		return holidays.NewWeekendCalendar(), nil

	case "us-federal":
		logger.Info("Using US federal holiday calendar")
		return holidays.NewFederalCalendar(), nil

	case "file":
		logger.Info("Using holidays file", zap.String("file", cfg.Holidays.File))
		fileCal := holidays.NewFileCalendar(cfg.Holidays.File, logger)
		compositeCal := holidays.NewCompositeCalendar(fileCal, holidays.NewWeekendCalendar(), logger)

		// Load holidays file
		if err := compositeCal.LoadPrimary(); err != nil {
			logger.Warn("Failed to load holidays file, continuing with weekends only",
				zap.Error(err))
		}

		return compositeCal, nil

	default:
		return nil, fmt.Errorf("unknown holidays source: %s", source)
	}
}

func loadConfigOrDefault() *config.Config {
	cfg, err := config.Load(configPath)
	if err != nil {
		logger.Debug("Config not loaded, using defaults", zap.Error(err))
		return config.Default()
	}

	return cfg
}

func initLogger() {
	config := zap.NewProductionConfig()
	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	var err error
	logger, err = config.Build()
	if err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}
}

func initFileLogger(logFile string, level string) (*zap.Logger, error) {
	// Setup lumberjack for log rotation
	logWriter := &lumberjack.Logger{
		Filename:   logFile,
		MaxSize:    100,  // MB
		MaxBackups: 3,    // Keep max 3 old log files
		MaxAge:     28,   // days
		Compress:   true, // Compress old logs with gzip
	}

	// Setup encoder
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "timestamp"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	// Parse log level
	var zapLevel zapcore.Level
	if err := zapLevel.UnmarshalText([]byte(level)); err != nil {
		zapLevel = zapcore.InfoLevel
	}

	// Create core with lumberjack writer
	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderConfig),
		zapcore.AddSync(logWriter),
		zapLevel,
	)

	return zap.New(core), nil
}
