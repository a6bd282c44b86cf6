package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config represents application configuration
type Config struct {
	Log      LogConfig      `mapstructure:"log"`
	HTTP     HTTPConfig     `mapstructure:"http"`
	Holidays HolidaysConfig `mapstructure:"holidays"`
}

// LogConfig represents logging configuration
type LogConfig struct {
	File  string `mapstructure:"file"`  // empty = console logger
	Level string `mapstructure:"level"` // zap level name, default "info"
}

// HTTPConfig represents the API server configuration
type HTTPConfig struct {
	Addr         string `mapstructure:"addr"`
	ReadTimeout  string `mapstructure:"read_timeout"`
	WriteTimeout string `mapstructure:"write_timeout"`
	IdleTimeout  string `mapstructure:"idle_timeout"`
}

// HolidaysConfig selects the day-off calendar
type HolidaysConfig struct {
	Source string `mapstructure:"source"` // "weekends", "file" or "us-federal"
	File   string `mapstructure:"file"`   // holidays YAML, used for "file" source
}

// Load loads configuration from file
func Load(configPath string) (*Config, error) {
	v := viper.New()

	// Set config file
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.calutil")
		v.AddConfigPath("/etc/calutil")
	}

	// Read environment variables
	v.AutomaticEnv()

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Validate config
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &config, nil
}

// Default returns the configuration used when no config file is present
func Default() *Config {
	return &Config{
		Log:      LogConfig{Level: "info"},
		HTTP:     HTTPConfig{Addr: ":8080"},
		Holidays: HolidaysConfig{Source: "weekends"},
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	source := c.Holidays.Source
	if source == "" {
		source = "weekends" // Default
	}

	switch source {
	case "weekends", "us-federal":
	case "file":
		if c.Holidays.File == "" {
			return fmt.Errorf("holidays.file is required for file source")
		}
	default:
		return fmt.Errorf("holidays.source must be 'weekends', 'file' or 'us-federal', got '%s'", source)
	}

	return nil
}

// GetAddr returns the HTTP listen address
func (c *HTTPConfig) GetAddr() string {
	if c.Addr == "" {
		return ":8080"
	}
	return c.Addr
}

// GetReadTimeout returns the HTTP read timeout duration
func (c *HTTPConfig) GetReadTimeout() time.Duration {
	if c.ReadTimeout == "" {
		return 10 * time.Second
	}
	duration, err := time.ParseDuration(c.ReadTimeout)
	if err != nil {
		return 10 * time.Second
	}
	return duration
}

// GetWriteTimeout returns the HTTP write timeout duration
func (c *HTTPConfig) GetWriteTimeout() time.Duration {
	if c.WriteTimeout == "" {
		return 10 * time.Second
	}
	duration, err := time.ParseDuration(c.WriteTimeout)
	if err != nil {
		return 10 * time.Second
	}
	return duration
}

// GetIdleTimeout returns the HTTP idle timeout duration
func (c *HTTPConfig) GetIdleTimeout() time.Duration {
	if c.IdleTimeout == "" {
		return 60 * time.Second
	}
	duration, err := time.ParseDuration(c.IdleTimeout)
	if err != nil {
		return 60 * time.Second
	}
	return duration
}
