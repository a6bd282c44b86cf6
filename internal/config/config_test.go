package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad(t *testing.T) {
	content := `log:
  file: logs/calutil.log
  level: debug
http:
  addr: ":9090"
  read_timeout: 5s
holidays:
  source: file
  file: holidays.yaml
`
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write config fixture: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Log.File != "logs/calutil.log" {
		t.Errorf("Log.File = %q, want %q", cfg.Log.File, "logs/calutil.log")
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Log.Level = %q, want %q", cfg.Log.Level, "debug")
	}
	if cfg.HTTP.GetAddr() != ":9090" {
		t.Errorf("HTTP.GetAddr() = %q, want %q", cfg.HTTP.GetAddr(), ":9090")
	}
	if cfg.Holidays.Source != "file" {
		t.Errorf("Holidays.Source = %q, want %q", cfg.Holidays.Source, "file")
	}
	if cfg.Holidays.File != "holidays.yaml" {
		t.Errorf("Holidays.File = %q, want %q", cfg.Holidays.File, "holidays.yaml")
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err == nil {
		t.Error("Load() expected error for missing file, got nil")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *Config
		wantErr bool
	}{
		{
			name:    "default config is valid",
			cfg:     Default(),
			wantErr: false,
		},
		{
			name:    "empty source defaults to weekends",
			cfg:     &Config{},
			wantErr: false,
		},
		{
			name:    "us federal source",
			cfg:     &Config{Holidays: HolidaysConfig{Source: "us-federal"}},
			wantErr: false,
		},
		{
			name:    "file source requires a path",
			cfg:     &Config{Holidays: HolidaysConfig{Source: "file"}},
			wantErr: true,
		},
		{
			name:    "unknown source",
			cfg:     &Config{Holidays: HolidaysConfig{Source: "lunar"}},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestHTTPGetters(t *testing.T) {
	tests := []struct {
		name string
		cfg  HTTPConfig
		want time.Duration
	}{
		{"default read timeout", HTTPConfig{}, 10 * time.Second},
		{"custom read timeout", HTTPConfig{ReadTimeout: "5s"}, 5 * time.Second},
		{"invalid value falls back", HTTPConfig{ReadTimeout: "soon"}, 10 * time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.cfg.GetReadTimeout(); got != tt.want {
				t.Errorf("GetReadTimeout() = %v, want %v", got, tt.want)
			}
		})
	}

	empty := HTTPConfig{}
	if empty.GetAddr() != ":8080" {
		t.Errorf("GetAddr() = %q, want %q", empty.GetAddr(), ":8080")
	}
	if empty.GetWriteTimeout() != 10*time.Second {
		t.Errorf("GetWriteTimeout() = %v, want %v", empty.GetWriteTimeout(), 10*time.Second)
	}
	if empty.GetIdleTimeout() != 60*time.Second {
		t.Errorf("GetIdleTimeout() = %v, want %v", empty.GetIdleTimeout(), 60*time.Second)
	}
}
