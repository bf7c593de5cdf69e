package config

import (
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"stolik/internal/database"
	"stolik/internal/timeline"
)

type Config struct {
	Server struct {
		Port            int `yaml:"port"`
		ReadTimeout     int `yaml:"read_timeout_seconds"`
		WriteTimeout    int `yaml:"write_timeout_seconds"`
		ShutdownTimeout int `yaml:"shutdown_timeout_seconds"`
		RateLimitRPS    int `yaml:"rate_limit_rps"`
		RateLimitBurst  int `yaml:"rate_limit_burst"`
	} `yaml:"server"`

	Database struct {
		Path string `yaml:"path"`
	} `yaml:"database"`

	Backup database.BackupConfig `yaml:"backup"`

	Redis struct {
		Address  string `yaml:"address"`
		Password string `yaml:"password"`
		DB       int    `yaml:"db"`
	} `yaml:"redis"`

	Monitoring struct {
		PrometheusEnabled bool `yaml:"prometheus_enabled"`
	} `yaml:"monitoring"`

	Timeline struct {
		SlotDurationMinutes int `yaml:"slot_duration_minutes"`
		BufferMinutes       int `yaml:"buffer_minutes"`
		RowSpanDivisor      int `yaml:"row_span_divisor"`
		DefaultStartHour    int `yaml:"default_start_hour"`
		DefaultEndHour      int `yaml:"default_end_hour"`
		CacheTTLSeconds     int `yaml:"cache_ttl_seconds"`
	} `yaml:"timeline"`

	Sheets struct {
		Enabled         bool   `yaml:"enabled"`
		CredentialsFile string `yaml:"credentials_file"`
		SpreadsheetID   string `yaml:"spreadsheet_id"`
	} `yaml:"sheets"`
}

func Load(path string) (*Config, error) {
	if path == "" {
		path = "configs/config.yaml"
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	// Support ${ENV_VAR} placeholders in YAML config.
	data = []byte(os.ExpandEnv(string(data)))

	var cfg Config
	if err = yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Server.ReadTimeout <= 0 {
		cfg.Server.ReadTimeout = 10
	}
	if cfg.Server.WriteTimeout <= 0 {
		cfg.Server.WriteTimeout = 20
	}
	if cfg.Server.ShutdownTimeout <= 0 {
		cfg.Server.ShutdownTimeout = 10
	}
	if cfg.Server.RateLimitRPS <= 0 {
		cfg.Server.RateLimitRPS = 50
	}
	if cfg.Server.RateLimitBurst <= 0 {
		cfg.Server.RateLimitBurst = 100
	}

	if cfg.Database.Path == "" {
		cfg.Database.Path = "data/stolik.db"
	}
	if err = os.MkdirAll(filepath.Dir(cfg.Database.Path), 0o755); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Layout returns the chart constants, falling back to the production
// defaults for anything unset.
func (c *Config) Layout() timeline.Layout {
	l := timeline.DefaultLayout
	if c.Timeline.SlotDurationMinutes > 0 {
		l.SlotDuration = c.Timeline.SlotDurationMinutes
	}
	if c.Timeline.BufferMinutes > 0 {
		l.Buffer = c.Timeline.BufferMinutes
	}
	if c.Timeline.RowSpanDivisor > 0 {
		l.RowSpanDivisor = c.Timeline.RowSpanDivisor
	}
	if c.Timeline.DefaultStartHour > 0 {
		l.DefaultStart = c.Timeline.DefaultStartHour
	}
	if c.Timeline.DefaultEndHour > 0 {
		l.DefaultEnd = c.Timeline.DefaultEndHour
	}
	return l
}

// CacheTTL returns how long computed layouts stay cached; zero disables caching.
func (c *Config) CacheTTL() time.Duration {
	if c.Timeline.CacheTTLSeconds <= 0 {
		return 0
	}
	return time.Duration(c.Timeline.CacheTTLSeconds) * time.Second
}
