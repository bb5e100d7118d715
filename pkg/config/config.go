package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds all application configuration values
type Config struct {
	Port    string `env:"PORT" envDefault:"8080"`
	GinMode string `env:"GIN_MODE" envDefault:"release"`

	// Google Sheets sink. Both are checked per request, never at startup.
	GoogleCredentials    string `env:"GOOGLE_SERVICE_ACCOUNT_CREDENTIALS"`
	GoogleSheetID        string `env:"GOOGLE_SHEET_ID"`
	DefaultSheetName     string `env:"DEFAULT_SHEET_NAME" envDefault:"Sheet1"`
	SheetDiscoveryStrict bool   `env:"SHEET_DISCOVERY_STRICT" envDefault:"false"`

	LeadModels      []string      `env:"LEAD_MODELS" envDefault:"FREE,DREAM" envSeparator:","`
	UpstreamTimeout time.Duration `env:"UPSTREAM_TIMEOUT" envDefault:"15s"`

	AllowedOrigins      []string `env:"ALLOWED_ORIGINS" envSeparator:","`
	TrustedProxies      []string `env:"TRUSTED_PROXIES" envSeparator:","`
	SubmitRatePerMinute int      `env:"SUBMIT_RATE_PER_MINUTE" envDefault:"10"`
	SubmitBurst         int      `env:"SUBMIT_BURST" envDefault:"5"`

	ReadTimeout  time.Duration `env:"READ_TIMEOUT" envDefault:"15s"`
	WriteTimeout time.Duration `env:"WRITE_TIMEOUT" envDefault:"30s"`
	IdleTimeout  time.Duration `env:"IDLE_TIMEOUT" envDefault:"60s"`

	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"`
}

// LoadConfig reads configuration from environment variables
func LoadConfig() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("error parsing environment: %w", err)
	}
	cfg.LeadModels = compact(cfg.LeadModels)
	cfg.AllowedOrigins = compact(cfg.AllowedOrigins)
	cfg.TrustedProxies = compact(cfg.TrustedProxies)
	if cfg.DefaultSheetName == "" {
		cfg.DefaultSheetName = "Sheet1"
	}
	cfg.UpstreamTimeout = upstreamBudget(cfg.UpstreamTimeout, cfg.WriteTimeout)
	return cfg, nil
}

// upstreamBudget keeps the upstream deadline at most two thirds of the write
// deadline so a timed-out submission can still be answered with a 500.
func upstreamBudget(upstream, write time.Duration) time.Duration {
	if write <= 0 {
		return upstream
	}
	limit := write * 2 / 3
	if upstream <= 0 || upstream > limit {
		return limit
	}
	return upstream
}

// HasSheetsConfig reports whether both the credentials and the sheet id are set.
func (c *Config) HasSheetsConfig() bool {
	return strings.TrimSpace(c.GoogleCredentials) != "" && strings.TrimSpace(c.GoogleSheetID) != ""
}

func compact(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
