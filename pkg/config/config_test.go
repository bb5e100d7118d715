package config

import (
	"testing"
	"time"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("GOOGLE_SERVICE_ACCOUNT_CREDENTIALS", "")
	t.Setenv("GOOGLE_SHEET_ID", "")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.Port != "8080" {
		t.Fatalf("Port = %q, want 8080", cfg.Port)
	}
	if cfg.DefaultSheetName != "Sheet1" {
		t.Fatalf("DefaultSheetName = %q, want Sheet1", cfg.DefaultSheetName)
	}
	if len(cfg.LeadModels) != 2 || cfg.LeadModels[0] != "FREE" || cfg.LeadModels[1] != "DREAM" {
		t.Fatalf("LeadModels = %v, want [FREE DREAM]", cfg.LeadModels)
	}
	if cfg.UpstreamTimeout != 15*time.Second {
		t.Fatalf("UpstreamTimeout = %v, want 15s", cfg.UpstreamTimeout)
	}
	if cfg.WriteTimeout != 30*time.Second {
		t.Fatalf("WriteTimeout = %v, want 30s", cfg.WriteTimeout)
	}
	if len(cfg.TrustedProxies) != 0 {
		t.Fatalf("TrustedProxies = %v, want none", cfg.TrustedProxies)
	}
	if cfg.HasSheetsConfig() {
		t.Fatal("HasSheetsConfig() = true with empty environment")
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("LEAD_MODELS", " FREE , PRO ,, ")
	t.Setenv("ALLOWED_ORIGINS", "https://example.com")
	t.Setenv("GOOGLE_SERVICE_ACCOUNT_CREDENTIALS", `{"type":"service_account"}`)
	t.Setenv("GOOGLE_SHEET_ID", "sheet-123")
	t.Setenv("UPSTREAM_TIMEOUT", "2s")
	t.Setenv("TRUSTED_PROXIES", "10.0.0.0/8, 127.0.0.1")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if len(cfg.LeadModels) != 2 || cfg.LeadModels[1] != "PRO" {
		t.Fatalf("LeadModels = %v, want [FREE PRO]", cfg.LeadModels)
	}
	if len(cfg.AllowedOrigins) != 1 {
		t.Fatalf("AllowedOrigins = %v", cfg.AllowedOrigins)
	}
	if cfg.UpstreamTimeout != 2*time.Second {
		t.Fatalf("UpstreamTimeout = %v, want 2s", cfg.UpstreamTimeout)
	}
	if len(cfg.TrustedProxies) != 2 || cfg.TrustedProxies[1] != "127.0.0.1" {
		t.Fatalf("TrustedProxies = %v", cfg.TrustedProxies)
	}
	if !cfg.HasSheetsConfig() {
		t.Fatal("HasSheetsConfig() = false, want true")
	}
}

func TestLoadConfigUpstreamFitsWriteTimeout(t *testing.T) {
	tests := []struct {
		name     string
		upstream string
		write    string
		want     time.Duration
	}{
		{"below limit kept", "5s", "30s", 5 * time.Second},
		{"equal to write clamped", "15s", "15s", 10 * time.Second},
		{"above write clamped", "60s", "30s", 20 * time.Second},
		{"disabled bounded by write", "0s", "30s", 20 * time.Second},
		{"no write timeout", "45s", "0s", 45 * time.Second},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("UPSTREAM_TIMEOUT", tt.upstream)
			t.Setenv("WRITE_TIMEOUT", tt.write)

			cfg, err := LoadConfig()
			if err != nil {
				t.Fatalf("LoadConfig() error = %v", err)
			}
			if cfg.UpstreamTimeout != tt.want {
				t.Fatalf("UpstreamTimeout = %v, want %v", cfg.UpstreamTimeout, tt.want)
			}
			if cfg.WriteTimeout > 0 && cfg.UpstreamTimeout >= cfg.WriteTimeout {
				t.Fatalf("UpstreamTimeout %v not below WriteTimeout %v", cfg.UpstreamTimeout, cfg.WriteTimeout)
			}
		})
	}
}

func TestLoadConfigInvalidDuration(t *testing.T) {
	t.Setenv("UPSTREAM_TIMEOUT", "soon")

	if _, err := LoadConfig(); err == nil {
		t.Fatal("LoadConfig() error = nil, want parse error")
	}
}
