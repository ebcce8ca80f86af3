package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.Port != "3000" {
		t.Errorf("Port = %s, want 3000", cfg.Port)
	}
	if cfg.APIBaseURL != "http://localhost:8080/api" {
		t.Errorf("APIBaseURL = %s", cfg.APIBaseURL)
	}
	if cfg.AdminPassword != "admin123" {
		t.Errorf("AdminPassword = %s, want admin123", cfg.AdminPassword)
	}
	if cfg.WhatsAppCountryCode != "55" {
		t.Errorf("WhatsAppCountryCode = %s, want 55", cfg.WhatsAppCountryCode)
	}
	if cfg.SessionTTL != 12*time.Hour {
		t.Errorf("SessionTTL = %v, want 12h", cfg.SessionTTL)
	}
	if cfg.CORSAllowedOrigins != nil {
		t.Errorf("CORSAllowedOrigins = %v, want nil", cfg.CORSAllowedOrigins)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("API_BASE_URL", "https://api.example.com/api")
	t.Setenv("API_TIMEOUT", "5s")
	t.Setenv("REDIS_TLS", "true")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example.com, https://b.example.com")

	cfg := Load()

	if cfg.Port != "9000" {
		t.Errorf("Port = %s, want 9000", cfg.Port)
	}
	if cfg.APIBaseURL != "https://api.example.com/api" {
		t.Errorf("APIBaseURL = %s", cfg.APIBaseURL)
	}
	if cfg.APITimeout != 5*time.Second {
		t.Errorf("APITimeout = %v, want 5s", cfg.APITimeout)
	}
	if !cfg.RedisTLS {
		t.Error("RedisTLS should be true")
	}
	if len(cfg.CORSAllowedOrigins) != 2 || cfg.CORSAllowedOrigins[1] != "https://b.example.com" {
		t.Errorf("CORSAllowedOrigins = %v", cfg.CORSAllowedOrigins)
	}
}

func TestInvalidDurationFallsBack(t *testing.T) {
	t.Setenv("SESSION_TTL", "not-a-duration")
	cfg := Load()
	if cfg.SessionTTL != 12*time.Hour {
		t.Errorf("SessionTTL = %v, want default 12h", cfg.SessionTTL)
	}
}
