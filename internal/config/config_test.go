package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"PORT", "ENVIRONMENT", "DEBOUNCE_MS", "SESSION_TTL", "MAX_SESSIONS", "AUTH_JWKS_URL", "DEBUG"} {
		t.Setenv(key, "")
	}

	cfg := Load()
	if cfg.Port != "8080" {
		t.Errorf("Port = %q", cfg.Port)
	}
	if cfg.Debounce != 300*time.Millisecond {
		t.Errorf("Debounce = %v", cfg.Debounce)
	}
	if cfg.SessionTTL != 30*time.Minute {
		t.Errorf("SessionTTL = %v", cfg.SessionTTL)
	}
	if cfg.MaxSessions != DefaultMaxSessions {
		t.Errorf("MaxSessions = %d", cfg.MaxSessions)
	}
	if !cfg.Debug {
		t.Error("Debug should default to true in dev")
	}
	if cfg.AuthEnabled() {
		t.Error("auth should be off without a JWKS URL")
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("ENVIRONMENT", "prod")
	t.Setenv("DEBUG", "")
	t.Setenv("DEBOUNCE_MS", "120")
	t.Setenv("SESSION_TTL", "90s")
	t.Setenv("MAX_SESSIONS", "5")
	t.Setenv("AUTH_JWKS_URL", "https://auth.example.com/jwks.json")

	cfg := Load()
	if cfg.Debug {
		t.Error("Debug should default to false in prod")
	}
	if cfg.Debounce != 120*time.Millisecond {
		t.Errorf("Debounce = %v", cfg.Debounce)
	}
	if cfg.SessionTTL != 90*time.Second {
		t.Errorf("SessionTTL = %v", cfg.SessionTTL)
	}
	if cfg.MaxSessions != 5 {
		t.Errorf("MaxSessions = %d", cfg.MaxSessions)
	}
	if !cfg.AuthEnabled() {
		t.Error("auth should be on")
	}
}

func TestLoad_InvalidNumbersFallBack(t *testing.T) {
	t.Setenv("DEBOUNCE_MS", "soon")
	t.Setenv("MAX_SESSIONS", "-3")
	t.Setenv("SESSION_TTL", "forever")

	cfg := Load()
	if cfg.Debounce != DefaultDebounceMS*time.Millisecond {
		t.Errorf("Debounce = %v", cfg.Debounce)
	}
	if cfg.MaxSessions != DefaultMaxSessions {
		t.Errorf("MaxSessions = %d", cfg.MaxSessions)
	}
	if cfg.SessionTTL != 30*time.Minute {
		t.Errorf("SessionTTL = %v", cfg.SessionTTL)
	}
}
