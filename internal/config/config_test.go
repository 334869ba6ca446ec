package config

import (
	"testing"
	"time"
)

func TestGetConfigDefaults(t *testing.T) {
	cfg := GetConfig()

	if cfg.Certificate.MaxCodeAttempts != 10 || cfg.Certificate.MaxCreateAttempts != 3 {
		t.Errorf("unexpected certificate defaults: %+v", cfg.Certificate)
	}
	if cfg.RateLimiter.RequestsPerTimeFrame != 60 || cfg.RateLimiter.TimeFrame != time.Minute {
		t.Errorf("unexpected rate limiter defaults: %+v", cfg.RateLimiter)
	}
	if cfg.IsProduction() {
		t.Errorf("default env should not be production")
	}
}

func TestGetConfigFromEnv(t *testing.T) {
	t.Setenv("ENV", "Production")
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("CERT_MAX_CODE_ATTEMPTS", "25")
	t.Setenv("RATE_LIMIT_TIME_FRAME", "not-a-duration")
	t.Setenv("AUTH_ACCESS_TOKEN_TTL", "30m")

	cfg := GetConfig()

	if !cfg.IsProduction() {
		t.Errorf("IsProduction() should ignore case")
	}
	if cfg.DB.DRIVER != "sqlite" {
		t.Errorf("DB.DRIVER = %v, want sqlite", cfg.DB.DRIVER)
	}
	if cfg.Certificate.MaxCodeAttempts != 25 {
		t.Errorf("MaxCodeAttempts = %v, want 25", cfg.Certificate.MaxCodeAttempts)
	}
	if cfg.RateLimiter.TimeFrame != 60*time.Second {
		t.Errorf("invalid time frame should fall back to 60s, got %v", cfg.RateLimiter.TimeFrame)
	}
	if cfg.Auth.AccessTokenTTL != 30*time.Minute {
		t.Errorf("AccessTokenTTL = %v, want 30m", cfg.Auth.AccessTokenTTL)
	}
}
