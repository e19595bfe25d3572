package config

import (
	"log/slog"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("ENV", "development")

	cfg := Load()

	if cfg.Server.Port != 8080 {
		t.Errorf("expected default port 8080, got %d", cfg.Server.Port)
	}
	if cfg.JWT.AccessTokenExpiry != 15*time.Minute {
		t.Errorf("expected 15m access expiry, got %s", cfg.JWT.AccessTokenExpiry)
	}
	if !cfg.RateLimit.Enabled {
		t.Error("expected rate limiting enabled outside tests")
	}
	if cfg.Log.Level != slog.LevelInfo {
		t.Errorf("expected info level, got %s", cfg.Log.Level)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("ENV", "test")
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("JWT_EXPIRY", "30m")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("SCHEDULER_ENABLED", "false")
	t.Setenv("DB_MAX_OPEN_CONNS", "not-a-number")

	cfg := Load()

	if cfg.Server.Port != 9090 {
		t.Errorf("expected port 9090, got %d", cfg.Server.Port)
	}
	if cfg.JWT.AccessTokenExpiry != 30*time.Minute {
		t.Errorf("expected 30m, got %s", cfg.JWT.AccessTokenExpiry)
	}
	if cfg.Log.Level != slog.LevelDebug {
		t.Errorf("expected debug level, got %s", cfg.Log.Level)
	}
	if cfg.Scheduler.Enabled {
		t.Error("expected scheduler disabled")
	}
	if cfg.RateLimit.Enabled {
		t.Error("expected rate limiting disabled in test environment")
	}
	if cfg.Database.MaxOpenConns != 25 {
		t.Errorf("expected fallback to default on bad int, got %d", cfg.Database.MaxOpenConns)
	}
}
