package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.AppName != defaultAppName || cfg.Port != defaultPort {
		t.Fatalf("unexpected defaults %+v", cfg)
	}
	if !cfg.SeedChallenges {
		t.Fatalf("expected seeding on by default")
	}
	if cfg.LoginAttemptsPerMinute != defaultLoginAttempts {
		t.Fatalf("expected default login budget, got %d", cfg.LoginAttemptsPerMinute)
	}
	if cfg.ShutdownPeriod != defaultShutdownDelay || cfg.IdempotencyTTL != defaultIdempotencyTTL {
		t.Fatalf("unexpected durations %+v", cfg)
	}
	if cfg.Address() != ":3000" {
		t.Fatalf("unexpected address %s", cfg.Address())
	}
	if !cfg.IsDev() {
		t.Fatalf("expected development by default")
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("PORT", ":9000")
	t.Setenv("APP_ENV", "Production")
	t.Setenv("ADMIN_SECRET", "hunter22")
	t.Setenv("REDIS_URL", "redis://localhost:6379/0")
	t.Setenv("SEED_CHALLENGES", "false")
	t.Setenv("LOGIN_ATTEMPTS_PER_MINUTE", "3")
	t.Setenv(shutdownSecondsEnvVar, "4")
	t.Setenv(idemTTLDurEnvVar, "90m")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Address() != ":9000" {
		t.Fatalf("expected override port, got %s", cfg.Address())
	}
	if cfg.AdminSecret != "hunter22" || cfg.RedisURL != "redis://localhost:6379/0" {
		t.Fatalf("unexpected secrets %+v", cfg)
	}
	if cfg.IsDev() {
		t.Fatalf("production must not count as dev")
	}
	if cfg.SeedChallenges || cfg.LoginAttemptsPerMinute != 3 {
		t.Fatalf("unexpected overrides %+v", cfg)
	}
	if cfg.ShutdownPeriod != 4*time.Second || cfg.IdempotencyTTL != 90*time.Minute {
		t.Fatalf("unexpected durations %v %v", cfg.ShutdownPeriod, cfg.IdempotencyTTL)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	cases := map[string]string{
		"SEED_CHALLENGES":           "maybe",
		"LOGIN_ATTEMPTS_PER_MINUTE": "many",
		shutdownSecondsEnvVar:       "soon",
		idemTTLDurEnvVar:            "forever",
	}
	for key, value := range cases {
		t.Run(key, func(t *testing.T) {
			t.Setenv(key, value)
			if _, err := Load(); err == nil {
				t.Fatalf("expected error for %s=%s", key, value)
			}
		})
	}
}
