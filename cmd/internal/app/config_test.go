package app

import (
	"testing"
	"time"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg := LoadConfig()

	if cfg.HTTPAddr != "0.0.0.0:8080" {
		t.Fatalf("HTTPAddr = %q", cfg.HTTPAddr)
	}
	if cfg.LogLevel != "info" {
		t.Fatalf("LogLevel = %q", cfg.LogLevel)
	}
	if cfg.ReadTimeout != 15*time.Second {
		t.Fatalf("ReadTimeout = %v", cfg.ReadTimeout)
	}
	if cfg.DBMaxConns != 10 {
		t.Fatalf("DBMaxConns = %d", cfg.DBMaxConns)
	}
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("MARKETPLACE_HTTP_ADDR", "127.0.0.1:9090")
	t.Setenv("MARKETPLACE_HTTP_READ_TIMEOUT", "30s")
	t.Setenv("MARKETPLACE_DB_MAX_CONNS", "25")

	cfg := LoadConfig()
	if cfg.HTTPAddr != "127.0.0.1:9090" {
		t.Fatalf("HTTPAddr = %q", cfg.HTTPAddr)
	}
	if cfg.ReadTimeout != 30*time.Second {
		t.Fatalf("ReadTimeout = %v", cfg.ReadTimeout)
	}
	if cfg.DBMaxConns != 25 {
		t.Fatalf("DBMaxConns = %d", cfg.DBMaxConns)
	}
}

func TestEnvHelpersRejectGarbage(t *testing.T) {
	t.Setenv("MARKETPLACE_TEST_INT", "not-a-number")
	t.Setenv("MARKETPLACE_TEST_NEG", "-3")
	t.Setenv("MARKETPLACE_TEST_DUR", "soon")
	t.Setenv("MARKETPLACE_TEST_BOOL", "maybe")

	if got := EnvInt("MARKETPLACE_TEST_INT", 7); got != 7 {
		t.Fatalf("EnvInt garbage = %d, want default", got)
	}
	if got := EnvInt("MARKETPLACE_TEST_NEG", 7); got != 7 {
		t.Fatalf("EnvInt negative = %d, want default", got)
	}
	if got := EnvDuration("MARKETPLACE_TEST_DUR", time.Minute); got != time.Minute {
		t.Fatalf("EnvDuration garbage = %v, want default", got)
	}
	if got := EnvBool("MARKETPLACE_TEST_BOOL", true); got != true {
		t.Fatalf("EnvBool garbage = %v, want default", got)
	}
}
