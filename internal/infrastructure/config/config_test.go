package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.Addr != ":8080" {
		t.Errorf("Addr = %q", cfg.Server.Addr)
	}
	if cfg.Server.ShutdownTimeout != 10*time.Second {
		t.Errorf("ShutdownTimeout = %v", cfg.Server.ShutdownTimeout)
	}
	if cfg.LogLevel != "info" || cfg.ImageDir != "images" {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
	if cfg.Otel.Enabled {
		t.Error("otel should be disabled by default")
	}
}

func TestLoad_Environment(t *testing.T) {
	t.Setenv("MOMA_ADDR", ":9000")
	t.Setenv("MOMA_LOG_LEVEL", "debug")
	t.Setenv("MOMA_OTEL_ENABLED", "true")
	t.Setenv("MOMA_OTEL_ENDPOINT", "collector:4317")
	t.Setenv("MOMA_MAX_COLORS", "512")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.Addr != ":9000" || cfg.Server.MaxColors != 512 {
		t.Errorf("server config = %+v", cfg.Server)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q", cfg.LogLevel)
	}
	if !cfg.Otel.Enabled || cfg.Otel.Endpoint != "collector:4317" {
		t.Errorf("otel config = %+v", cfg.Otel)
	}
}

func TestLoad_InvalidDuration(t *testing.T) {
	t.Setenv("MOMA_SHUTDOWN_TIMEOUT", "soon")
	if _, err := Load(); err == nil {
		t.Error("expected error for invalid duration")
	}
}
