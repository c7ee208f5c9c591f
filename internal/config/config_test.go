package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != "8080" || cfg.CacheTTL != 5*time.Minute || cfg.SheetTimeout != 30*time.Second {
		t.Fatalf("unexpected defaults %+v", cfg)
	}
	if cfg.DataSource != DataSourceAuto || cfg.SheetMaxBytes() != 20<<20 {
		t.Fatalf("unexpected defaults %+v", cfg)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("CACHE_TTL", "1m")
	t.Setenv("DATA_SOURCE", "DEMO")
	t.Setenv("WON_STATUSES", " fechado , ganho,, ")
	t.Setenv("SHEET_URL", "https://docs.example.com/export?format=xlsx")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != "9090" || cfg.CacheTTL != time.Minute || cfg.DataSource != DataSourceDemo {
		t.Fatalf("env not applied: %+v", cfg)
	}
	won := cfg.WonStatusList()
	if len(won) != 2 || won[0] != "fechado" || won[1] != "ganho" {
		t.Fatalf("unexpected won statuses %v", won)
	}
}

func TestLoadRejectsUnknownDataSource(t *testing.T) {
	t.Setenv("DATA_SOURCE", "ftp")
	if _, err := Load(); err == nil {
		t.Fatalf("expected validation error")
	}
}

func TestCORSOrigins(t *testing.T) {
	c := Config{CORSAllowed: "https://a.example.com, https://b.example.com"}
	if got := c.CORSOrigins(); len(got) != 2 || got[1] != "https://b.example.com" {
		t.Fatalf("unexpected origins %v", got)
	}
}
