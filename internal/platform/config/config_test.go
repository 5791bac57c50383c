package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/trips")
	t.Setenv("PAGE_SIZE", "")
	t.Setenv("RUN_SEED", "not-a-bool")

	cfg := Load()
	if cfg.Addr != ":8080" {
		t.Fatalf("unexpected addr %q", cfg.Addr)
	}
	if cfg.PageSize != 5 || cfg.PageWindow != 10 {
		t.Fatalf("unexpected paging defaults %d/%d", cfg.PageSize, cfg.PageWindow)
	}
	if cfg.RunSeed {
		t.Fatal("invalid bool should fall back to default false")
	}
	if cfg.ShutdownTimeout != 10*time.Second {
		t.Fatalf("unexpected shutdown timeout %v", cfg.ShutdownTimeout)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("defaults should validate: %v", err)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PAGE_SIZE", "20")
	t.Setenv("PAGE_WINDOW", "7")
	t.Setenv("SHUTDOWN_TIMEOUT", "3s")
	t.Setenv("METRICS_ENABLED", "false")

	cfg := Load()
	if cfg.PageSize != 20 || cfg.PageWindow != 7 {
		t.Fatalf("unexpected paging config %d/%d", cfg.PageSize, cfg.PageWindow)
	}
	if cfg.ShutdownTimeout != 3*time.Second {
		t.Fatalf("unexpected shutdown timeout %v", cfg.ShutdownTimeout)
	}
	if cfg.MetricsEnabled {
		t.Fatal("expected metrics disabled")
	}
}

func TestValidate(t *testing.T) {
	valid := Config{
		DatabaseURL:     "postgres://localhost/trips",
		LogFormat:       "json",
		PageSize:        5,
		PageWindow:      10,
		MaxPageSize:     100,
		ShutdownTimeout: time.Second,
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "valid", mutate: func(*Config) {}},
		{name: "missing database url", mutate: func(c *Config) { c.DatabaseURL = " " }, wantErr: true},
		{name: "zero page size", mutate: func(c *Config) { c.PageSize = 0 }, wantErr: true},
		{name: "zero window", mutate: func(c *Config) { c.PageWindow = 0 }, wantErr: true},
		{name: "max below page size", mutate: func(c *Config) { c.MaxPageSize = 2 }, wantErr: true},
		{name: "unknown log format", mutate: func(c *Config) { c.LogFormat = "xml" }, wantErr: true},
		{name: "text log format", mutate: func(c *Config) { c.LogFormat = "text" }},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			cfg := valid
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.wantErr && err == nil {
				t.Fatal("expected validation error")
			}
			if !tc.wantErr && err != nil {
				t.Fatalf("unexpected validation error: %v", err)
			}
		})
	}
}
