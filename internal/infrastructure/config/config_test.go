package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("STORE_DRIVER", " Memory ")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.StoreDriver != StoreMemory {
		t.Fatalf("expected normalized driver, got %q", cfg.StoreDriver)
	}
	if cfg.Port != "8080" || cfg.DocumentsTable != "documents" || cfg.RabbitExchange != "booking.exchange" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.ReconcileInterval != 30*time.Second || cfg.ReconcileMaxAttempts != 8 || cfg.NotifyTimeout != 3*time.Second {
		t.Fatalf("unexpected reconcile defaults: %+v", cfg)
	}
	if cfg.IsDevelopment() {
		t.Fatalf("expected production by default")
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("STORE_DRIVER", "badger")
	t.Setenv("APP_ENV", "development")
	t.Setenv("RECONCILE_MAX_BACKOFF", "10s")
	t.Setenv("PAYMENT_GATEWAY_MOCK", "true")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !cfg.IsDevelopment() || !cfg.PaymentGatewayMock || cfg.ReconcileMaxBackoff != 10*time.Second {
		t.Fatalf("overrides not applied: %+v", cfg)
	}
}

func TestConfig_Validate(t *testing.T) {
	base := Config{
		StoreDriver:             StoreMemory,
		ReconcileMaxAttempts:    3,
		ReconcileInitialBackoff: time.Second,
		ReconcileMaxBackoff:     time.Minute,
		ReconcileRatePerSecond:  1,
	}
	if err := base.Validate(); err != nil {
		t.Fatalf("expected valid config, got %v", err)
	}

	cases := map[string]func(c *Config){
		"unknown driver":   func(c *Config) { c.StoreDriver = "redis" },
		"zero attempts":    func(c *Config) { c.ReconcileMaxAttempts = 0 },
		"inverted backoff": func(c *Config) { c.ReconcileMaxBackoff = time.Millisecond },
		"zero rate":        func(c *Config) { c.ReconcileRatePerSecond = 0 },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			c := base
			mutate(&c)
			if err := c.Validate(); err == nil {
				t.Fatalf("expected validation error")
			}
		})
	}
}
