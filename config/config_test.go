package config

import (
	"os"
	"testing"
	"time"
)

func TestLoad(t *testing.T) {
	// Clean up environment before tests
	cleanupEnv := func() {
		os.Unsetenv("FINDER_SERVER_PORT")
		os.Unsetenv("FINDER_SERVER_ENVIRONMENT")
		os.Unsetenv("FINDER_CATALOG_PATH")
		os.Unsetenv("FINDER_PDP_USER_AGENT")
		os.Unsetenv("FINDER_PDP_TIMEOUT")
		os.Unsetenv("FINDER_PDP_REQUESTS_PER_MINUTE")
		os.Unsetenv("FINDER_CACHE_PRICE_TTL")
		os.Unsetenv("FINDER_CACHE_IMAGE_TTL")
		os.Unsetenv("FINDER_ENRICHMENT_STRICT")
		os.Unsetenv("FINDER_ENRICHMENT_CONCURRENCY")
	}

	t.Run("loads with defaults when no env vars set", func(t *testing.T) {
		cleanupEnv()
		defer cleanupEnv()

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error = %v, want nil", err)
		}

		// Check defaults
		if cfg.Server.Port != "8080" {
			t.Errorf("Server.Port = %s, want 8080", cfg.Server.Port)
		}
		if cfg.Server.Environment != "development" {
			t.Errorf("Server.Environment = %s, want development", cfg.Server.Environment)
		}
		if cfg.Catalog.Path != "data/products.json" {
			t.Errorf("Catalog.Path = %s, want data/products.json", cfg.Catalog.Path)
		}
		if len(cfg.Catalog.AllowedDomains) != 2 {
			t.Errorf("Catalog.AllowedDomains = %v, want the two stiga.com prefixes", cfg.Catalog.AllowedDomains)
		}
		if cfg.PDP.Timeout != 10*time.Second {
			t.Errorf("PDP.Timeout = %v, want 10s", cfg.PDP.Timeout)
		}
		if cfg.Cache.PriceTTL != 30*time.Minute {
			t.Errorf("Cache.PriceTTL = %v, want 30m", cfg.Cache.PriceTTL)
		}
		if cfg.Cache.ImageTTL != 60*time.Minute {
			t.Errorf("Cache.ImageTTL = %v, want 60m", cfg.Cache.ImageTTL)
		}
		if cfg.Enrichment.Strict {
			t.Error("Enrichment.Strict = true, want false by default")
		}
		if cfg.Enrichment.Concurrency != 1 {
			t.Errorf("Enrichment.Concurrency = %d, want 1", cfg.Enrichment.Concurrency)
		}
	})

	t.Run("loads custom values from environment variables", func(t *testing.T) {
		cleanupEnv()
		os.Setenv("FINDER_SERVER_PORT", "9090")
		os.Setenv("FINDER_SERVER_ENVIRONMENT", "production")
		os.Setenv("FINDER_CATALOG_PATH", "/srv/finder/products.json")
		os.Setenv("FINDER_PDP_TIMEOUT", "12s")
		os.Setenv("FINDER_CACHE_PRICE_TTL", "15m")
		os.Setenv("FINDER_ENRICHMENT_CONCURRENCY", "4")
		defer cleanupEnv()

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error = %v, want nil", err)
		}

		if cfg.Server.Port != "9090" {
			t.Errorf("Server.Port = %s, want 9090", cfg.Server.Port)
		}
		if cfg.Server.Environment != "production" {
			t.Errorf("Server.Environment = %s, want production", cfg.Server.Environment)
		}
		if cfg.Catalog.Path != "/srv/finder/products.json" {
			t.Errorf("Catalog.Path = %s, want /srv/finder/products.json", cfg.Catalog.Path)
		}
		if cfg.PDP.Timeout != 12*time.Second {
			t.Errorf("PDP.Timeout = %v, want 12s", cfg.PDP.Timeout)
		}
		if cfg.Cache.PriceTTL != 15*time.Minute {
			t.Errorf("Cache.PriceTTL = %v, want 15m", cfg.Cache.PriceTTL)
		}
		if cfg.Enrichment.Concurrency != 4 {
			t.Errorf("Enrichment.Concurrency = %d, want 4", cfg.Enrichment.Concurrency)
		}
	})

	t.Run("rejects non-positive timeout", func(t *testing.T) {
		cleanupEnv()
		os.Setenv("FINDER_PDP_TIMEOUT", "0s")
		defer cleanupEnv()

		if _, err := Load(); err == nil {
			t.Error("Load() error = nil, want validation error for zero timeout")
		}
	})

	t.Run("rejects zero enrichment concurrency", func(t *testing.T) {
		cleanupEnv()
		os.Setenv("FINDER_ENRICHMENT_CONCURRENCY", "0")
		defer cleanupEnv()

		if _, err := Load(); err == nil {
			t.Error("Load() error = nil, want validation error for zero concurrency")
		}
	})
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Catalog: CatalogConfig{
				Path:           "data/products.json",
				AllowedDomains: []string{"https://www.stiga.com"},
			},
			PDP:        PDPConfig{Timeout: 10 * time.Second},
			Enrichment: EnrichmentConfig{Concurrency: 1},
		}
	}

	t.Run("accepts valid config", func(t *testing.T) {
		if err := validate(valid()); err != nil {
			t.Errorf("validate() error = %v, want nil", err)
		}
	})

	t.Run("rejects empty catalog path", func(t *testing.T) {
		cfg := valid()
		cfg.Catalog.Path = ""
		if err := validate(cfg); err == nil {
			t.Error("validate() error = nil, want error")
		}
	})

	t.Run("rejects empty allowed domains", func(t *testing.T) {
		cfg := valid()
		cfg.Catalog.AllowedDomains = nil
		if err := validate(cfg); err == nil {
			t.Error("validate() error = nil, want error")
		}
	})
}
