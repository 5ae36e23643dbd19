package config

import (
	"os"
	"testing"
	"time"

	"github.com/drivespec/backend/internal/domain"
)

func TestLoad(t *testing.T) {
	// Clean up environment before tests
	cleanupEnv := func() {
		os.Unsetenv("DRIVESPEC_SERVER_PORT")
		os.Unsetenv("DRIVESPEC_SERVER_ENVIRONMENT")
		os.Unsetenv("DRIVESPEC_SCRAPER_USER_AGENT")
		os.Unsetenv("DRIVESPEC_SCRAPER_MAX_RETRIES")
		os.Unsetenv("DRIVESPEC_SCRAPER_ATTEMPT_TIMEOUT")
		os.Unsetenv("DRIVESPEC_SCRAPER_REQUESTS_PER_MINUTE")
		os.Unsetenv("DRIVESPEC_CACHE_TTL")
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
		if cfg.Scraper.MaxRetries != 3 {
			t.Errorf("Scraper.MaxRetries = %d, want 3", cfg.Scraper.MaxRetries)
		}
		if cfg.Scraper.AttemptTimeout != 10*time.Second {
			t.Errorf("Scraper.AttemptTimeout = %v, want 10s", cfg.Scraper.AttemptTimeout)
		}
		if cfg.Cache.TTL != time.Hour {
			t.Errorf("Cache.TTL = %v, want 1h", cfg.Cache.TTL)
		}
	})

	t.Run("loads custom values from environment variables", func(t *testing.T) {
		cleanupEnv()
		os.Setenv("DRIVESPEC_SERVER_PORT", "9090")
		os.Setenv("DRIVESPEC_SERVER_ENVIRONMENT", "production")
		os.Setenv("DRIVESPEC_SCRAPER_MAX_RETRIES", "5")
		os.Setenv("DRIVESPEC_CACHE_TTL", "30m")
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
		if cfg.Scraper.MaxRetries != 5 {
			t.Errorf("Scraper.MaxRetries = %d, want 5", cfg.Scraper.MaxRetries)
		}
		if cfg.Cache.TTL != 30*time.Minute {
			t.Errorf("Cache.TTL = %v, want 30m", cfg.Cache.TTL)
		}
	})

	t.Run("ships with built-in manufacturer registry", func(t *testing.T) {
		cleanupEnv()
		defer cleanupEnv()

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error = %v, want nil", err)
		}

		for _, name := range []string{"danfoss", "abb", "siemens", "yaskawa"} {
			m, ok := cfg.Manufacturers[name]
			if !ok {
				t.Errorf("Manufacturers missing %q", name)
				continue
			}
			if m.BaseURL == "" {
				t.Errorf("Manufacturer %q has empty BaseURL", name)
			}
			if len(m.Products) == 0 {
				t.Errorf("Manufacturer %q has no products", name)
			}
			if m.Selectors.SpecsTable == "" {
				t.Errorf("Manufacturer %q has empty specs_table selector", name)
			}
		}

		if _, ok := cfg.Manufacturers["danfoss"].Products["FC301"]; !ok {
			t.Error("danfoss registry missing FC301")
		}
	})
}

func TestValidate(t *testing.T) {
	validConfig := func() *Config {
		return &Config{
			Scraper: ScraperConfig{
				MaxRetries:     3,
				AttemptTimeout: 10 * time.Second,
			},
			Cache: CacheConfig{
				TTL: time.Hour,
			},
			Manufacturers: DefaultManufacturers(),
		}
	}

	t.Run("validates successfully with all required fields", func(t *testing.T) {
		err := validate(validConfig())
		if err != nil {
			t.Errorf("validate() error = %v, want nil", err)
		}
	})

	t.Run("fails for zero max retries", func(t *testing.T) {
		cfg := validConfig()
		cfg.Scraper.MaxRetries = 0

		err := validate(cfg)
		if err == nil {
			t.Error("validate() error = nil, want error for zero max retries")
		}
	})

	t.Run("fails for non-positive attempt timeout", func(t *testing.T) {
		cfg := validConfig()
		cfg.Scraper.AttemptTimeout = 0

		err := validate(cfg)
		if err == nil {
			t.Error("validate() error = nil, want error for zero attempt timeout")
		}
	})

	t.Run("fails for non-positive cache TTL", func(t *testing.T) {
		cfg := validConfig()
		cfg.Cache.TTL = 0

		err := validate(cfg)
		if err == nil {
			t.Error("validate() error = nil, want error for zero TTL")
		}
	})

	t.Run("fails for empty manufacturer registry", func(t *testing.T) {
		cfg := validConfig()
		cfg.Manufacturers = map[string]domain.ManufacturerConfig{}

		err := validate(cfg)
		if err == nil {
			t.Error("validate() error = nil, want error for empty registry")
		}
	})

	t.Run("fails for manufacturer without base URL", func(t *testing.T) {
		cfg := validConfig()
		m := cfg.Manufacturers["danfoss"]
		m.BaseURL = ""
		cfg.Manufacturers["danfoss"] = m

		err := validate(cfg)
		if err == nil {
			t.Error("validate() error = nil, want error for missing base_url")
		}
	})

	t.Run("fails for manufacturer without products", func(t *testing.T) {
		cfg := validConfig()
		m := cfg.Manufacturers["yaskawa"]
		m.Products = nil
		cfg.Manufacturers["yaskawa"] = m

		err := validate(cfg)
		if err == nil {
			t.Error("validate() error = nil, want error for missing products")
		}
	})
}
