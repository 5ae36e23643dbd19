package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"

	"github.com/drivespec/backend/internal/domain"
)

// Config holds all configuration for the application
type Config struct {
	Server        ServerConfig
	Scraper       ScraperConfig
	Cache         CacheConfig
	Manufacturers map[string]domain.ManufacturerConfig
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port           string   `mapstructure:"port"`
	Environment    string   `mapstructure:"environment"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// ScraperConfig holds outbound fetching configuration
type ScraperConfig struct {
	UserAgent         string        `mapstructure:"user_agent"`
	MaxRetries        int           `mapstructure:"max_retries"`
	AttemptTimeout    time.Duration `mapstructure:"attempt_timeout"`
	RequestsPerMinute int           `mapstructure:"requests_per_minute"`
}

// CacheConfig holds cache-related configuration
type CacheConfig struct {
	TTL time.Duration `mapstructure:"ttl"`
}

// Load loads configuration from environment variables and config files
func Load() (*Config, error) {
	v := viper.New()

	// Set config name and paths
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/drivespec/")

	// Environment variable settings
	v.SetEnvPrefix("DRIVESPEC")
	v.AutomaticEnv()

	// Set default values
	setDefaults(v)

	// Read config file (optional - will use env vars if file doesn't exist)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found; using environment variables and defaults
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	// The manufacturer registry ships built in; a "manufacturers" section in
	// the config file replaces it wholesale.
	if len(config.Manufacturers) == 0 {
		config.Manufacturers = DefaultManufacturers()
	}

	// Validate configuration
	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.environment", "development")
	v.SetDefault("server.allowed_origins", []string{"*"})

	// Scraper defaults. The browser-like user agent is an anti-blocking
	// measure; manufacturer sites refuse obvious bot traffic.
	v.SetDefault("scraper.user_agent",
		"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36")
	v.SetDefault("scraper.max_retries", 3)
	v.SetDefault("scraper.attempt_timeout", "10s")
	v.SetDefault("scraper.requests_per_minute", 30)

	// Cache defaults
	v.SetDefault("cache.ttl", "1h")
}

// validate validates the configuration
func validate(config *Config) error {
	if config.Scraper.MaxRetries < 1 {
		return fmt.Errorf("scraper max_retries must be at least 1, got: %d", config.Scraper.MaxRetries)
	}

	if config.Scraper.AttemptTimeout <= 0 {
		return fmt.Errorf("scraper attempt_timeout must be positive, got: %s", config.Scraper.AttemptTimeout)
	}

	if config.Cache.TTL <= 0 {
		return fmt.Errorf("cache ttl must be positive, got: %s", config.Cache.TTL)
	}

	if len(config.Manufacturers) == 0 {
		return fmt.Errorf("manufacturer registry is empty")
	}

	for name, m := range config.Manufacturers {
		if m.BaseURL == "" {
			return fmt.Errorf("manufacturer %q has no base_url", name)
		}
		if len(m.Products) == 0 {
			return fmt.Errorf("manufacturer %q has no products", name)
		}
	}

	return nil
}
