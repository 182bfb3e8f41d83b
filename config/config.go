package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server     ServerConfig
	Catalog    CatalogConfig
	PDP        PDPConfig
	Cache      CacheConfig
	Enrichment EnrichmentConfig
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port           string   `mapstructure:"port"`
	Environment    string   `mapstructure:"environment"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// CatalogConfig holds product catalog configuration
type CatalogConfig struct {
	Path           string   `mapstructure:"path"`
	AllowedDomains []string `mapstructure:"allowed_domains"`
}

// PDPConfig holds configuration for fetching product detail pages
type PDPConfig struct {
	UserAgent         string        `mapstructure:"user_agent"`
	Timeout           time.Duration `mapstructure:"timeout"`
	RequestsPerMinute int           `mapstructure:"requests_per_minute"`
}

// CacheConfig holds live-data cache configuration
type CacheConfig struct {
	PriceTTL time.Duration `mapstructure:"price_ttl"`
	ImageTTL time.Duration `mapstructure:"image_ttl"`
}

// EnrichmentConfig holds enrichment policy configuration
type EnrichmentConfig struct {
	// Strict drops products whose PDP cannot be fetched instead of passing
	// them through with catalog data
	Strict      bool `mapstructure:"strict"`
	Concurrency int  `mapstructure:"concurrency"`
}

// Load loads configuration from environment variables and config files
func Load() (*Config, error) {
	v := viper.New()

	// Set config name and paths
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/stiga-product-finder/")

	// Environment variable settings
	v.SetEnvPrefix("FINDER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
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

	// Catalog defaults
	v.SetDefault("catalog.path", "data/products.json")
	v.SetDefault("catalog.allowed_domains", []string{"https://www.stiga.com", "https://stiga.com"})

	// PDP fetch defaults
	v.SetDefault("pdp.user_agent", "Mozilla/5.0 (compatible; STIGA-PriceBot/1.0)")
	v.SetDefault("pdp.timeout", "10s")
	v.SetDefault("pdp.requests_per_minute", 30)

	// Cache defaults
	v.SetDefault("cache.price_ttl", "30m")
	v.SetDefault("cache.image_ttl", "60m")

	// Enrichment defaults: pass through unenriched on fetch failure,
	// one blocking fetch at a time
	v.SetDefault("enrichment.strict", false)
	v.SetDefault("enrichment.concurrency", 1)
}

// validate validates the configuration
func validate(config *Config) error {
	if config.Catalog.Path == "" {
		return fmt.Errorf("catalog path is required (set FINDER_CATALOG_PATH)")
	}

	if len(config.Catalog.AllowedDomains) == 0 {
		return fmt.Errorf("at least one allowed catalog domain is required")
	}

	if config.PDP.Timeout <= 0 {
		return fmt.Errorf("pdp timeout must be positive, got: %s", config.PDP.Timeout)
	}

	if config.Enrichment.Concurrency < 1 {
		return fmt.Errorf("enrichment concurrency must be >= 1, got: %d", config.Enrichment.Concurrency)
	}

	return nil
}
