package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Environment     string
	HTTPAddr        string
	DatabaseURL     string
	MigrationsPath  string
	CatalogPath     string
	CatalogURL      string
	DefaultLanguage string
	SessionTTL      time.Duration
}

// Load reads the configuration from environment variables and validates it.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		// .env is optional when variables come from the environment
		// (Docker, CI, etc.).
	}

	cfg := &Config{
		Environment:     os.Getenv("APP_ENV"),
		HTTPAddr:        os.Getenv("HTTP_ADDR"),
		DatabaseURL:     os.Getenv("DATABASE_URL"),
		MigrationsPath:  os.Getenv("MIGRATIONS_PATH"),
		CatalogPath:     os.Getenv("CATALOG_PATH"),
		CatalogURL:      os.Getenv("CATALOG_URL"),
		DefaultLanguage: os.Getenv("DEFAULT_LANGUAGE"),
	}

	if ttl := os.Getenv("SESSION_TTL"); ttl != "" {
		d, err := time.ParseDuration(ttl)
		if err != nil {
			return nil, fmt.Errorf("config: invalid SESSION_TTL (%q): %w", ttl, err)
		}
		cfg.SessionTTL = d
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// validate applies defaults and rules to the loaded configuration.
func (c *Config) validate() error {
	if strings.TrimSpace(c.Environment) == "" {
		c.Environment = "development"
	}

	if strings.TrimSpace(c.HTTPAddr) == "" {
		c.HTTPAddr = ":8080"
	}

	if strings.TrimSpace(c.DatabaseURL) == "" {
		// Useful local default when DATABASE_URL is not provided.
		c.DatabaseURL = "postgres://localhost:5432/cropai?sslmode=disable"
	}

	parsed, err := url.Parse(c.DatabaseURL)
	if err != nil {
		return fmt.Errorf("config: invalid DATABASE_URL (%q): %w", c.DatabaseURL, err)
	}
	if parsed.Scheme == "" || parsed.Host == "" {
		return fmt.Errorf("config: invalid DATABASE_URL (%q): missing scheme or host", c.DatabaseURL)
	}

	if c.CatalogPath != "" && c.CatalogURL != "" {
		return fmt.Errorf("config: CATALOG_PATH and CATALOG_URL are mutually exclusive")
	}
	if c.CatalogURL != "" {
		parsed, err := url.Parse(c.CatalogURL)
		if err != nil || parsed.Scheme == "" || parsed.Host == "" {
			return fmt.Errorf("config: invalid CATALOG_URL (%q)", c.CatalogURL)
		}
	}

	if strings.TrimSpace(c.DefaultLanguage) == "" {
		c.DefaultLanguage = "en"
	}

	if c.SessionTTL <= 0 {
		c.SessionTTL = 24 * time.Hour
	}

	return nil
}
