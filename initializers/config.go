package initializers

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// AppConfig holds the settings read from the environment.
type AppConfig struct {
	Port        string
	Environment string // development, production
	LogLevel    string

	DBDriver string // mysql, sqlite
	DBDSN    string

	JWTSecret   string
	SessionTTL  time.Duration
	SweepEvery  time.Duration
	CORSOrigins []string
}

var Config *AppConfig

// LoadConfig reads the environment on top of the defaults.
func LoadConfig() (*AppConfig, error) {
	cfg := &AppConfig{
		Port:        "8080",
		Environment: "development",
		LogLevel:    "info",
		DBDriver:    "sqlite",
		DBDSN:       "checkout.db",
		SessionTTL:  30 * time.Minute,
		SweepEvery:  time.Minute,
		CORSOrigins: []string{"http://localhost:4200", "https://www.amexan.store"},
	}

	if port := os.Getenv("PORT"); port != "" {
		cfg.Port = strings.TrimPrefix(port, ":")
	}
	if env := os.Getenv("APP_ENV"); env != "" {
		cfg.Environment = env
	}
	if level := os.Getenv("LOG_LEVEL"); level != "" {
		cfg.LogLevel = level
	}
	if driver := os.Getenv("DB_DRIVER"); driver != "" {
		cfg.DBDriver = driver
	}
	if dsn := os.Getenv("DB_DSN"); dsn != "" {
		cfg.DBDSN = dsn
	}
	cfg.JWTSecret = os.Getenv("JWT_SECRET")

	if ttl := os.Getenv("SESSION_TTL"); ttl != "" {
		d, err := time.ParseDuration(ttl)
		if err != nil {
			return nil, fmt.Errorf("invalid SESSION_TTL: %w", err)
		}
		cfg.SessionTTL = d
	}
	if every := os.Getenv("SESSION_SWEEP_INTERVAL"); every != "" {
		d, err := time.ParseDuration(every)
		if err != nil {
			return nil, fmt.Errorf("invalid SESSION_SWEEP_INTERVAL: %w", err)
		}
		cfg.SweepEvery = d
	}
	if origins := os.Getenv("CORS_ORIGINS"); origins != "" {
		cfg.CORSOrigins = nil
		for _, o := range strings.Split(origins, ",") {
			if o = strings.TrimSpace(o); o != "" {
				cfg.CORSOrigins = append(cfg.CORSOrigins, o)
			}
		}
	}

	return cfg, nil
}

// Validate checks the configuration for values the service cannot run with.
func (c *AppConfig) Validate() error {
	if c.Port == "" {
		return fmt.Errorf("port is required")
	}
	switch c.DBDriver {
	case "mysql", "sqlite":
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", c.DBDriver)
	}
	if c.DBDSN == "" {
		return fmt.Errorf("DB_DSN is required")
	}
	if c.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET is required")
	}
	if c.SessionTTL < 0 {
		return fmt.Errorf("SESSION_TTL cannot be negative")
	}
	return nil
}

func (c *AppConfig) IsProduction() bool {
	return c.Environment == "production"
}

func (c *AppConfig) Address() string {
	return ":" + c.Port
}
