package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config captures the runtime configuration for the service.
type Config struct {
	HTTPAddress      string `mapstructure:"HTTP_ADDRESS"`
	DatabaseDriver   string `mapstructure:"DATABASE_DRIVER"`
	DatabaseURL      string `mapstructure:"DATABASE_URL"`
	JWTSecret        string `mapstructure:"JWT_SECRET"`
	LogMode          string `mapstructure:"LOG_MODE"`
	AllowedOrigins   string `mapstructure:"ALLOWED_ORIGINS"`
	RedisAddr        string `mapstructure:"REDIS_ADDR"`
	CommentRateLimit int    `mapstructure:"COMMENT_RATE_LIMIT"`
	OtelEnabled      bool   `mapstructure:"OTEL_ENABLED"`
	OtelEndpoint     string `mapstructure:"OTEL_EXPORTER_OTLP_ENDPOINT"`
}

// Supported values for DATABASE_DRIVER.
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

var defaults = map[string]any{
	"HTTP_ADDRESS":                ":8080",
	"DATABASE_DRIVER":             DriverPostgres,
	"DATABASE_URL":                "",
	"JWT_SECRET":                  "",
	"LOG_MODE":                    "development",
	"ALLOWED_ORIGINS":             "http://localhost:8080",
	"REDIS_ADDR":                  "",
	"COMMENT_RATE_LIMIT":          10,
	"OTEL_ENABLED":                false,
	"OTEL_EXPORTER_OTLP_ENDPOINT": "",
}

// Load reads configuration from the environment with sensible defaults.
func Load() (Config, error) {
	v := viper.New()
	v.AutomaticEnv()
	for key, value := range defaults {
		v.SetDefault(key, value)
		if err := v.BindEnv(key); err != nil {
			return Config{}, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("decode config: %w", err)
	}

	cfg.DatabaseDriver = strings.ToLower(strings.TrimSpace(cfg.DatabaseDriver))
	switch cfg.DatabaseDriver {
	case DriverPostgres, DriverSQLite:
	default:
		return cfg, fmt.Errorf("unsupported DATABASE_DRIVER %q", cfg.DatabaseDriver)
	}

	if cfg.DatabaseURL == "" {
		return cfg, fmt.Errorf("DATABASE_URL must be provided")
	}
	if cfg.JWTSecret == "" {
		return cfg, fmt.Errorf("JWT_SECRET must be provided")
	}
	if cfg.CommentRateLimit <= 0 {
		cfg.CommentRateLimit = 10
	}

	return cfg, nil
}

// Origins splits ALLOWED_ORIGINS into individual origins.
func (c Config) Origins() []string {
	var origins []string
	for _, origin := range strings.Split(c.AllowedOrigins, ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			origins = append(origins, origin)
		}
	}
	return origins
}
