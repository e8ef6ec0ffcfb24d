package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config is the runtime configuration, read from the environment and an optional file.
type Config struct {
	AppPort         string
	DatabaseDriver  string
	DatabaseDSN     string
	RabbitMQURL     string
	Exchange        string
	AuditQueue      string
	JWTSecret       string
	TokenTTL        time.Duration
	LogLevel        string
	DefaultPageSize int
	MaxPageSize     int
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_PORT", ":8080")
	v.SetDefault("DATABASE_DRIVER", "sqlite")
	v.SetDefault("DATABASE_DSN", "usergroups.db")
	v.SetDefault("RABBITMQ_URL", "")
	v.SetDefault("RABBITMQ_EXCHANGE", "usergroups.events")
	v.SetDefault("RABBITMQ_AUDIT_QUEUE", "usergroups.audit")
	v.SetDefault("JWT_SECRET", "")
	v.SetDefault("TOKEN_TTL", "24h")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("DEFAULT_PAGE_SIZE", 20)
	v.SetDefault("MAX_PAGE_SIZE", 100)
}

// Load reads configuration. Environment variables override values from configPath,
// which may be empty.
func Load(configPath string) (*Config, error) {
	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", configPath, err)
		}
	}

	cfg := &Config{
		AppPort:         v.GetString("APP_PORT"),
		DatabaseDriver:  v.GetString("DATABASE_DRIVER"),
		DatabaseDSN:     v.GetString("DATABASE_DSN"),
		RabbitMQURL:     v.GetString("RABBITMQ_URL"),
		Exchange:        v.GetString("RABBITMQ_EXCHANGE"),
		AuditQueue:      v.GetString("RABBITMQ_AUDIT_QUEUE"),
		JWTSecret:       v.GetString("JWT_SECRET"),
		TokenTTL:        v.GetDuration("TOKEN_TTL"),
		LogLevel:        v.GetString("LOG_LEVEL"),
		DefaultPageSize: v.GetInt("DEFAULT_PAGE_SIZE"),
		MaxPageSize:     v.GetInt("MAX_PAGE_SIZE"),
	}

	if cfg.TokenTTL <= 0 {
		return nil, fmt.Errorf("TOKEN_TTL must be positive, got %q", v.GetString("TOKEN_TTL"))
	}
	if cfg.DefaultPageSize < 1 || cfg.MaxPageSize < cfg.DefaultPageSize {
		return nil, fmt.Errorf("invalid page sizes: default %d, max %d", cfg.DefaultPageSize, cfg.MaxPageSize)
	}
	return cfg, nil
}

// EventsEnabled reports whether lifecycle events go to RabbitMQ.
func (c *Config) EventsEnabled() bool {
	return c.RabbitMQURL != ""
}

// AuthEnabled reports whether the API requires a bearer token.
func (c *Config) AuthEnabled() bool {
	return c.JWTSecret != ""
}
