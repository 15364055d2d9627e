// Package config reads settings from an optional yaml file and FOODSHARE_ environment variables.
// Environment variables win over the file, the file wins over defaults.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const EnvPrefix = "foodshare"

const (
	MemoryDriver   = "memory"
	PostgresDriver = "postgres"
)

type Config struct {
	ServerAddress string

	StoreDriver      string
	PostgresUrl      string
	PostgresDatabase string

	JwtSecret string

	LogLevel string

	SentryDsn         string
	SentryEnvironment string

	MetricsPrefix         string
	MetricsReportInterval time.Duration
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.address", ":8080")
	v.SetDefault("store.driver", MemoryDriver)
	v.SetDefault("postgres.url", "")
	v.SetDefault("postgres.database", "foodshare")
	v.SetDefault("auth.jwt_secret", "")
	v.SetDefault("log.level", "info")
	v.SetDefault("sentry.dsn", "")
	v.SetDefault("sentry.environment", "development")
	v.SetDefault("metrics.prefix", "foodshare")
	v.SetDefault("metrics.report_interval", "10s")
}

// Load reads file when given, a .env file in the working directory when present, and the
// environment.
func Load(file string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	v := viper.New()
	setDefaults(v)

	if file != "" {
		v.SetConfigFile(file)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config `%s`: %w", file, err)
		}
	}

	v.AutomaticEnv()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		ServerAddress:         v.GetString("server.address"),
		StoreDriver:           strings.ToLower(v.GetString("store.driver")),
		PostgresUrl:           v.GetString("postgres.url"),
		PostgresDatabase:      v.GetString("postgres.database"),
		JwtSecret:             v.GetString("auth.jwt_secret"),
		LogLevel:              v.GetString("log.level"),
		SentryDsn:             v.GetString("sentry.dsn"),
		SentryEnvironment:     v.GetString("sentry.environment"),
		MetricsPrefix:         v.GetString("metrics.prefix"),
		MetricsReportInterval: v.GetDuration("metrics.report_interval"),
	}

	return cfg, cfg.Validate()
}

func (c *Config) Validate() error {
	switch c.StoreDriver {
	case MemoryDriver:
	case PostgresDriver:
		if c.PostgresUrl == "" {
			return errors.New("postgres.url is required for the postgres store")
		}
	default:
		return fmt.Errorf("unknown store.driver `%s`", c.StoreDriver)
	}

	if c.JwtSecret == "" {
		return errors.New("auth.jwt_secret is required")
	}
	if c.MetricsReportInterval <= 0 {
		return errors.New("metrics.report_interval should be positive")
	}

	return nil
}
