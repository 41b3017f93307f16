// Package config loads server settings from the environment, optionally
// seeded from a .env file.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Supported DB_DRIVER values.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// DBConfig holds database configuration
type DBConfig struct {
	Driver string
	// Path is the SQLite database file.
	Path string
	// URL is the PostgreSQL connection string.
	URL             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// AuthConfig holds login and session configuration
type AuthConfig struct {
	// Disabled turns off authentication entirely, for local use.
	Disabled     bool
	Username     string
	Password     string
	JWTSecret    string
	TokenTTL     time.Duration
	SecureCookie bool
}

// Config holds all configuration
type Config struct {
	HTTPAddr        string
	DB              DBConfig
	Auth            AuthConfig
	LogLevel        string
	ShutdownTimeout time.Duration
	MetricsEnabled  bool
}

// Load reads the given .env files (".env" when none are named) and then
// the environment. Missing .env files are not an error; variables already
// set in the environment take precedence over the files.
func Load(envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("failed to load %s: %w", f, err)
		}
	}

	cfg := &Config{
		HTTPAddr: getEnv("HTTP_ADDR", ":8080"),
		DB: DBConfig{
			Driver:          strings.ToLower(getEnv("DB_DRIVER", DriverSQLite)),
			Path:            getEnv("DB_PATH", "./data/billing.db"),
			URL:             getEnv("DATABASE_URL", ""),
			MaxOpenConns:    getEnvAsInt("DB_MAX_OPEN_CONNS", 30),
			MaxIdleConns:    getEnvAsInt("DB_MAX_IDLE_CONNS", 8),
			ConnMaxLifetime: getEnvAsDuration("DB_CONN_MAX_LIFETIME", 30*time.Minute),
		},
		Auth: AuthConfig{
			Disabled:     getEnvAsBool("AUTH_DISABLED", false),
			Username:     getEnv("ADMIN_USERNAME", "admin"),
			Password:     getEnv("ADMIN_PASSWORD", ""),
			JWTSecret:    getEnv("JWT_SECRET", ""),
			TokenTTL:     getEnvAsDuration("TOKEN_TTL", 7*24*time.Hour),
			SecureCookie: getEnvAsBool("SECURE_COOKIE", false),
		},
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		ShutdownTimeout: getEnvAsDuration("SHUTDOWN_TIMEOUT", 15*time.Second),
		MetricsEnabled:  getEnvAsBool("METRICS_ENABLED", true),
	}
	return cfg, nil
}

// Validate reports the first setting that would stop the server from
// starting.
func (c *Config) Validate() error {
	switch c.DB.Driver {
	case DriverSQLite:
		if c.DB.Path == "" {
			return errors.New("DB_PATH is required for the sqlite driver")
		}
	case DriverPostgres:
		if c.DB.URL == "" {
			return errors.New("DATABASE_URL is required for the postgres driver")
		}
	default:
		return fmt.Errorf("unknown DB_DRIVER %q (want %s or %s)", c.DB.Driver, DriverSQLite, DriverPostgres)
	}

	if !c.Auth.Disabled {
		if c.Auth.Password == "" {
			return errors.New("ADMIN_PASSWORD is required unless AUTH_DISABLED=true")
		}
		if c.Auth.JWTSecret == "" {
			return errors.New("JWT_SECRET is required unless AUTH_DISABLED=true")
		}
		if c.Auth.TokenTTL <= 0 {
			return errors.New("TOKEN_TTL must be positive")
		}
	}
	return nil
}

// Helper function to get environment variables with defaults
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value, err := strconv.Atoi(getEnv(key, "")); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, err := time.ParseDuration(getEnv(key, "")); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value, err := strconv.ParseBool(getEnv(key, "")); err == nil {
		return value
	}
	return defaultValue
}
