// Package config loads service configuration. Server-level settings come
// from an optional YAML file; database credentials and JWT parameters are
// required from the process environment (a .env file is honored).
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Environment variables required at startup. Absence of any of them is a
// startup failure with no defaults.
var requiredEnv = []string{
	"DB_USER",
	"DB_PASSWORD",
	"DB_HOST",
	"DB_NAME",
	"DB_PORT",
	"SECRET_KEY",
	"ALGORITHM",
	"ACCESS_TOKEN_EXPIRE_MINUTES",
}

// Signing algorithms accepted for ALGORITHM. The token scheme is
// HMAC-with-shared-secret; asymmetric algorithms are not supported.
var supportedAlgorithms = map[string]bool{
	"HS256": true,
	"HS384": true,
	"HS512": true,
}

// Config holds the full service configuration. Constructed once in main
// and passed down; read-only afterwards.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	JWT      JWTConfig      `yaml:"-"`
}

// ServerConfig contains HTTP server configuration.
type ServerConfig struct {
	Port            string        `yaml:"port"`
	Mode            string        `yaml:"mode"`
	BasePath        string        `yaml:"base_path"`
	LogLevel        string        `yaml:"log_level"`
	ReadTimeout     time.Duration `yaml:"read_timeout"`
	WriteTimeout    time.Duration `yaml:"write_timeout"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

// DatabaseConfig contains connection parameters. Credentials come from the
// environment; pool sizing from the YAML file.
type DatabaseConfig struct {
	User            string        `yaml:"-"`
	Password        string        `yaml:"-"`
	Host            string        `yaml:"-"`
	Name            string        `yaml:"-"`
	Port            int           `yaml:"-"`
	SSLMode         string        `yaml:"ssl_mode"`
	MaxOpenConns    int           `yaml:"max_open_conns"`
	MaxIdleConns    int           `yaml:"max_idle_conns"`
	ConnMaxLifetime time.Duration `yaml:"conn_max_lifetime"`
	AutoMigrate     bool          `yaml:"auto_migrate"`
}

// JWTConfig contains token signing parameters.
type JWTConfig struct {
	SecretKey     string
	Algorithm     string
	ExpireMinutes int
}

// AccessTokenTTL returns the configured default token lifetime.
func (c JWTConfig) AccessTokenTTL() time.Duration {
	return time.Duration(c.ExpireMinutes) * time.Minute
}

// GetDSN builds the Postgres DSN from the database configuration.
func (c DatabaseConfig) GetDSN() string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%d sslmode=%s",
		c.Host, c.User, c.Password, c.Name, c.Port, c.SSLMode)
}

func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:            "8000",
			Mode:            "debug",
			BasePath:        "/api/v1",
			LogLevel:        "info",
			ReadTimeout:     10 * time.Second,
			WriteTimeout:    10 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
		Database: DatabaseConfig{
			SSLMode:         "disable",
			MaxOpenConns:    25,
			MaxIdleConns:    5,
			ConnMaxLifetime: 5 * time.Minute,
			AutoMigrate:     true,
		},
	}
}

// Load reads the optional YAML file at path, loads a .env file if present,
// and resolves the required environment variables. A missing YAML file is
// fine; a missing environment variable is not.
func Load(path string) (*Config, error) {
	cfg := defaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err == nil {
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
			}
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}

	// .env is optional; real environment wins over file entries.
	_ = godotenv.Load()

	if err := cfg.loadFromEnv(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) loadFromEnv() error {
	var missing []string
	for _, key := range requiredEnv {
		if os.Getenv(key) == "" {
			missing = append(missing, key)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}

	c.Database.User = os.Getenv("DB_USER")
	c.Database.Password = os.Getenv("DB_PASSWORD")
	c.Database.Host = os.Getenv("DB_HOST")
	c.Database.Name = os.Getenv("DB_NAME")

	dbPort, err := strconv.Atoi(os.Getenv("DB_PORT"))
	if err != nil {
		return fmt.Errorf("DB_PORT must be an integer: %w", err)
	}
	c.Database.Port = dbPort

	c.JWT.SecretKey = os.Getenv("SECRET_KEY")

	alg := os.Getenv("ALGORITHM")
	if !supportedAlgorithms[alg] {
		return fmt.Errorf("ALGORITHM %q is not supported (expected HS256, HS384 or HS512)", alg)
	}
	c.JWT.Algorithm = alg

	minutes, err := strconv.Atoi(os.Getenv("ACCESS_TOKEN_EXPIRE_MINUTES"))
	if err != nil || minutes <= 0 {
		return fmt.Errorf("ACCESS_TOKEN_EXPIRE_MINUTES must be a positive integer")
	}
	c.JWT.ExpireMinutes = minutes

	// Optional server-level overrides.
	if port := os.Getenv("PORT"); port != "" {
		c.Server.Port = port
	}
	if mode := os.Getenv("GIN_MODE"); mode != "" {
		c.Server.Mode = mode
	}
	if level := os.Getenv("LOG_LEVEL"); level != "" {
		c.Server.LogLevel = level
	}
	return nil
}
