package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/ssms/scholarship/internal/pkg/helpers"
)

// Config structure represents the application configuration
type Config struct {
	Server struct {
		Port         string `yaml:"port" env:"SERVER_PORT"`
		Mode         string `yaml:"mode" env:"SERVER_MODE"`
		ReadTimeout  string `yaml:"read_timeout" env:"SERVER_READ_TIMEOUT"`
		WriteTimeout string `yaml:"write_timeout" env:"SERVER_WRITE_TIMEOUT"`
	} `yaml:"server"`

	Database struct {
		Driver          string `yaml:"driver" env:"DB_DRIVER"`
		Host            string `yaml:"host" env:"DB_HOST"`
		Port            string `yaml:"port" env:"DB_PORT"`
		User            string `yaml:"user" env:"DB_USER"`
		Password        string `yaml:"password" env:"DB_PASSWORD"`
		DBName          string `yaml:"dbname" env:"DB_NAME"`
		SSLMode         string `yaml:"sslmode" env:"DB_SSLMODE"`
		MinConns        int    `yaml:"min_conns" env:"DB_MIN_CONNS"`
		MaxConns        int    `yaml:"max_conns" env:"DB_MAX_CONNS"`
		ConnMaxLifetime string `yaml:"conn_max_lifetime" env:"DB_CONN_MAX_LIFETIME"`
		ApplySchema     bool   `yaml:"apply_schema" env:"DB_APPLY_SCHEMA"`
		SeedDemo        bool   `yaml:"seed_demo" env:"DB_SEED_DEMO"`
	} `yaml:"database"`

	Logging struct {
		Level  string `yaml:"level" env:"LOG_LEVEL"`
		Format string `yaml:"format" env:"LOG_FORMAT"`
	} `yaml:"logging"`

	Reports struct {
		DefaultTopPrograms    int `yaml:"default_top_programs" env:"REPORTS_DEFAULT_TOP_PROGRAMS"`
		DefaultUpcomingMonths int `yaml:"default_upcoming_months" env:"REPORTS_DEFAULT_UPCOMING_MONTHS"`
	} `yaml:"reports"`
}

// LoadConfig loads configuration from a file and environment variables.
// A .env file next to the working directory is loaded first; variables
// already present in the environment win over it.
func LoadConfig(configPath string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	config := &Config{}
	setDefaults(config)

	if _, err := os.Stat(configPath); err == nil {
		file, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		if err := yaml.Unmarshal(file, config); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	if err := loadFromEnv(config); err != nil {
		return nil, fmt.Errorf("failed to load from environment: %w", err)
	}

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// setDefaults sets default values for the configuration
func setDefaults(config *Config) {
	config.Server.Port = "8000"
	config.Server.Mode = "development"
	config.Server.ReadTimeout = "10s"
	config.Server.WriteTimeout = "10s"

	config.Database.Driver = "postgres"
	config.Database.Host = "localhost"
	config.Database.Port = "5432"
	config.Database.User = "postgres"
	config.Database.Password = "postgres"
	config.Database.DBName = "ssms"
	config.Database.SSLMode = "disable"
	config.Database.MinConns = 2
	config.Database.MaxConns = 10
	config.Database.ConnMaxLifetime = "1h"
	config.Database.ApplySchema = true

	config.Logging.Level = "info"
	config.Logging.Format = "json"

	config.Reports.DefaultTopPrograms = 5
	config.Reports.DefaultUpcomingMonths = 18
}

// loadFromEnv overrides configuration with environment variables
func loadFromEnv(config *Config) error {
	return processStructFields(config)
}

// validateConfig ensures that the configuration is valid
func validateConfig(config *Config) error {
	if config.Database.Driver != "postgres" {
		return fmt.Errorf("unsupported database driver %q", config.Database.Driver)
	}

	if config.Database.Host == "" {
		return fmt.Errorf("database host is required")
	}

	if config.Database.MaxConns <= 0 {
		return fmt.Errorf("database max_conns must be positive")
	}

	if config.Database.MinConns < 0 || config.Database.MinConns > config.Database.MaxConns {
		return fmt.Errorf("database min_conns must be between 0 and max_conns")
	}

	for name, value := range map[string]string{
		"database conn_max_lifetime": config.Database.ConnMaxLifetime,
		"server read_timeout":        config.Server.ReadTimeout,
		"server write_timeout":       config.Server.WriteTimeout,
	} {
		if _, err := time.ParseDuration(value); err != nil {
			return fmt.Errorf("invalid %s format: %w", name, err)
		}
	}

	if config.Reports.DefaultTopPrograms < 1 {
		return fmt.Errorf("reports default_top_programs must be at least 1")
	}

	if config.Reports.DefaultUpcomingMonths < 0 {
		return fmt.Errorf("reports default_upcoming_months cannot be negative")
	}

	return nil
}

// GetPostgresConnectionString returns postgres connection string
func (c *Config) GetPostgresConnectionString() string {
	sslMode := c.Database.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}

	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.DBName,
		sslMode,
	)
}

// ReadTimeout returns the parsed server read timeout
func (c *Config) ReadTimeout() time.Duration {
	return helpers.ParseDuration(c.Server.ReadTimeout, 10*time.Second)
}

// WriteTimeout returns the parsed server write timeout
func (c *Config) WriteTimeout() time.Duration {
	return helpers.ParseDuration(c.Server.WriteTimeout, 10*time.Second)
}
