package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config structure represents the application configuration
type Config struct {
	Server struct {
		Port string `yaml:"port" env:"SERVER_PORT"`
		Mode string `yaml:"mode" env:"SERVER_MODE"`
	} `yaml:"server"`

	Session struct {
		Secret          string `yaml:"secret" env:"SESSION_SECRET"`
		TokenExpiration string `yaml:"token_expiration" env:"SESSION_TOKEN_EXPIRATION"`
		Issuer          string `yaml:"issuer" env:"SESSION_ISSUER"`
	} `yaml:"session"`

	// AI gates the insight collaborator. An empty key is a normal degraded
	// mode: insight requests return the fallback text and no request leaves
	// the process.
	AI struct {
		APIKey  string `yaml:"api_key" env:"GEMINI_API_KEY"`
		Model   string `yaml:"model" env:"GEMINI_MODEL"`
		BaseURL string `yaml:"base_url" env:"GEMINI_BASE_URL"`
	} `yaml:"ai"`

	// Database gates the optional persistence backend. An empty URL keeps all
	// state in memory for the lifetime of the process.
	Database struct {
		URL             string `yaml:"url" env:"DATABASE_URL"`
		MaxIdleConns    int    `yaml:"max_idle_conns" env:"DB_MAX_IDLE_CONNS"`
		MaxOpenConns    int    `yaml:"max_open_conns" env:"DB_MAX_OPEN_CONNS"`
		ConnMaxLifetime string `yaml:"conn_max_lifetime" env:"DB_CONN_MAX_LIFETIME"`
	} `yaml:"database"`

	Logging struct {
		Level  string `yaml:"level" env:"LOG_LEVEL"`
		Format string `yaml:"format" env:"LOG_FORMAT"`
	} `yaml:"logging"`
}

// LoadConfig loads configuration from a file and environment variables
func LoadConfig(configPath string) (*Config, error) {
	// A local .env is optional; absence is not an error.
	_ = godotenv.Load()

	config := &Config{}
	setDefaults(config)

	if _, err := os.Stat(configPath); err == nil {
		file, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		err = yaml.Unmarshal(file, config)
		if err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	// Override with environment variables
	if err := processStructFields(config); err != nil {
		return nil, fmt.Errorf("failed to load from environment: %w", err)
	}

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// setDefaults sets default values for the configuration
func setDefaults(config *Config) {
	config.Server.Port = "8080"
	config.Server.Mode = "development"

	// The session token is a transport for the mock identity, not a security
	// boundary; a default secret keeps zero-config startup working.
	config.Session.Secret = "erasmus-dev-secret"
	config.Session.TokenExpiration = "12h"
	config.Session.Issuer = "erasmus-portal"

	config.AI.Model = "gemini-1.5-flash"
	config.AI.BaseURL = "https://generativelanguage.googleapis.com/v1beta"

	config.Database.MaxIdleConns = 2
	config.Database.MaxOpenConns = 10
	config.Database.ConnMaxLifetime = "1h"

	config.Logging.Level = "info"
	config.Logging.Format = "json"
}

// validateConfig ensures that the configuration is valid
func validateConfig(config *Config) error {
	if config.Server.Port == "" {
		return fmt.Errorf("server port is required")
	}

	if _, err := time.ParseDuration(config.Session.TokenExpiration); err != nil {
		return fmt.Errorf("invalid session token expiration format: %w", err)
	}

	if config.Database.URL != "" {
		if _, err := time.ParseDuration(config.Database.ConnMaxLifetime); err != nil {
			return fmt.Errorf("invalid connection max lifetime format: %w", err)
		}
		if !strings.HasPrefix(config.Database.URL, "postgres://") && !strings.HasPrefix(config.Database.URL, "postgresql://") {
			return fmt.Errorf("database URL must be a postgres connection string")
		}
	}

	return nil
}

// AIConfigured reports whether the insight collaborator has a credential.
func (c *Config) AIConfigured() bool {
	return c.AI.APIKey != ""
}

// DatabaseConfigured reports whether the optional persistence backend is set.
func (c *Config) DatabaseConfigured() bool {
	return c.Database.URL != ""
}
