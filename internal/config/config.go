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

// DefaultTokenTTL is the validity window for issued admin tokens.
const DefaultTokenTTL = 7 * 24 * time.Hour

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Listen         string   `yaml:"listen"`
	AllowedOrigins []string `yaml:"allowed-origins"`
}

// DatabaseConfig holds database settings. The DSN is used exactly as
// configured; no database name is forced onto it.
type DatabaseConfig struct {
	DSN string `yaml:"dsn"`
}

// JWTConfig holds token signing settings.
type JWTConfig struct {
	Secret   string        `yaml:"secret"`
	TokenTTL time.Duration `yaml:"token-ttl"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level      string `yaml:"level"`
	File       string `yaml:"file"`
	MaxSizeMB  int    `yaml:"max-size-mb"`
	MaxBackups int    `yaml:"max-backups"`
	MaxAgeDays int    `yaml:"max-age-days"`
}

// Config is the root application configuration.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	JWT      JWTConfig      `yaml:"jwt"`
	Log      LogConfig      `yaml:"log"`
}

// ResolveConfigPath returns the effective config file path, preferring the
// explicit argument, then the CONFIG_PATH environment variable.
func ResolveConfigPath(path string) string {
	trimmed := strings.TrimSpace(path)
	if trimmed != "" {
		return trimmed
	}
	if env := strings.TrimSpace(os.Getenv("CONFIG_PATH")); env != "" {
		return env
	}
	return "config.yaml"
}

// Load reads configuration from the YAML file at path, then applies
// environment overrides. A .env file in the working directory is loaded first
// when present. The config file itself is optional; the JWT secret is not.
func Load(path string) (Config, error) {
	_ = godotenv.Load()

	cfg := defaults()
	data, errRead := os.ReadFile(path)
	if errRead == nil {
		if errParse := yaml.Unmarshal(data, &cfg); errParse != nil {
			return Config{}, fmt.Errorf("config: parse %s: %w", path, errParse)
		}
	} else if !os.IsNotExist(errRead) {
		return Config{}, fmt.Errorf("config: read %s: %w", path, errRead)
	}

	applyEnvOverrides(&cfg)

	if strings.TrimSpace(cfg.JWT.Secret) == "" {
		return Config{}, fmt.Errorf("config: jwt secret is required (set jwt.secret or JWT_SECRET)")
	}
	if cfg.JWT.TokenTTL <= 0 {
		cfg.JWT.TokenTTL = DefaultTokenTTL
	}
	return cfg, nil
}

// defaults returns the baseline configuration.
func defaults() Config {
	return Config{
		Server: ServerConfig{
			Listen:         ":5000",
			AllowedOrigins: []string{"*"},
		},
		Database: DatabaseConfig{
			DSN: "feedbackhq.db",
		},
		JWT: JWTConfig{
			TokenTTL: DefaultTokenTTL,
		},
		Log: LogConfig{
			Level:      "info",
			MaxSizeMB:  50,
			MaxBackups: 5,
			MaxAgeDays: 30,
		},
	}
}

// applyEnvOverrides layers environment variables over file values.
func applyEnvOverrides(cfg *Config) {
	if v := strings.TrimSpace(os.Getenv("LISTEN_ADDR")); v != "" {
		cfg.Server.Listen = v
	} else if port := strings.TrimSpace(os.Getenv("PORT")); port != "" {
		cfg.Server.Listen = ":" + port
	}
	if v := strings.TrimSpace(os.Getenv("ALLOWED_ORIGINS")); v != "" {
		parts := strings.Split(v, ",")
		origins := make([]string, 0, len(parts))
		for _, part := range parts {
			if origin := strings.TrimSpace(part); origin != "" {
				origins = append(origins, origin)
			}
		}
		if len(origins) > 0 {
			cfg.Server.AllowedOrigins = origins
		}
	}
	if v := strings.TrimSpace(os.Getenv("DATABASE_DSN")); v != "" {
		cfg.Database.DSN = v
	}
	if v := strings.TrimSpace(os.Getenv("JWT_SECRET")); v != "" {
		cfg.JWT.Secret = v
	}
	if v := strings.TrimSpace(os.Getenv("JWT_TOKEN_TTL")); v != "" {
		if ttl, errParse := time.ParseDuration(v); errParse == nil && ttl > 0 {
			cfg.JWT.TokenTTL = ttl
		}
	}
	if v := strings.TrimSpace(os.Getenv("LOG_LEVEL")); v != "" {
		cfg.Log.Level = v
	}
	if v := strings.TrimSpace(os.Getenv("LOG_FILE")); v != "" {
		cfg.Log.File = v
	}
	if v := strings.TrimSpace(os.Getenv("LOG_MAX_SIZE_MB")); v != "" {
		if n, errParse := strconv.Atoi(v); errParse == nil && n > 0 {
			cfg.Log.MaxSizeMB = n
		}
	}
}
