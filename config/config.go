package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// DefaultDSN points at a sqlite file next to the binary.
const DefaultDSN = "sqlite://app.db"

// Config is the full service configuration.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Log      LogConfig      `yaml:"log"`
}

// ServerConfig controls the HTTP listener.
type ServerConfig struct {
	Port               int      `yaml:"port"`
	GinMode            string   `yaml:"gin_mode"`
	CORSAllowedOrigins []string `yaml:"cors_allowed_origins"`
}

// DatabaseConfig selects the relational store.
type DatabaseConfig struct {
	// URL is either postgres://... or sqlite://<path>.
	URL string `yaml:"url"`
}

// LogConfig controls application logging.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Default returns the configuration used when nothing is set.
func Default() Config {
	return Config{
		Server: ServerConfig{
			Port:    5555,
			GinMode: "release",
		},
		Database: DatabaseConfig{URL: DefaultDSN},
		Log:      LogConfig{Level: "info", Format: "text"},
	}
}

// LoadEnv loads environment variables from .env file
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		slog.Debug(".env file not found, using system environment variables")
	}
}

// GetEnv gets an environment variable or returns a default value if not present
func GetEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// Load builds the configuration from defaults, an optional YAML file and the
// environment, in that order of precedence (environment wins).
func Load(path string) (Config, error) {
	LoadEnv()

	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config file %s: %w", path, err)
		}
	}

	if err := applyEnv(&cfg); err != nil {
		return cfg, err
	}

	return cfg, cfg.Validate()
}

func applyEnv(cfg *Config) error {
	if port, ok := os.LookupEnv("PORT"); ok {
		p, err := strconv.Atoi(port)
		if err != nil {
			return fmt.Errorf("invalid PORT %q: %w", port, err)
		}
		cfg.Server.Port = p
	}

	// DB_URI is accepted for compatibility with older deployments.
	cfg.Database.URL = GetEnv("DB_URI", cfg.Database.URL)
	cfg.Database.URL = GetEnv("DATABASE_URL", cfg.Database.URL)

	cfg.Server.GinMode = GetEnv("GIN_MODE", cfg.Server.GinMode)
	cfg.Log.Level = GetEnv("LOG_LEVEL", cfg.Log.Level)
	cfg.Log.Format = GetEnv("LOG_FORMAT", cfg.Log.Format)

	if origins, ok := os.LookupEnv("CORS_ALLOWED_ORIGINS"); ok {
		cfg.Server.CORSAllowedOrigins = nil
		for _, o := range strings.Split(origins, ",") {
			if o = strings.TrimSpace(o); o != "" {
				cfg.Server.CORSAllowedOrigins = append(cfg.Server.CORSAllowedOrigins, o)
			}
		}
	}
	return nil
}

// Validate reports configuration that cannot be served.
func (c Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("port %d out of range", c.Server.Port)
	}
	if strings.TrimSpace(c.Database.URL) == "" {
		return errors.New("database url cannot be empty")
	}
	return nil
}

// Addr returns the listen address for the HTTP server.
func (c Config) Addr() string {
	return ":" + strconv.Itoa(c.Server.Port)
}
