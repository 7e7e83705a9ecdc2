package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server    ServerConfig
	Log       LogConfig
	OpenMeteo OpenMeteoConfig
	App       AppConfig
	Storage   StorageConfig
}

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Port    int
	GinMode string // debug, release, test
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string // debug, info, warn, error
	Format string // json, text
}

// OpenMeteoConfig holds the upstream API settings
type OpenMeteoConfig struct {
	GeocodingURL      string
	ForecastURL       string
	Timeout           time.Duration
	RequestsPerSecond float64 // 0 disables rate limiting
	Burst             int
}

// AppConfig holds application-specific configuration
type AppConfig struct {
	DefaultCity    string
	TimezoneLookup bool // resolve time zones from coordinates when the provider's zone is unknown
}

// StorageConfig selects where the last searched city is kept
type StorageConfig struct {
	Driver        string // sqlite, redis, memory
	Path          string
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	RedisPrefix   string
}

// Load reads configuration from .env, the config file and environment variables
func Load() (*Config, error) {
	// A missing .env is the normal case outside local development
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	v := viper.New()

	// Set config file name and paths
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("$HOME/.medi-weather")

	setDefaults(v)

	// Read from environment variables, e.g. MEDI_WEATHER_STORAGE_DRIVER
	v.SetEnvPrefix("MEDI_WEATHER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		// It's okay if config file doesn't exist, we have defaults
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.ginmode", "release")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("openmeteo.geocodingurl", "https://geocoding-api.open-meteo.com/v1/search")
	v.SetDefault("openmeteo.forecasturl", "https://api.open-meteo.com/v1/forecast")
	v.SetDefault("openmeteo.timeout", 10*time.Second)
	v.SetDefault("openmeteo.requestspersecond", 5.0)
	v.SetDefault("openmeteo.burst", 5)
	v.SetDefault("app.defaultcity", "Sao Paulo")
	v.SetDefault("app.timezonelookup", true)
	v.SetDefault("storage.driver", "sqlite")
	v.SetDefault("storage.path", "medi-weather.db")
	v.SetDefault("storage.redisaddr", "localhost:6379")
	v.SetDefault("storage.redispassword", "")
	v.SetDefault("storage.redisdb", 0)
	v.SetDefault("storage.redisprefix", "medi-weather:")
}

// Validate checks values that would otherwise fail later at startup
func (c *Config) Validate() error {
	switch strings.ToLower(c.Storage.Driver) {
	case "sqlite", "redis", "memory":
	default:
		return fmt.Errorf("unsupported storage driver %q", c.Storage.Driver)
	}
	if strings.TrimSpace(c.App.DefaultCity) == "" {
		return errors.New("app.defaultCity must not be empty")
	}
	if c.OpenMeteo.RequestsPerSecond < 0 {
		return errors.New("openmeteo.requestsPerSecond must not be negative")
	}
	return nil
}

// GetServerAddr returns the server address in the format ":port"
func (c *Config) GetServerAddr() string {
	return fmt.Sprintf(":%d", c.Server.Port)
}

// NewLogger creates a new slog.Logger based on the configuration
func (c *Config) NewLogger() *slog.Logger {
	var level slog.Level
	switch strings.ToLower(c.Log.Level) {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn", "warning":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	// Choose handler based on format
	var handler slog.Handler
	switch strings.ToLower(c.Log.Format) {
	case "json":
		handler = slog.NewJSONHandler(os.Stdout, opts)
	default: // "text" or anything else
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	return slog.New(handler)
}
