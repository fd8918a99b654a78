package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const envPrefix = "ORDER_WEATHER"

// Config holds all configuration for the application
type Config struct {
	Server    ServerConfig
	Log       LogConfig
	Database  DatabaseConfig
	Geocoding GeocodingConfig
	Forecast  ForecastConfig
	Delivery  DeliveryConfig
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

// DatabaseConfig holds the order store connection settings
type DatabaseConfig struct {
	URL             string        `mapstructure:"url"`
	MaxOpenConns    int           `mapstructure:"max_open_conns"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
}

// GeocodingConfig holds Nominatim client settings
type GeocodingConfig struct {
	BaseURL   string        `mapstructure:"base_url"`
	UserAgent string        `mapstructure:"user_agent"`
	Language  string        `mapstructure:"language"`
	Timeout   time.Duration `mapstructure:"timeout"`
}

// ForecastConfig holds Meteored client settings
type ForecastConfig struct {
	BaseURL   string        `mapstructure:"base_url"`
	APIKey    string        `mapstructure:"api_key"`
	UserAgent string        `mapstructure:"user_agent"`
	Timeout   time.Duration `mapstructure:"timeout"`
}

// DeliveryConfig holds the delivery policy and the area it applies to
type DeliveryConfig struct {
	PrecipitationThreshold float64 `mapstructure:"precipitation_threshold"`
	City                   string  `mapstructure:"city"`
	Country                string  `mapstructure:"country"`
	CountryCode            string  `mapstructure:"country_code"`
	Timezone               string  `mapstructure:"timezone"`
}

// Load reads configuration from .env, the config file and environment variables
func Load() (*Config, error) {
	// .env is optional; values already in the environment win
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	v := viper.New()

	// Set config file name and paths
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("$HOME/.order-weather")

	setDefaults(v)

	// Read from environment variables, e.g. ORDER_WEATHER_DELIVERY_CITY
	v.SetEnvPrefix(envPrefix)
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

	// Unmarshal into config struct
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.ginmode", "release")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("database.url", "")
	v.SetDefault("database.max_open_conns", 10)
	v.SetDefault("database.max_idle_conns", 5)
	v.SetDefault("database.conn_max_lifetime", "30m")

	v.SetDefault("geocoding.base_url", "https://nominatim.openstreetmap.org")
	v.SetDefault("geocoding.user_agent", "order-weather/1.0")
	v.SetDefault("geocoding.language", "es")
	v.SetDefault("geocoding.timeout", "10s")

	v.SetDefault("forecast.base_url", "https://api.meteored.com")
	v.SetDefault("forecast.api_key", "")
	v.SetDefault("forecast.user_agent", "order-weather/1.0")
	v.SetDefault("forecast.timeout", "10s")

	v.SetDefault("delivery.precipitation_threshold", 0.5)
	v.SetDefault("delivery.city", "Santiago")
	v.SetDefault("delivery.country", "Chile")
	v.SetDefault("delivery.country_code", "cl")
	v.SetDefault("delivery.timezone", "America/Santiago")
}

// Validate checks the settings that have no sensible fallback
func (c *Config) Validate() error {
	var errs []error
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		errs = append(errs, fmt.Errorf("server.port %d out of range", c.Server.Port))
	}
	if t := c.Delivery.PrecipitationThreshold; t < 0 || t > 1 {
		errs = append(errs, fmt.Errorf("delivery.precipitation_threshold %v must be within [0,1]", t))
	}
	if strings.TrimSpace(c.Delivery.City) == "" {
		errs = append(errs, errors.New("delivery.city is required"))
	}
	if strings.TrimSpace(c.Delivery.Country) == "" {
		errs = append(errs, errors.New("delivery.country is required"))
	}
	if strings.TrimSpace(c.Delivery.CountryCode) == "" {
		errs = append(errs, errors.New("delivery.country_code is required"))
	}
	if _, err := c.Location(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// Location returns the deployment time zone
func (c *Config) Location() (*time.Location, error) {
	if c.Delivery.Timezone == "" {
		return nil, errors.New("delivery.timezone is required")
	}
	loc, err := time.LoadLocation(c.Delivery.Timezone)
	if err != nil {
		return nil, fmt.Errorf("delivery.timezone: %w", err)
	}
	return loc, nil
}

// GetServerAddr returns the server address in the format ":port"
func (c *Config) GetServerAddr() string {
	return fmt.Sprintf(":%d", c.Server.Port)
}

// NewLogger creates a new slog.Logger based on the configuration
func (c *Config) NewLogger() *slog.Logger {
	return c.NewLoggerTo(os.Stdout)
}

// NewLoggerTo is NewLogger writing to w
func (c *Config) NewLoggerTo(w io.Writer) *slog.Logger {
	// Parse log level
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

	// Create handler options
	opts := &slog.HandlerOptions{
		Level: level,
	}

	// Choose handler based on format
	var handler slog.Handler
	switch strings.ToLower(c.Log.Format) {
	case "json":
		handler = slog.NewJSONHandler(w, opts)
	default: // "text" or anything else
		handler = slog.NewTextHandler(w, opts)
	}

	return slog.New(handler)
}
