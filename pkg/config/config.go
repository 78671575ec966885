package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Session backends
const (
	SessionBackendFile   = "file"
	SessionBackendRedis  = "redis"
	SessionBackendMemory = "memory"
)

// Config holds all application configuration
type Config struct {
	App     AppConfig
	Search  SearchConfig
	Booking BookingConfig
	Session SessionConfig
	Redis   RedisConfig
	OTEL    OTELConfig
}

// AppConfig holds process-wide settings
type AppConfig struct {
	Name     string
	Env      string
	LogLevel string
}

// SearchConfig holds the map view radius settings
type SearchConfig struct {
	DefaultRadiusMiles float64
	MinRadiusMiles     float64
	MaxRadiusMiles     float64
}

// BookingConfig holds appointment window settings
type BookingConfig struct {
	WindowDays       int
	RecentDays       int
	RecentMedication int
}

// SessionConfig selects where the signed-in session is kept
type SessionConfig struct {
	Backend string
	Path    string
	Name    string
	TTL     time.Duration
}

// RedisConfig holds Redis configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

// OTELConfig holds OpenTelemetry configuration
type OTELConfig struct {
	ServiceName    string
	ServiceVersion string
	Endpoint       string
	Enabled        bool
}

var defaults = map[string]interface{}{
	"APP_NAME":                    "medibook",
	"APP_ENV":                     "development",
	"LOG_LEVEL":                   "warn",
	"SEARCH_DEFAULT_RADIUS_MILES": 10.0,
	"SEARCH_MIN_RADIUS_MILES":     1.0,
	"SEARCH_MAX_RADIUS_MILES":     50.0,
	"BOOKING_WINDOW_DAYS":         30,
	"BOOKING_RECENT_DAYS":         30,
	"BOOKING_RECENT_MEDICATIONS":  3,
	"SESSION_BACKEND":             SessionBackendFile,
	"SESSION_PATH":                defaultSessionPath(),
	"SESSION_NAME":                "default",
	"SESSION_TTL":                 "720h",
	"REDIS_HOST":                  "localhost",
	"REDIS_PORT":                  6379,
	"REDIS_PASSWORD":              "",
	"REDIS_DB":                    0,
	"OTEL_ENABLED":                false,
	"OTEL_SERVICE_NAME":           "medibook",
	"OTEL_SERVICE_VERSION":        "1.0.0",
	"OTEL_EXPORTER_OTLP_ENDPOINT": "localhost:4317",
}

// Load reads configuration from the environment and an optional .env file in
// the working directory.
func Load() (*Config, error) {
	return load(".env", true)
}

// LoadFile reads configuration from the environment and the dotenv file at
// path, which must exist. Environment variables win over the file.
func LoadFile(path string) (*Config, error) {
	return load(path, false)
}

func load(path string, optional bool) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("env")
	v.AutomaticEnv()

	for key, value := range defaults {
		v.SetDefault(key, value)
		_ = v.BindEnv(key)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		missing := errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist)
		if !optional || !missing {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}

	ttl, err := time.ParseDuration(v.GetString("SESSION_TTL"))
	if err != nil {
		return nil, fmt.Errorf("invalid SESSION_TTL: %w", err)
	}

	cfg := &Config{
		App: AppConfig{
			Name:     v.GetString("APP_NAME"),
			Env:      v.GetString("APP_ENV"),
			LogLevel: v.GetString("LOG_LEVEL"),
		},
		Search: SearchConfig{
			DefaultRadiusMiles: v.GetFloat64("SEARCH_DEFAULT_RADIUS_MILES"),
			MinRadiusMiles:     v.GetFloat64("SEARCH_MIN_RADIUS_MILES"),
			MaxRadiusMiles:     v.GetFloat64("SEARCH_MAX_RADIUS_MILES"),
		},
		Booking: BookingConfig{
			WindowDays:       v.GetInt("BOOKING_WINDOW_DAYS"),
			RecentDays:       v.GetInt("BOOKING_RECENT_DAYS"),
			RecentMedication: v.GetInt("BOOKING_RECENT_MEDICATIONS"),
		},
		Session: SessionConfig{
			Backend: strings.ToLower(v.GetString("SESSION_BACKEND")),
			Path:    v.GetString("SESSION_PATH"),
			Name:    v.GetString("SESSION_NAME"),
			TTL:     ttl,
		},
		Redis: RedisConfig{
			Host:     v.GetString("REDIS_HOST"),
			Port:     v.GetInt("REDIS_PORT"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
		},
		OTEL: OTELConfig{
			ServiceName:    v.GetString("OTEL_SERVICE_NAME"),
			ServiceVersion: v.GetString("OTEL_SERVICE_VERSION"),
			Endpoint:       v.GetString("OTEL_EXPORTER_OTLP_ENDPOINT"),
			Enabled:        v.GetBool("OTEL_ENABLED"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks cross-field constraints
func (c *Config) Validate() error {
	switch c.Session.Backend {
	case SessionBackendFile, SessionBackendRedis, SessionBackendMemory:
	default:
		return fmt.Errorf("unknown SESSION_BACKEND %q", c.Session.Backend)
	}
	if c.Search.MinRadiusMiles > c.Search.MaxRadiusMiles {
		return fmt.Errorf("SEARCH_MIN_RADIUS_MILES exceeds SEARCH_MAX_RADIUS_MILES")
	}
	if c.Booking.WindowDays <= 0 {
		return fmt.Errorf("BOOKING_WINDOW_DAYS must be positive")
	}
	return nil
}

// IsDevelopment reports whether the app runs in development mode
func (c *AppConfig) IsDevelopment() bool {
	return c.Env == "development"
}

// ClampRadius bounds a radius to the configured slider range
func (c *SearchConfig) ClampRadius(miles float64) float64 {
	if miles < c.MinRadiusMiles {
		return c.MinRadiusMiles
	}
	if miles > c.MaxRadiusMiles {
		return c.MaxRadiusMiles
	}
	return miles
}

// RedisAddr returns the Redis address
func (c *RedisConfig) RedisAddr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

func defaultSessionPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".medibook", "session.json")
	}
	return filepath.Join(home, ".medibook", "session.json")
}
