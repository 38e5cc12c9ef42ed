package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
	"golang.org/x/text/language"

	"github.com/couchcryptid/clima/internal/adapter/openmeteo"
)

// Cache backends.
const (
	CacheBackendMemory = "memory"
	CacheBackendSQLite = "sqlite"
)

// Config holds all service settings, populated from environment variables
// and an optional config file named by CONFIG_FILE.
type Config struct {
	HTTPAddr        string
	LogLevel        string
	LogFormat       string
	ShutdownTimeout time.Duration

	DisplayLocale     string
	GeocodingLanguage string

	// Open-Meteo configuration.
	GeocodingURL string
	ForecastURL  string
	Timeout      time.Duration
	RateLimit    float64
	Burst        int

	CacheBackend    string
	CachePath       string
	CacheMaxEntries int

	// Kafka publishing is enabled when KafkaBrokers is non-empty.
	KafkaBrokers []string
	KafkaTopic   string
}

var defaults = map[string]any{
	"HTTP_ADDR":               ":8080",
	"LOG_LEVEL":               "info",
	"LOG_FORMAT":              "json",
	"SHUTDOWN_TIMEOUT":        "10s",
	"DISPLAY_LOCALE":          "pt-BR",
	"GEOCODING_LANGUAGE":      "pt",
	"OPENMETEO_GEOCODING_URL": openmeteo.DefaultGeocodingURL,
	"OPENMETEO_FORECAST_URL":  openmeteo.DefaultForecastURL,
	"OPENMETEO_TIMEOUT":       "10s",
	"OPENMETEO_RATE_LIMIT":    "5",
	"OPENMETEO_BURST":         "10",
	"CACHE_BACKEND":           CacheBackendMemory,
	"CACHE_PATH":              "clima-cache.db",
	"CACHE_MAX_ENTRIES":       "500",
	"KAFKA_BROKERS":           "",
	"KAFKA_TOPIC":             "weather-lookups",
}

// Load reads configuration, applying defaults where unset. Environment
// variables take precedence over the config file.
func Load() (*Config, error) {
	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("bind %s: %w", key, err)
		}
	}

	if err := v.BindEnv("CONFIG_FILE"); err != nil {
		return nil, fmt.Errorf("bind CONFIG_FILE: %w", err)
	}
	if path := v.GetString("CONFIG_FILE"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read CONFIG_FILE %s: %w", path, err)
		}
	}

	shutdownTimeout, err := parsePositiveDuration(v, "SHUTDOWN_TIMEOUT")
	if err != nil {
		return nil, err
	}
	timeout, err := parsePositiveDuration(v, "OPENMETEO_TIMEOUT")
	if err != nil {
		return nil, err
	}
	rateLimit, err := strconv.ParseFloat(v.GetString("OPENMETEO_RATE_LIMIT"), 64)
	if err != nil || rateLimit < 0 {
		return nil, errors.New("invalid OPENMETEO_RATE_LIMIT")
	}
	burst, err := parsePositiveInt(v, "OPENMETEO_BURST")
	if err != nil {
		return nil, err
	}
	maxEntries, err := parsePositiveInt(v, "CACHE_MAX_ENTRIES")
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		HTTPAddr:          v.GetString("HTTP_ADDR"),
		LogLevel:          v.GetString("LOG_LEVEL"),
		LogFormat:         v.GetString("LOG_FORMAT"),
		ShutdownTimeout:   shutdownTimeout,
		DisplayLocale:     v.GetString("DISPLAY_LOCALE"),
		GeocodingLanguage: v.GetString("GEOCODING_LANGUAGE"),
		GeocodingURL:      v.GetString("OPENMETEO_GEOCODING_URL"),
		ForecastURL:       v.GetString("OPENMETEO_FORECAST_URL"),
		Timeout:           timeout,
		RateLimit:         rateLimit,
		Burst:             burst,
		CacheBackend:      strings.ToLower(v.GetString("CACHE_BACKEND")),
		CachePath:         v.GetString("CACHE_PATH"),
		CacheMaxEntries:   maxEntries,
		KafkaBrokers:      parseBrokers(v.GetString("KAFKA_BROKERS")),
		KafkaTopic:        v.GetString("KAFKA_TOPIC"),
	}

	if _, err := language.Parse(cfg.DisplayLocale); err != nil {
		return nil, fmt.Errorf("invalid DISPLAY_LOCALE %q", cfg.DisplayLocale)
	}
	switch cfg.CacheBackend {
	case CacheBackendMemory:
	case CacheBackendSQLite:
		if cfg.CachePath == "" {
			return nil, errors.New("CACHE_PATH is required when CACHE_BACKEND is sqlite")
		}
	default:
		return nil, fmt.Errorf("invalid CACHE_BACKEND %q", cfg.CacheBackend)
	}
	if cfg.GeocodingURL == "" {
		return nil, errors.New("OPENMETEO_GEOCODING_URL is required")
	}
	if cfg.ForecastURL == "" {
		return nil, errors.New("OPENMETEO_FORECAST_URL is required")
	}
	if cfg.KafkaEnabled() && cfg.KafkaTopic == "" {
		return nil, errors.New("KAFKA_TOPIC is required when KAFKA_BROKERS is set")
	}

	return cfg, nil
}

// KafkaEnabled reports whether fresh results should be published.
func (c *Config) KafkaEnabled() bool {
	return len(c.KafkaBrokers) > 0
}

func parsePositiveDuration(v *viper.Viper, key string) (time.Duration, error) {
	d, err := time.ParseDuration(v.GetString(key))
	if err != nil || d <= 0 {
		return 0, fmt.Errorf("invalid %s", key)
	}
	return d, nil
}

func parsePositiveInt(v *viper.Viper, key string) (int, error) {
	n, err := strconv.Atoi(v.GetString(key))
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("invalid %s", key)
	}
	return n, nil
}

func parseBrokers(s string) []string {
	var brokers []string
	for _, b := range strings.Split(s, ",") {
		if b = strings.TrimSpace(b); b != "" {
			brokers = append(brokers, b)
		}
	}
	return brokers
}
