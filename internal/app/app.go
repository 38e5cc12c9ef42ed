// Package app assembles the lookup pipeline from configuration.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	kafkaadapter "github.com/couchcryptid/clima/internal/adapter/kafka"
	"github.com/couchcryptid/clima/internal/adapter/openmeteo"
	"github.com/couchcryptid/clima/internal/cache"
	"github.com/couchcryptid/clima/internal/config"
	"github.com/couchcryptid/clima/internal/observability"
	"github.com/couchcryptid/clima/internal/store"
	"github.com/couchcryptid/clima/internal/weather"
)

// Store is a cache store that can report readiness.
type Store interface {
	cache.Store
	CheckReadiness(ctx context.Context) error
}

// App holds the wired components shared by the commands.
type App struct {
	Store   Store
	Weather *weather.Client

	closers []io.Closer
}

// New builds the store, Open-Meteo client, cache, optional Kafka publisher,
// and weather client described by cfg.
func New(cfg *config.Config, logger *slog.Logger, metrics *observability.Metrics) (*App, error) {
	a := &App{}

	switch cfg.CacheBackend {
	case config.CacheBackendSQLite:
		s, err := store.NewSQLite(cfg.CachePath)
		if err != nil {
			return nil, fmt.Errorf("open cache store: %w", err)
		}
		a.Store = s
		a.closers = append(a.closers, s)
		logger.Info("sqlite cache store opened", "path", cfg.CachePath)
	default:
		a.Store = store.NewMemory(cfg.CacheMaxEntries)
		logger.Info("memory cache store enabled", "max_entries", cfg.CacheMaxEntries)
	}

	provider := openmeteo.NewClient(openmeteo.Options{
		GeocodingURL: cfg.GeocodingURL,
		ForecastURL:  cfg.ForecastURL,
		Language:     cfg.GeocodingLanguage,
		Timeout:      cfg.Timeout,
		RateLimit:    cfg.RateLimit,
		Burst:        cfg.Burst,
	}, logger, metrics)

	opts := []weather.Option{
		weather.WithLogger(logger),
		weather.WithMetrics(metrics),
		weather.WithLocale(cfg.DisplayLocale),
	}

	// Result publishing is feature-flagged via KAFKA_BROKERS.
	if cfg.KafkaEnabled() {
		publisher := kafkaadapter.NewPublisher(cfg.KafkaBrokers, cfg.KafkaTopic, nil, logger)
		a.closers = append(a.closers, publisher)
		opts = append(opts, weather.WithPublisher(publisher))
		logger.Info("kafka publishing enabled", "brokers", cfg.KafkaBrokers, "topic", cfg.KafkaTopic)
	} else {
		logger.Info("kafka publishing disabled")
	}

	c := cache.New(a.Store, nil, logger, metrics)
	a.Weather = weather.NewClient(provider, provider, c, opts...)
	return a, nil
}

// Close releases the store and publisher.
func (a *App) Close() error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i].Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
