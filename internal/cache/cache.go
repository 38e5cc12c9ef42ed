// Package cache keeps recent weather lookups in a key-value store for
// domain.CacheTTL, keyed by normalized city name.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/jonboulle/clockwork"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"

	"github.com/couchcryptid/clima/internal/domain"
	"github.com/couchcryptid/clima/internal/observability"
)

// KeyPrefix namespaces widget entries inside a shared store.
const KeyPrefix = "clima-"

// Store is the key-value collaborator behind the cache.
type Store interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
}

// Entry is the serialized shape of a cached lookup.
type Entry struct {
	StoredAtMillis int64                `json:"storedAtMillis"`
	Payload        domain.WeatherResult `json:"payload"`
}

// Cache stores WeatherResults with a fixed time-to-live.
type Cache struct {
	store   Store
	clock   clockwork.Clock
	ttl     int64 // milliseconds
	logger  *slog.Logger
	metrics *observability.Metrics
}

// New creates a Cache over store. A nil clock uses real time.
func New(store Store, clock clockwork.Clock, logger *slog.Logger, metrics *observability.Metrics) *Cache {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Cache{
		store:   store,
		clock:   clock,
		ttl:     domain.CacheTTL.Milliseconds(),
		logger:  logger.With("component", "cache"),
		metrics: metrics,
	}
}

// Key derives the cache key for a city name: the prefix plus the NFC-normalized,
// trimmed, lowercased name. Names differing only in case, surrounding
// whitespace, or Unicode composition share a key.
func Key(city string) string {
	// Casers are stateful and must not be shared between goroutines.
	return KeyPrefix + cases.Lower(language.Und).String(norm.NFC.String(strings.TrimSpace(city)))
}

// Get returns the cached result for city. Missing, undecodable, and expired
// entries all report false.
func (c *Cache) Get(ctx context.Context, city string) (domain.WeatherResult, bool) {
	key := Key(city)

	raw, ok, err := c.store.Get(ctx, key)
	if err != nil {
		c.logger.Warn("cache read failed", "key", key, "error", err)
		c.count("miss")
		return domain.WeatherResult{}, false
	}
	if !ok {
		c.count("miss")
		return domain.WeatherResult{}, false
	}

	entry, err := decodeEntry(raw)
	if err != nil {
		c.logger.Debug("ignoring cache entry", "key", key, "error", err)
		c.count("corrupt")
		return domain.WeatherResult{}, false
	}

	if c.clock.Now().UnixMilli()-entry.StoredAtMillis >= c.ttl {
		c.count("stale")
		return domain.WeatherResult{}, false
	}

	c.count("hit")
	return entry.Payload, true
}

// Put stores result for city, replacing any previous entry.
func (c *Cache) Put(ctx context.Context, city string, result domain.WeatherResult) error {
	data, err := json.Marshal(Entry{
		StoredAtMillis: c.clock.Now().UnixMilli(),
		Payload:        result,
	})
	if err != nil {
		return fmt.Errorf("encode cache entry: %w", err)
	}
	if err := c.store.Set(ctx, Key(city), string(data)); err != nil {
		if c.metrics != nil {
			c.metrics.CacheWriteErr.Inc()
		}
		return fmt.Errorf("write cache entry: %w", err)
	}
	return nil
}

func decodeEntry(raw string) (Entry, error) {
	var entry Entry
	if err := json.Unmarshal([]byte(raw), &entry); err != nil {
		return Entry{}, fmt.Errorf("%w: %v", domain.ErrCacheCorrupt, err)
	}
	if entry.StoredAtMillis <= 0 {
		return Entry{}, fmt.Errorf("%w: missing storedAtMillis", domain.ErrCacheCorrupt)
	}
	if err := validatePayload(entry.Payload); err != nil {
		return Entry{}, fmt.Errorf("%w: %v", domain.ErrCacheCorrupt, err)
	}
	return entry, nil
}

// validatePayload rejects results FetchWeather could never have produced.
func validatePayload(r domain.WeatherResult) error {
	switch {
	case r.Icon == "":
		return errors.New("missing icon")
	case r.Location.Name == "":
		return errors.New("missing location name")
	case len(r.Forecast) < 1 || len(r.Forecast) > domain.ForecastDays:
		return fmt.Errorf("forecast has %d entries", len(r.Forecast))
	}
	return nil
}

func (c *Cache) count(result string) {
	if c.metrics != nil {
		c.metrics.CacheLookups.WithLabelValues(result).Inc()
	}
}
