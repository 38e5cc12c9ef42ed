// Package weather resolves a city name to a shaped WeatherResult, consulting
// the cache before calling the geocoding and forecast providers.
package weather

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/couchcryptid/clima/internal/domain"
	"github.com/couchcryptid/clima/internal/observability"
)

// ResultCache is the cache the client reads through. *cache.Cache implements it.
type ResultCache interface {
	Get(ctx context.Context, city string) (domain.WeatherResult, bool)
	Put(ctx context.Context, city string, result domain.WeatherResult) error
}

// Publisher receives every freshly fetched result. Cache hits are not published.
type Publisher interface {
	Publish(ctx context.Context, city string, result domain.WeatherResult) error
}

// Option configures a Client.
type Option func(*Client)

// WithLogger sets the client logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) { c.logger = logger }
}

// WithMetrics enables lookup outcome counters.
func WithMetrics(m *observability.Metrics) Option {
	return func(c *Client) { c.metrics = m }
}

// WithLocale sets the BCP 47 locale used for the display time.
func WithLocale(locale string) Option {
	return func(c *Client) { c.locale = locale }
}

// WithPublisher forwards fresh results to p.
func WithPublisher(p Publisher) Option {
	return func(c *Client) { c.publisher = p }
}

// Client implements the lookup pipeline.
type Client struct {
	geocoder   domain.Geocoder
	forecaster domain.Forecaster
	cache      ResultCache
	publisher  Publisher
	locale     string
	logger     *slog.Logger
	metrics    *observability.Metrics
}

// NewClient creates a Client.
func NewClient(geocoder domain.Geocoder, forecaster domain.Forecaster, cache ResultCache, opts ...Option) *Client {
	c := &Client{
		geocoder:   geocoder,
		forecaster: forecaster,
		cache:      cache,
		locale:     domain.DefaultLocale,
		logger:     observability.DiscardLogger(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.logger = c.logger.With("component", "weather")
	return c
}

// FetchWeather returns the weather for city, from the cache when a fresh
// entry exists. Errors are domain.ErrInvalidInput, domain.ErrCityNotFound,
// domain.ErrWeatherDataUnavailable, or a *domain.NetworkError.
func (c *Client) FetchWeather(ctx context.Context, city string) (domain.WeatherResult, error) {
	city = strings.TrimSpace(city)
	if city == "" {
		c.count("invalid")
		return domain.WeatherResult{}, domain.ErrInvalidInput
	}

	if cached, ok := c.cache.Get(ctx, city); ok {
		c.logger.DebugContext(ctx, "cache hit", "city", city)
		c.count("cached")
		return cached, nil
	}

	result, err := c.resolve(ctx, city)
	if err != nil {
		c.count(outcome(err))
		return domain.WeatherResult{}, err
	}

	if err := c.cache.Put(ctx, city, result); err != nil {
		c.logger.WarnContext(ctx, "cache write failed", "city", city, "error", err)
	}
	if c.publisher != nil {
		if err := c.publisher.Publish(ctx, city, result); err != nil {
			c.logger.WarnContext(ctx, "publish failed", "city", city, "error", err)
			if c.metrics != nil {
				c.metrics.PublishErrors.Inc()
			}
		}
	}

	c.logger.InfoContext(ctx, "weather fetched",
		"city", city,
		"location", result.Location.Name,
		"country", result.Location.Country,
		"icon", result.Icon,
	)
	c.count("fresh")
	return result, nil
}

// resolve geocodes city and fetches its forecast.
func (c *Client) resolve(ctx context.Context, city string) (domain.WeatherResult, error) {
	locations, err := c.geocoder.Search(ctx, city)
	if err != nil {
		return domain.WeatherResult{}, asNetworkError("geocode", err)
	}
	if len(locations) == 0 {
		return domain.WeatherResult{}, domain.ErrCityNotFound
	}
	loc := locations[0]

	report, err := c.forecaster.Forecast(ctx, loc.Latitude, loc.Longitude)
	if err != nil {
		return domain.WeatherResult{}, asNetworkError("forecast", err)
	}

	return Shape(loc, report, c.locale)
}

// Shape builds a WeatherResult from a location and its forecast. The first
// domain.ForecastDays daily entries are zipped by index.
func Shape(loc domain.Location, report domain.ForecastReport, locale string) (domain.WeatherResult, error) {
	if report.Current == nil {
		return domain.WeatherResult{}, fmt.Errorf("%w: missing current conditions", domain.ErrWeatherDataUnavailable)
	}
	if report.Daily == nil {
		return domain.WeatherResult{}, fmt.Errorf("%w: missing daily forecast", domain.ErrWeatherDataUnavailable)
	}

	forecast, err := zipDaily(report.Daily, domain.ForecastDays)
	if err != nil {
		return domain.WeatherResult{}, err
	}

	current := *report.Current
	return domain.WeatherResult{
		Location:    loc,
		Current:     current,
		Icon:        domain.IconForCode(current.WeatherCode),
		DisplayTime: domain.FormatDisplayTimestamp(current.ObservedAt, locale),
		Forecast:    forecast,
	}, nil
}

func zipDaily(d *domain.DailySeries, n int) ([]domain.DailyForecastEntry, error) {
	series := []struct {
		name string
		len  int
	}{
		{"time", len(d.Dates)},
		{"temperature_2m_max", len(d.TempMaxC)},
		{"temperature_2m_min", len(d.TempMinC)},
		{"precipitation_sum", len(d.PrecipitationMm)},
		{"relative_humidity_2m_max", len(d.HumidityPct)},
		{"weathercode", len(d.WeatherCodes)},
	}
	for _, s := range series {
		if s.len < n {
			return nil, fmt.Errorf("%w: daily %s has %d entries, need %d", domain.ErrWeatherDataUnavailable, s.name, s.len, n)
		}
	}

	entries := make([]domain.DailyForecastEntry, n)
	for i := range n {
		entries[i] = domain.DailyForecastEntry{
			Date:            d.Dates[i],
			TempMaxC:        d.TempMaxC[i],
			TempMinC:        d.TempMinC[i],
			PrecipitationMm: d.PrecipitationMm[i],
			HumidityPct:     d.HumidityPct[i],
			WeatherCode:     d.WeatherCodes[i],
		}
	}
	return entries, nil
}

func asNetworkError(op string, err error) error {
	if errors.Is(err, domain.ErrNetwork) {
		return err
	}
	return &domain.NetworkError{Op: op, Err: err}
}

func outcome(err error) string {
	switch {
	case errors.Is(err, domain.ErrCityNotFound):
		return "not_found"
	case errors.Is(err, domain.ErrWeatherDataUnavailable):
		return "unavailable"
	case errors.Is(err, domain.ErrNetwork):
		return "network"
	default:
		return "error"
	}
}

func (c *Client) count(outcome string) {
	if c.metrics != nil {
		c.metrics.Lookups.WithLabelValues(outcome).Inc()
	}
}
