package openmeteo

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"github.com/couchcryptid/clima/internal/domain"
	"github.com/couchcryptid/clima/internal/observability"
)

// API Docs: https://open-meteo.com/en/docs/geocoding-api and https://open-meteo.com/en/docs
const (
	DefaultGeocodingURL = "https://geocoding-api.open-meteo.com/v1/search"
	DefaultForecastURL  = "https://api.open-meteo.com/v1/forecast"
)

const (
	providerGeocoding = "geocode"
	providerForecast  = "forecast"
)

// Options configures a Client. Zero values take defaults.
type Options struct {
	GeocodingURL string
	ForecastURL  string
	Language     string        // geocoding result language, e.g. "pt"
	Timeout      time.Duration // per request
	RateLimit    float64       // requests per second shared by both APIs
	Burst        int
}

// Client implements domain.Geocoder and domain.Forecaster against Open-Meteo.
type Client struct {
	httpClient   *http.Client
	geocodingURL string
	forecastURL  string
	language     string
	limiter      *rate.Limiter
	logger       *slog.Logger
	metrics      *observability.Metrics
}

// NewClient creates an Open-Meteo client.
func NewClient(opts Options, logger *slog.Logger, metrics *observability.Metrics) *Client {
	if opts.GeocodingURL == "" {
		opts.GeocodingURL = DefaultGeocodingURL
	}
	if opts.ForecastURL == "" {
		opts.ForecastURL = DefaultForecastURL
	}
	if opts.Timeout <= 0 {
		opts.Timeout = 10 * time.Second
	}
	limit := rate.Inf
	if opts.RateLimit > 0 {
		limit = rate.Limit(opts.RateLimit)
	}
	if opts.Burst < 1 {
		opts.Burst = 1
	}
	return &Client{
		httpClient:   &http.Client{Timeout: opts.Timeout},
		geocodingURL: opts.GeocodingURL,
		forecastURL:  opts.ForecastURL,
		language:     opts.Language,
		limiter:      rate.NewLimiter(limit, opts.Burst),
		logger:       logger.With("component", "openmeteo"),
		metrics:      metrics,
	}
}

// getJSON performs a rate-limited GET and decodes the JSON body into out.
// Every failure is returned as a *domain.NetworkError.
func (c *Client) getJSON(ctx context.Context, provider, fullURL string, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return &domain.NetworkError{Op: provider, Err: fmt.Errorf("rate limit wait canceled: %w", err)}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return &domain.NetworkError{Op: provider, Err: fmt.Errorf("create request: %w", err)}
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	c.observeDuration(provider, time.Since(start))
	if err != nil {
		c.countRequest(provider, "error")
		return &domain.NetworkError{Op: provider, Err: fmt.Errorf("request: %w", err)}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		c.countRequest(provider, "error")
		return &domain.NetworkError{Op: provider, Err: fmt.Errorf("open-meteo API error: status %d: %s", resp.StatusCode, body)}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		c.countRequest(provider, "error")
		return &domain.NetworkError{Op: provider, Err: fmt.Errorf("decode response: %w", err)}
	}
	return nil
}

func (c *Client) countRequest(provider, outcome string) {
	if c.metrics != nil {
		c.metrics.ProviderRequests.WithLabelValues(provider, outcome).Inc()
	}
}

func (c *Client) observeDuration(provider string, d time.Duration) {
	if c.metrics != nil {
		c.metrics.ProviderDuration.WithLabelValues(provider).Observe(d.Seconds())
	}
}
