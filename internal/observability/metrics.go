package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "clima"

// Metrics holds the Prometheus counters and histograms for the lookup pipeline.
type Metrics struct {
	Lookups       *prometheus.CounterVec // labels: outcome={fresh,cached,invalid,not_found,unavailable,network,error}
	CacheLookups  *prometheus.CounterVec // labels: result={hit,miss,stale,corrupt}
	CacheWriteErr prometheus.Counter

	// Provider metrics.
	ProviderRequests *prometheus.CounterVec   // labels: provider={geocode,forecast}, outcome={success,empty,error}
	ProviderDuration *prometheus.HistogramVec // labels: provider={geocode,forecast}

	// Widget metrics.
	SupersededSubmissions prometheus.Counter
	ThemeToggles          prometheus.Counter
	PublishErrors         prometheus.Counter
}

// NewMetrics creates and registers all metrics with the default Prometheus registry.
func NewMetrics() *Metrics {
	m := newMetrics()
	prometheus.MustRegister(
		m.Lookups,
		m.CacheLookups,
		m.CacheWriteErr,
		m.ProviderRequests,
		m.ProviderDuration,
		m.SupersededSubmissions,
		m.ThemeToggles,
		m.PublishErrors,
	)
	return m
}

// NewMetricsForTesting creates unregistered Metrics to avoid
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return newMetrics()
}

func newMetrics() *Metrics {
	return &Metrics{
		Lookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "lookups_total",
			Help:      "Weather lookups by outcome.",
		}, []string{"outcome"}),
		CacheLookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cache_lookups_total",
			Help:      "Cache reads by result.",
		}, []string{"result"}),
		CacheWriteErr: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cache_write_errors_total",
			Help:      "Cache writes rejected by the store.",
		}),
		ProviderRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "provider_requests_total",
			Help:      "Open-Meteo requests by provider and outcome.",
		}, []string{"provider", "outcome"}),
		ProviderDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "provider_request_duration_seconds",
			Help:      "Open-Meteo request duration in seconds.",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}, []string{"provider"}),
		SupersededSubmissions: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "superseded_submissions_total",
			Help:      "Lookup responses discarded because a newer submission was made.",
		}),
		ThemeToggles: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "theme_toggles_total",
			Help:      "Manual theme override toggles.",
		}),
		PublishErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "publish_errors_total",
			Help:      "Fresh results that could not be published.",
		}),
	}
}
