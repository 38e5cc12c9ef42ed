// Package widget composes the weather client, the renderer and the theme
// state into the interactive view served by the UI surface.
package widget

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/couchcryptid/clima/internal/domain"
	"github.com/couchcryptid/clima/internal/observability"
	"github.com/couchcryptid/clima/internal/render"
)

// Fetcher resolves a city to its weather. *weather.Client implements it.
type Fetcher interface {
	FetchWeather(ctx context.Context, city string) (domain.WeatherResult, error)
}

// View is a snapshot of what the widget displays.
type View struct {
	render.Page
	// Err is the lookup error behind Page.Error, for status mapping.
	Err error
	// Superseded is set when a newer submission was issued while this one was
	// in flight. Its response was discarded and the view shows the current state.
	Superseded bool
}

// Widget holds the displayed state. It is safe for concurrent use.
type Widget struct {
	fetcher Fetcher
	locale  string
	labels  render.Labels
	logger  *slog.Logger
	metrics *observability.Metrics

	mu           sync.Mutex
	seq          uint64
	presentation domain.PresentationState
	theme        domain.Theme
	city         string
	result       *domain.WeatherResult
	message      string
	errMsg       string
	err          error
}

// New creates a Widget that renders dates and text for locale.
func New(fetcher Fetcher, locale string, logger *slog.Logger, metrics *observability.Metrics) *Widget {
	return &Widget{
		fetcher: fetcher,
		locale:  locale,
		labels:  render.LabelsFor(locale),
		logger:  logger.With("component", "widget"),
		metrics: metrics,
		theme:   domain.ThemeDay,
	}
}

// Submit looks up city and applies the outcome unless a newer submission was
// made in the meantime.
func (w *Widget) Submit(ctx context.Context, city string) View {
	city = strings.TrimSpace(city)
	requestID := uuid.NewString()
	logger := w.logger.With("request_id", requestID, "city", city)

	w.mu.Lock()
	w.seq++
	seq := w.seq
	w.city = city
	w.err = nil
	w.errMsg = ""
	if city == "" {
		w.result = nil
		w.message = w.labels.TypeCity
		w.err = domain.ErrInvalidInput
		v := w.viewLocked()
		w.mu.Unlock()
		return v
	}
	w.message = w.labels.Searching
	w.mu.Unlock()

	logger.Debug("lookup submitted", "seq", seq)
	result, err := w.fetcher.FetchWeather(ctx, city)

	w.mu.Lock()
	defer w.mu.Unlock()

	if seq != w.seq {
		logger.Info("discarding superseded response", "seq", seq, "latest", w.seq)
		if w.metrics != nil {
			w.metrics.SupersededSubmissions.Inc()
		}
		v := w.viewLocked()
		v.Superseded = true
		return v
	}

	w.message = ""
	if err != nil {
		logger.Warn("lookup failed", "error", err)
		w.result = nil
		w.err = err
		w.errMsg = w.labels.ErrorMessage(err)
		return w.viewLocked()
	}

	w.result = &result
	w.theme = w.presentation.ResolveTheme(result.Current.IsDay)
	return w.viewLocked()
}

// Lookup fetches and renders city without changing the displayed state.
func (w *Widget) Lookup(ctx context.Context, city string) (render.DisplayModel, error) {
	result, err := w.fetcher.FetchWeather(ctx, city)
	if err != nil {
		return render.DisplayModel{}, err
	}

	w.mu.Lock()
	theme := w.presentation.ResolveTheme(result.Current.IsDay)
	w.mu.Unlock()

	return render.Render(result, theme, w.locale), nil
}

// ToggleTheme flips the manual theme override.
func (w *Widget) ToggleTheme() View {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.presentation, w.theme = w.presentation.Toggle(w.theme)
	if w.metrics != nil {
		w.metrics.ThemeToggles.Inc()
	}
	w.logger.Debug("theme toggled", "theme", w.theme, "override", w.presentation.OverrideActive())
	return w.viewLocked()
}

// Current returns the displayed state.
func (w *Widget) Current() View {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.viewLocked()
}

func (w *Widget) viewLocked() View {
	v := View{
		Page: render.Page{
			Theme:          w.theme,
			OverrideActive: w.presentation.OverrideActive(),
			City:           w.city,
			Message:        w.message,
			Error:          w.errMsg,
			Labels:         w.labels,
		},
		Err: w.err,
	}
	if w.result != nil {
		m := render.Render(*w.result, w.theme, w.locale)
		v.Model = &m
	}
	return v
}

// Message maps a lookup error to the text shown to the user.
func (w *Widget) Message(err error) string {
	return w.labels.ErrorMessage(err)
}
