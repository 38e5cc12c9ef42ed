package http

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/couchcryptid/clima/internal/domain"
	"github.com/couchcryptid/clima/internal/render"
	"github.com/couchcryptid/clima/internal/widget"
)

// ReadinessChecker reports whether the service is ready to serve traffic.
type ReadinessChecker interface {
	CheckReadiness(ctx context.Context) error
}

// Widget is the interactive state behind the page. *widget.Widget implements it.
type Widget interface {
	Submit(ctx context.Context, city string) widget.View
	Lookup(ctx context.Context, city string) (render.DisplayModel, error)
	ToggleTheme() widget.View
	Current() widget.View
	Message(err error) string
}

// Server serves the widget page plus health, readiness, and metrics endpoints.
type Server struct {
	httpServer *http.Server
	widget     Widget
	logger     *slog.Logger
}

// NewServer creates an HTTP server with the page routes and /healthz, /readyz, and /metrics.
// The write timeout covers a full geocode and forecast round trip.
func NewServer(addr string, w Widget, ready ReadinessChecker, logger *slog.Logger) *Server {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	s := &Server{
		httpServer: &http.Server{
			Addr:         addr,
			Handler:      r,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 30 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		widget: w,
		logger: logger.With("component", "http"),
	}

	r.Get("/", s.handlePage)
	r.Get("/weather", s.handleLookup)
	r.Post("/weather", s.handleSubmit)
	r.Post("/theme", s.handleToggleTheme)

	r.Get("/healthz", s.handleHealth)
	r.Get("/readyz", handleReady(ready))
	r.Handle("/metrics", promhttp.Handler())

	return s
}

// Start begins listening. Returns http.ErrServerClosed on graceful shutdown.
func (s *Server) Start() error {
	s.logger.Info("http server starting", "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully drains connections within the given context deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// ServeHTTP delegates to the underlying handler, useful for testing.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.httpServer.Handler.ServeHTTP(w, r)
}

func (s *Server) handlePage(w http.ResponseWriter, _ *http.Request) {
	v := s.widget.Current()
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := render.HTML(w, v.Page); err != nil {
		s.logger.Error("render page failed", "error", err)
	}
}

func (s *Server) handleSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	s.widget.Submit(r.Context(), r.PostForm.Get("city"))
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *Server) handleToggleTheme(w http.ResponseWriter, r *http.Request) {
	s.widget.ToggleTheme()
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *Server) handleLookup(w http.ResponseWriter, r *http.Request) {
	model, err := s.widget.Lookup(r.Context(), r.URL.Query().Get("city"))
	if err != nil {
		status := statusFor(err)
		if status >= http.StatusInternalServerError {
			s.logger.Warn("lookup failed", "error", err, "status", status)
		}
		writeJSON(w, status, map[string]string{"error": s.widget.Message(err)})
		return
	}
	writeJSON(w, http.StatusOK, model)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

func handleReady(checker ReadinessChecker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := checker.CheckReadiness(ctx); err != nil {
			writeJSON(w, http.StatusServiceUnavailable, map[string]string{
				"status": "not ready",
				"error":  err.Error(),
			})
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"status": "ready"})
	}
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrCityNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrWeatherDataUnavailable), errors.Is(err, domain.ErrNetwork):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck // best-effort response
}
