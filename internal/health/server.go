// Package health serves the liveness page and Prometheus metrics.
package health

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
)

// StatusText is the body of the liveness page
const StatusText = "Discord Music Bot is running!"

const shutdownTimeout = 5 * time.Second

// Config holds configuration for the health server
type Config struct {
	// Addr to listen on, e.g. ":3000"
	Addr string

	// MetricsHandler defaults to promhttp.Handler()
	MetricsHandler http.Handler

	Logger zerolog.Logger
}

// Server is the liveness and metrics listener
type Server struct {
	addr   string
	router chi.Router
	logger zerolog.Logger
}

// New creates a health server
func New(cfg *Config) (*Server, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if cfg.Addr == "" {
		return nil, errors.New("address cannot be empty")
	}

	metricsHandler := cfg.MetricsHandler
	if metricsHandler == nil {
		metricsHandler = promhttp.Handler()
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Get("/", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte(StatusText))
	})
	r.Method(http.MethodGet, "/metrics", metricsHandler)

	return &Server{
		addr:   cfg.Addr,
		router: r,
		logger: cfg.Logger,
	}, nil
}

// Handler returns the router
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run listens until ctx is cancelled, then shuts down
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.addr,
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info().Str("addr", s.addr).Msg("health server listening")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		<-errCh
		return nil
	}
}
