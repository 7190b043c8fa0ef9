package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/viewforge-dev/viewforge/pkg/middleware"
	"github.com/viewforge-dev/viewforge/pkg/render"
)

// Config configures the render server.
type Config struct {
	// Addr is the listen address (default ":3000").
	Addr string

	// Logger is the structured logger for the server.
	// If nil, slog.Default() is used.
	Logger *slog.Logger

	// Metrics enables Prometheus middleware and the /metrics endpoint.
	Metrics bool

	// Tracing enables OpenTelemetry middleware.
	Tracing bool

	// ErrorPage renders the body of the 500 response when a pass fails
	// before anything has been streamed. If nil a plain page is rendered.
	ErrorPage render.Fragment

	// ShutdownTimeout bounds graceful shutdown (default 10s).
	ShutdownTimeout time.Duration
}

// Server serves registered pages, one render pass per request.
type Server struct {
	config Config
	router chi.Router
	logger *slog.Logger
}

// New creates a Server with its middleware chain installed.
func New(config Config) *Server {
	if config.Addr == "" {
		config.Addr = ":3000"
	}
	if config.ShutdownTimeout == 0 {
		config.ShutdownTimeout = 10 * time.Second
	}
	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}

	router := chi.NewRouter()
	if config.Metrics {
		router.Use(middleware.Prometheus())
	}
	if config.Tracing {
		router.Use(middleware.OpenTelemetry())
	}

	s := &Server{
		config: config,
		router: router,
		logger: logger,
	}
	if config.Metrics {
		router.Handle("/metrics", promhttp.Handler())
	}
	return s
}

// Router exposes the underlying chi router for extra routes (static files,
// health checks, dev endpoints).
func (s *Server) Router() chi.Router {
	return s.router
}

// HandlePage registers a page at the given route pattern.
func (s *Server) HandlePage(pattern string, page Page) {
	s.router.Get(pattern, s.pageHandler(pattern, page))
}

// ListenAndServe serves until ctx is canceled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	httpServer := &http.Server{
		Addr:    s.config.Addr,
		Handler: s.router,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server listening", "addr", s.config.Addr)
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.config.ShutdownTimeout)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return err
		}
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
