// Package viewforge wires the render-support primitives into a runnable
// application: pages, layouts, static files, observability middleware, and
// the development live-reload channel.
//
// The heavy lifting lives in the subpackages; this package only composes
// them:
//
//	app := viewforge.New(viewforge.Config{Addr: ":3000"})
//	app.Page("/", home, viewforge.WithLayout(layout))
//	err := app.Start(ctx)
package viewforge

import (
	"context"
	"log/slog"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/viewforge-dev/viewforge/internal/dev"
	"github.com/viewforge-dev/viewforge/pkg/render"
	"github.com/viewforge-dev/viewforge/pkg/server"
)

// Config is the application configuration.
type Config struct {
	// Addr is the listen address (default ":3000").
	Addr string

	// Logger is the structured logger for the application.
	// If nil, slog.Default() is used.
	Logger *slog.Logger

	// Metrics enables Prometheus middleware and the /metrics endpoint.
	Metrics bool

	// Tracing enables OpenTelemetry middleware.
	Tracing bool

	// DevMode mounts the live-reload WebSocket and watches WatchPaths.
	// Never enable in production.
	DevMode bool

	// WatchPaths are the directories the dev watcher polls.
	WatchPaths []string

	// StaticDir serves files from this directory when non-empty.
	StaticDir string

	// StaticPrefix is the URL prefix for static files (default "/static").
	StaticPrefix string

	// ErrorPage overrides the built-in 500 page.
	ErrorPage render.Fragment
}

// PageOption configures a registered page.
type PageOption func(*server.Page)

// WithLayout renders the page's body inside layout. The body is captured
// first so its named-content contributions are visible when the layout
// reads them.
func WithLayout(layout render.Fragment) PageOption {
	return func(p *server.Page) {
		p.Layout = layout
	}
}

// App composes the server, middleware, static files, and dev extras.
type App struct {
	config  Config
	logger  *slog.Logger
	server  *server.Server
	reload  *dev.ReloadServer
	watcher *dev.Watcher
}

// New creates an App from config.
func New(config Config) *App {
	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}

	app := &App{
		config: config,
		logger: logger,
		server: server.New(server.Config{
			Addr:      config.Addr,
			Logger:    logger,
			Metrics:   config.Metrics,
			Tracing:   config.Tracing,
			ErrorPage: config.ErrorPage,
		}),
	}

	if config.StaticDir != "" {
		prefix := config.StaticPrefix
		if prefix == "" {
			prefix = "/static"
		}
		prefix = strings.TrimSuffix(prefix, "/")
		app.server.Router().Handle(prefix+"/*",
			http.StripPrefix(prefix, http.FileServer(http.Dir(config.StaticDir))))
	}

	if config.DevMode {
		app.reload = dev.NewReloadServer()
		app.server.Router().Get(dev.ReloadPath, app.reload.HandleWebSocket)
		if len(config.WatchPaths) > 0 {
			app.watcher = dev.NewWatcher(dev.WatcherConfig{Paths: config.WatchPaths})
			app.watcher.OnChange(app.onFileChange)
		}
	}

	return app
}

// Page registers a page at the given route pattern.
func (a *App) Page(pattern string, body render.Fragment, opts ...PageOption) {
	page := server.Page{Body: body}
	for _, opt := range opts {
		opt(&page)
	}
	a.server.HandlePage(pattern, page)
}

// Router exposes the underlying chi router for extra routes.
func (a *App) Router() chi.Router {
	return a.server.Router()
}

// Start serves until ctx is canceled. In dev mode it also runs the file
// watcher and closes reload clients on shutdown.
func (a *App) Start(ctx context.Context) error {
	if a.watcher != nil {
		go a.watcher.Start(ctx)
		defer a.watcher.Stop()
	}
	if a.reload != nil {
		defer a.reload.Close()
	}
	return a.server.ListenAndServe(ctx)
}

// onFileChange maps watcher events to browser reload messages.
func (a *App) onFileChange(c dev.Change) {
	a.logger.Debug("file changed", "path", c.Path)
	switch c.Type {
	case dev.ChangeCSS:
		a.reload.NotifyCSS(filepath.Base(c.Path))
	default:
		a.reload.NotifyReload()
	}
}
