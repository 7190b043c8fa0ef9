// Package middleware provides optional observability wrappers for render
// passes served over HTTP.
//
// Prometheus records pass counts, durations, and flushed-chunk totals;
// OpenTelemetry creates a span per pass. Both wrap standard http.Handler
// values so they compose with any chi router:
//
//	r := chi.NewRouter()
//	r.Use(middleware.Prometheus(middleware.WithNamespace("myapp")))
//	r.Use(middleware.OpenTelemetry())
package middleware
