package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

func TestOpenTelemetryInjectsSpanContext(t *testing.T) {
	var sawSpan bool
	handler := OpenTelemetry(
		WithTracerName("test"),
		WithAttributeExtractor(func(r *http.Request) []attribute.KeyValue {
			return []attribute.KeyValue{attribute.String("test.attr", "ok")}
		}),
	)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// The global provider defaults to no-op; the span must still be
		// present in the request context.
		if trace.SpanFromContext(r.Context()) != nil {
			sawSpan = true
		}
		w.Write([]byte("ok"))
	}))

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/traced", nil))

	if !sawSpan {
		t.Errorf("handler did not receive a span in its request context")
	}
	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", w.Code)
	}
}

func TestOpenTelemetryFilterSkips(t *testing.T) {
	var called bool
	handler := OpenTelemetry(
		WithRequestFilter(func(r *http.Request) bool { return false }),
	)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/skipped", nil))

	if !called {
		t.Errorf("filtered request did not reach the handler")
	}
}

func TestFormatSpanName(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	if got := formatSpanName(r); got != "viewforge /dashboard" {
		t.Errorf("span name = %q, want %q", got, "viewforge /dashboard")
	}
}
