package server

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/viewforge-dev/viewforge/pkg/render"
)

var errFragment = errors.New("fragment failed")

func newTestServer() *Server {
	return New(Config{})
}

func TestPageWithoutLayoutStreamsBody(t *testing.T) {
	srv := newTestServer()
	srv.HandlePage("/", Page{
		Body: func(ctx *render.Context) error {
			ctx.Append("<h1>Home</h1>")
			return nil
		},
	})

	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if got := w.Body.String(); got != "<h1>Home</h1>" {
		t.Errorf("body = %q", got)
	}
	if ct := w.Header().Get("Content-Type"); ct != "text/html; charset=utf-8" {
		t.Errorf("content type = %q", ct)
	}
}

func TestPageWithLayoutReadsBodyContributions(t *testing.T) {
	layout := func(ctx *render.Context) error {
		title := "Untitled"
		if ctx.HasContent("title") {
			title = ctx.Content("title")
		}
		fmt.Fprintf(ctx.Buffer(), "<title>%s</title>", render.EscapeHTML(title))
		ctx.Append("<nav>" + ctx.Content("nav") + "</nav>")
		ctx.Append("<main>" + ctx.Content(BodySlot) + "</main>")
		return nil
	}

	body := func(ctx *render.Context) error {
		ctx.AppendContent("title", "Dashboard")
		ctx.AppendContent("nav", "<li>A</li>")
		ctx.AppendContent("nav", "<li>B</li>")
		ctx.Append("<p>welcome</p>")
		return nil
	}

	srv := newTestServer()
	srv.HandlePage("/dash", Page{Body: body, Layout: layout})

	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/dash", nil))

	want := "<title>Dashboard</title><nav><li>A</li><li>B</li></nav><main><p>welcome</p></main>"
	if got := w.Body.String(); got != want {
		t.Errorf("body = %q, want %q", got, want)
	}
}

func TestFailedPassRendersErrorPage(t *testing.T) {
	srv := newTestServer()
	srv.HandlePage("/broken", Page{
		Body: func(ctx *render.Context) error {
			ctx.Append("partial output that must not leak")
			return errFragment
		},
	})

	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/broken", nil))

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", w.Code)
	}
	body := w.Body.String()
	if strings.Contains(body, "must not leak") {
		t.Errorf("failed pass output leaked into response: %q", body)
	}
	if !strings.Contains(body, "Internal Server Error") {
		t.Errorf("default error page missing: %q", body)
	}
}

func TestFailedNestedCaptureLeavesOuterIntact(t *testing.T) {
	// A layout failure after the body captured fine must still produce the
	// error page, not the half-built layout.
	srv := New(Config{
		ErrorPage: func(ctx *render.Context) error {
			ctx.Append("<p>custom error page</p>")
			return nil
		},
	})
	srv.HandlePage("/half", Page{
		Body: func(ctx *render.Context) error {
			ctx.Append("body ok")
			return nil
		},
		Layout: func(ctx *render.Context) error {
			ctx.Append("<header>streamed later</header>")
			_, err := ctx.Capture(func(ctx *render.Context) error {
				return errFragment
			})
			return err
		},
	})

	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/half", nil))

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", w.Code)
	}
	if got := w.Body.String(); got != "<p>custom error page</p>" {
		t.Errorf("body = %q, want custom error page only", got)
	}
}

func TestIncrementalFlushesReachClient(t *testing.T) {
	srv := newTestServer()
	srv.HandlePage("/stream", Page{
		Body: func(ctx *render.Context) error {
			ctx.Append("<head></head>")
			ctx.FlushToResponse()
			ctx.Append("<body></body>")
			return nil
		},
	})

	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/stream", nil))

	if !w.Flushed {
		t.Errorf("expected an http.Flusher flush after the first chunk")
	}
	if got := w.Body.String(); got != "<head></head><body></body>" {
		t.Errorf("body = %q", got)
	}
}

func TestStreamSinkCountsChunks(t *testing.T) {
	w := httptest.NewRecorder()
	sink := newStreamSink(w)

	sink.AppendChunk("a")
	sink.AppendChunk("b")

	if sink.chunks != 2 {
		t.Errorf("chunks = %d, want 2", sink.chunks)
	}
	if got := w.Body.String(); got != "ab" {
		t.Errorf("written = %q, want %q", got, "ab")
	}
}

func TestDefaultErrorPageCannotFail(t *testing.T) {
	ctx := render.NewContext()
	if err := defaultErrorPage(ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ctx.Buffer().Empty() {
		t.Errorf("default error page produced no output")
	}
}
