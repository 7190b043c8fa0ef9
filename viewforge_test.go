package viewforge

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/viewforge-dev/viewforge/internal/dev"
	"github.com/viewforge-dev/viewforge/pkg/render"
)

func TestAppServesPageWithLayout(t *testing.T) {
	app := New(Config{})

	layout := func(ctx *render.Context) error {
		ctx.Append("<title>" + ctx.Content("title") + "</title>")
		ctx.Append(ctx.Content("body"))
		return nil
	}
	app.Page("/", func(ctx *render.Context) error {
		ctx.AppendContent("title", "Welcome")
		ctx.Append("<p>hi</p>")
		return nil
	}, WithLayout(layout))

	w := httptest.NewRecorder()
	app.Router().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if got := w.Body.String(); got != "<title>Welcome</title><p>hi</p>" {
		t.Errorf("body = %q", got)
	}
}

func TestAppServesStaticFiles(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "app.css"), []byte("body{}"), 0644); err != nil {
		t.Fatal(err)
	}

	app := New(Config{StaticDir: dir})

	w := httptest.NewRecorder()
	app.Router().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/static/app.css", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if got := w.Body.String(); got != "body{}" {
		t.Errorf("body = %q", got)
	}
}

func TestDevModeMountsReloadEndpoint(t *testing.T) {
	app := New(Config{DevMode: true})

	// A plain GET is not a WebSocket handshake; the upgrader must reject
	// it rather than the router returning 404.
	w := httptest.NewRecorder()
	app.Router().ServeHTTP(w, httptest.NewRequest(http.MethodGet, dev.ReloadPath, nil))

	if w.Code == http.StatusNotFound {
		t.Fatalf("reload endpoint not mounted")
	}
	if w.Code != http.StatusBadRequest {
		t.Errorf("non-upgrade request status = %d, want 400", w.Code)
	}
}

func TestProductionModeHasNoReloadEndpoint(t *testing.T) {
	app := New(Config{})

	w := httptest.NewRecorder()
	app.Router().ServeHTTP(w, httptest.NewRequest(http.MethodGet, dev.ReloadPath, nil))

	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404 outside dev mode", w.Code)
	}
}

func TestStaticPrefixNormalized(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "a.txt"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	app := New(Config{StaticDir: dir, StaticPrefix: "/assets/"})

	w := httptest.NewRecorder()
	app.Router().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/assets/a.txt", nil))

	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), "x") {
		t.Errorf("status = %d body = %q", w.Code, w.Body.String())
	}
}
