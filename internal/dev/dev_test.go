package dev

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
)

func TestClassifyChange(t *testing.T) {
	tests := []struct {
		path string
		want ChangeType
	}{
		{"public/styles.css", ChangeCSS},
		{"public/THEME.CSS", ChangeCSS},
		{"public/logo.png", ChangeAsset},
		{"public/app.js", ChangeAsset},
	}
	for _, tt := range tests {
		if got := classifyChange(tt.path); got != tt.want {
			t.Errorf("classifyChange(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}

func TestShouldIgnore(t *testing.T) {
	w := NewWatcher(WatcherConfig{})
	tests := []struct {
		path string
		want bool
	}{
		{"public/app.css", false},
		{"public/save.swp", true},
		{filepath.Join("a", "node_modules", "b", "c.js"), true},
		{"notes~", true},
	}
	for _, tt := range tests {
		if got := w.shouldIgnore(tt.path); got != tt.want {
			t.Errorf("shouldIgnore(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}

func TestWatcherDetectsModification(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "styles.css")
	if err := os.WriteFile(file, []byte("body{}"), 0644); err != nil {
		t.Fatal(err)
	}

	w := NewWatcher(WatcherConfig{
		Paths:    []string{dir},
		Debounce: 10 * time.Millisecond,
	})

	changes := make(chan Change, 1)
	w.OnChange(func(c Change) {
		select {
		case changes <- c:
		default:
		}
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go w.Start(ctx)
	defer w.Stop()

	// Let the initial scan land, then bump the mtime well past it.
	time.Sleep(50 * time.Millisecond)
	future := time.Now().Add(10 * time.Second)
	if err := os.Chtimes(file, future, future); err != nil {
		t.Fatal(err)
	}

	select {
	case c := <-changes:
		if c.Type != ChangeCSS {
			t.Errorf("change type = %v, want ChangeCSS", c.Type)
		}
		if !strings.HasSuffix(c.Path, "styles.css") {
			t.Errorf("change path = %q", c.Path)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("no change reported")
	}
}

func TestReloadServerBroadcast(t *testing.T) {
	rs := NewReloadServer()
	defer rs.Close()

	srv := httptest.NewServer(http.HandlerFunc(rs.HandleWebSocket))
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()

	// Wait for the server to register the client.
	deadline := time.Now().Add(2 * time.Second)
	for rs.ClientCount() == 0 {
		if time.Now().After(deadline) {
			t.Fatal("client never registered")
		}
		time.Sleep(5 * time.Millisecond)
	}

	rs.NotifyCSS("styles.css")

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var msg ReloadMessage
	if err := conn.ReadJSON(&msg); err != nil {
		t.Fatalf("read: %v", err)
	}
	if msg.Type != ReloadTypeCSS || msg.File != "styles.css" {
		t.Errorf("message = %+v", msg)
	}
}

func TestReloadClientScriptMentionsEndpoint(t *testing.T) {
	if !strings.Contains(ReloadClientScript, ReloadPath) {
		t.Errorf("client script does not reference %s", ReloadPath)
	}
}
