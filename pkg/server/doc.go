// Package server runs render passes over HTTP.
//
// Each registered page is served by one render pass: the handler creates a
// render.Context whose sink streams flushed chunks straight to the
// ResponseWriter (with an http.Flusher flush per chunk for faster TTFB),
// executes the page's fragments, and performs a final flush.
//
// Pages with a layout render in two steps: the body fragment is captured
// first so its named-content contributions (title, scripts, nav entries)
// are recorded, then the layout reads those slots and embeds the captured
// body.
//
//	srv := server.New(server.Config{Addr: ":3000"})
//	srv.HandlePage("/", server.Page{Body: home, Layout: layout})
//	err := srv.ListenAndServe(ctx)
package server
