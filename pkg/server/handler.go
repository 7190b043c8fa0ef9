package server

import (
	"io"
	"net/http"

	"github.com/viewforge-dev/viewforge/pkg/middleware"
	"github.com/viewforge-dev/viewforge/pkg/render"
)

// BodySlot is the named-content slot the captured page body is stored
// under for the layout to read.
const BodySlot = "body"

// Page is one renderable route: a body fragment and an optional layout.
//
// Without a layout the body streams directly. With a layout the body is
// captured first, so every named-content slot it contributes to (title,
// head, nav) is populated before the layout reads it; the layout then
// embeds the captured body via ctx.Content(server.BodySlot).
type Page struct {
	Body   render.Fragment
	Layout render.Fragment
}

// streamSink adapts an http.ResponseWriter to render.ResponseSink.
// Each flushed chunk is written and, when the writer supports it, pushed
// to the client immediately for faster time-to-first-byte.
type streamSink struct {
	w       io.Writer
	flusher http.Flusher
	chunks  int
}

func newStreamSink(w http.ResponseWriter) *streamSink {
	flusher, _ := w.(http.Flusher)
	return &streamSink{w: w, flusher: flusher}
}

// AppendChunk implements render.ResponseSink.
func (s *streamSink) AppendChunk(chunk string) {
	if _, err := io.WriteString(s.w, chunk); err != nil {
		return
	}
	s.chunks++
	if s.flusher != nil {
		s.flusher.Flush()
	}
}

func (s *Server) pageHandler(pattern string, page Page) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")

		sink := newStreamSink(w)
		ctx := render.NewContext(
			render.WithSink(sink),
			render.WithLogger(s.logger),
		)

		if err := renderPage(ctx, page); err != nil {
			s.logger.Error("render pass failed",
				"route", pattern,
				"path", r.URL.Path,
				"error", err,
			)
			s.renderErrorPage(ctx, w, sink, err)
			return
		}
		middleware.RecordFlushChunks(sink.chunks)
	}
}

// renderPage executes one render pass for the page.
func renderPage(ctx *render.Context, page Page) error {
	if page.Layout == nil {
		if err := page.Body(ctx); err != nil {
			return err
		}
		ctx.FlushToResponse()
		return nil
	}

	// Body first: its named-content contributions must all be recorded
	// before the layout reads any slot.
	if err := ctx.AppendContentFrom(BodySlot, page.Body); err != nil {
		return err
	}
	if err := page.Layout(ctx); err != nil {
		return err
	}
	ctx.FlushToResponse()
	return nil
}

// renderErrorPage produces the 500 response for a failed pass. A failed
// capture leaves the outer buffer intact, so the error page renders on the
// same context. If chunks were already streamed the status line is gone;
// the pass is only logged then.
func (s *Server) renderErrorPage(ctx *render.Context, w http.ResponseWriter, sink *streamSink, err error) {
	if sink.chunks > 0 {
		return
	}
	w.WriteHeader(http.StatusInternalServerError)

	// Drop whatever the failed pass left in the top-level buffer.
	ctx.Buffer().Drain()

	errorPage := s.config.ErrorPage
	if errorPage == nil {
		errorPage = defaultErrorPage
	}
	if renderErr := errorPage(ctx); renderErr != nil {
		s.logger.Error("error page failed", "error", renderErr)
		return
	}
	ctx.FlushToResponse()
	middleware.RecordFlushChunks(sink.chunks)
}

// defaultErrorPage is deliberately static: it must not be able to fail.
func defaultErrorPage(ctx *render.Context) error {
	ctx.Append("<!DOCTYPE html>\n<html><head><title>Internal Server Error</title></head>\n")
	ctx.Append("<body><h1>Internal Server Error</h1></body></html>\n")
	return nil
}
