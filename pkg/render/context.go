package render

import "log/slog"

// Fragment is a unit of rendering work. While running it may append to
// whichever buffer is current on the Context and may invoke nested captures.
type Fragment func(*Context) error

// Context holds the per-render-pass state: the currently active output
// buffer, the named-content store, and the response sink. One Context is
// created per pass and threaded through every nested fragment render the
// pass triggers. Contexts are not shared across passes.
type Context struct {
	buf     *Buffer
	content *ContentStore
	sink    ResponseSink
	logger  *slog.Logger
}

// Option configures a Context.
type Option func(*Context)

// WithSink sets the response sink chunks are flushed to.
// The default sink is a fresh *Response.
func WithSink(sink ResponseSink) Option {
	return func(c *Context) {
		c.sink = sink
	}
}

// WithLogger sets the structured logger for the pass.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Context) {
		c.logger = logger
	}
}

// WithEncoding sets the encoding tag of the pass's top-level buffer.
func WithEncoding(encoding string) Option {
	return func(c *Context) {
		c.buf = NewBuffer(encoding)
	}
}

// NewContext creates the state for one render pass with an empty top-level
// buffer and an empty content store.
func NewContext(opts ...Option) *Context {
	c := &Context{
		buf:     NewBuffer(DefaultEncoding),
		content: NewContentStore(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.sink == nil {
		c.sink = &Response{}
	}
	return c
}

// Buffer returns the currently active output buffer.
func (c *Context) Buffer() *Buffer {
	return c.buf
}

// Append adds text to the currently active buffer.
func (c *Context) Append(s string) {
	c.buf.Append(s)
}

// AppendHTML escapes text and appends it to the currently active buffer.
func (c *Context) AppendHTML(s string) {
	c.buf.Append(EscapeHTML(s))
}

// Sink returns the response sink the pass flushes to.
func (c *Context) Sink() ResponseSink {
	return c.sink
}

// Logger returns the pass logger, falling back to slog.Default().
func (c *Context) Logger() *slog.Logger {
	if c.logger != nil {
		return c.logger
	}
	return slog.Default()
}
