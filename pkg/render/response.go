package render

import "strings"

// ResponseSink receives finished body chunks in order. The HTTP transport
// implements it over a ResponseWriter; Response implements it in memory.
type ResponseSink interface {
	AppendChunk(chunk string)
}

// Response is an in-memory sink collecting body chunks in the order they
// were flushed. It is the default sink for a Context and the one tests can
// inspect.
type Response struct {
	chunks []string
}

// AppendChunk implements ResponseSink.
func (r *Response) AppendChunk(chunk string) {
	r.chunks = append(r.chunks, chunk)
}

// Chunks returns the ordered body chunks flushed so far.
func (r *Response) Chunks() []string {
	return r.chunks
}

// Body returns all flushed chunks joined into one string.
func (r *Response) Body() string {
	return strings.Join(r.chunks, "")
}

// FlushToResponse moves the current buffer's full text into the response
// sink as one chunk and installs a fresh empty buffer with the same
// encoding. It is a no-op when the buffer is empty.
func (c *Context) FlushToResponse() {
	if c.buf.Empty() {
		return
	}
	chunk := c.buf.String()
	c.buf = NewBuffer(c.buf.Encoding())
	c.sink.AppendChunk(chunk)
}
