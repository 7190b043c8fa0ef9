package render

import "testing"

func TestFlushEmptyBufferIsNoOp(t *testing.T) {
	resp := &Response{}
	ctx := NewContext(WithSink(resp))

	ctx.FlushToResponse()

	if len(resp.Chunks()) != 0 {
		t.Errorf("flush of empty buffer appended %d chunks, want 0", len(resp.Chunks()))
	}
}

func TestFlushAppendsOneChunk(t *testing.T) {
	resp := &Response{}
	ctx := NewContext(WithSink(resp), WithEncoding("iso-8859-1"))
	ctx.Append("<p>hello</p>")

	ctx.FlushToResponse()

	chunks := resp.Chunks()
	if len(chunks) != 1 {
		t.Fatalf("got %d chunks, want 1", len(chunks))
	}
	if chunks[0] != "<p>hello</p>" {
		t.Errorf("chunk = %q, want buffer's full text", chunks[0])
	}
	if !ctx.Buffer().Empty() {
		t.Errorf("buffer not empty after flush")
	}
	if enc := ctx.Buffer().Encoding(); enc != "iso-8859-1" {
		t.Errorf("replacement buffer encoding = %q, want %q", enc, "iso-8859-1")
	}
}

func TestFlushStreamsIncrementally(t *testing.T) {
	resp := &Response{}
	ctx := NewContext(WithSink(resp))

	ctx.Append("<head>")
	ctx.FlushToResponse()
	ctx.Append("<body>")
	ctx.FlushToResponse()
	ctx.FlushToResponse() // empty, must not add a chunk
	ctx.Append("</html>")
	ctx.FlushToResponse()

	want := []string{"<head>", "<body>", "</html>"}
	chunks := resp.Chunks()
	if len(chunks) != len(want) {
		t.Fatalf("got %d chunks, want %d", len(chunks), len(want))
	}
	for i := range want {
		if chunks[i] != want[i] {
			t.Errorf("chunk[%d] = %q, want %q", i, chunks[i], want[i])
		}
	}
	if resp.Body() != "<head><body></html>" {
		t.Errorf("Body = %q", resp.Body())
	}
}

func TestDefaultSinkIsResponse(t *testing.T) {
	ctx := NewContext()
	ctx.Append("x")
	ctx.FlushToResponse()

	resp, ok := ctx.Sink().(*Response)
	if !ok {
		t.Fatalf("default sink is %T, want *Response", ctx.Sink())
	}
	if resp.Body() != "x" {
		t.Errorf("Body = %q, want %q", resp.Body(), "x")
	}
}
