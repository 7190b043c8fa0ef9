// Package render provides the buffer and content primitives used while
// rendering nested template fragments (partials, layouts) on the server.
//
// A render pass owns one Context. The Context holds the currently active
// output Buffer and a ContentStore of named fragments. Nested fragment
// renders use Capture or WithScopedBuffer to redirect output into an
// isolated buffer, then resume writing to the restored outer buffer.
//
// # Capturing output
//
// Capture runs a fragment with a temporary buffer installed as current and
// returns the markup the fragment produced, without it leaking into the
// surrounding output:
//
//	nav, err := ctx.Capture(func(ctx *render.Context) error {
//	    ctx.Append("<li>Home</li>")
//	    return nil
//	})
//
// WithScopedBuffer provides the same buffer isolation but returns the
// fragment's own result alongside the scoped buffer's final text:
//
//	v, text, err := ctx.WithScopedBuffer(func(ctx *render.Context) (any, error) {
//	    ctx.Append("partial output")
//	    return computeValue(), nil
//	})
//
// Both guarantee the previous buffer becomes current again on every exit
// path, including errors and panics. Captures nest arbitrarily and restore
// in strict LIFO order.
//
// # Named content
//
// Independent fragments rendered in sequence can contribute to a single
// named slot that a layout reads later:
//
//	ctx.AppendContent("nav", "<li>A</li>")
//	ctx.AppendContent("nav", "<li>B</li>")
//	ctx.Content("nav") // "<li>A</li><li>B</li>"
//
// # Streaming
//
// FlushToResponse drains the current buffer into the response sink as one
// chunk and installs a fresh buffer, so a pass can stream output
// incrementally instead of materializing the whole body first.
//
// Each render pass has fully independent state; nothing in this package is
// shared across passes, so no locking is needed at this layer.
package render
