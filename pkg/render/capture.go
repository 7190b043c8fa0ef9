package render

// Capture runs block with a temporary buffer installed as current and
// returns the text the block appended to it. The surrounding output is
// untouched: the previous buffer becomes current again before Capture
// returns, on every exit path (normal completion, error, panic), and any
// error from the block propagates unchanged after the restore.
//
// An optional target buffer may be supplied to capture into a caller-owned
// buffer; by default a fresh empty buffer sharing the current buffer's
// encoding is used. Captures nest arbitrarily and restore in strict LIFO
// order, so interleaved captures never restore the wrong buffer.
func (c *Context) Capture(block Fragment, target ...*Buffer) (string, error) {
	buf := c.scopedBuffer(target)
	prev := c.buf
	c.buf = buf
	defer func() { c.buf = prev }()

	if err := block(c); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// WithScopedBuffer runs block under the same buffer substitution as Capture
// but returns the block's own result, for callers that want buffer isolation
// as a side-effect-safety measure while still caring about the computed
// value. The scoped buffer's final text is returned alongside for callers
// that want both; it is populated even when the block fails.
//
// The restore guarantee is identical to Capture's.
func (c *Context) WithScopedBuffer(block func(*Context) (any, error), target ...*Buffer) (any, string, error) {
	buf := c.scopedBuffer(target)
	prev := c.buf
	c.buf = buf
	defer func() { c.buf = prev }()

	v, err := block(c)
	return v, buf.String(), err
}

// scopedBuffer resolves the substitute buffer for one capture.
func (c *Context) scopedBuffer(target []*Buffer) *Buffer {
	if len(target) > 0 && target[0] != nil {
		return target[0]
	}
	return NewBuffer(c.buf.Encoding())
}
