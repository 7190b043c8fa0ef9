package render

import "strings"

// DefaultEncoding is the encoding tag for buffers created without another
// buffer to inherit from.
const DefaultEncoding = "utf-8"

// Buffer is an append-only text sink with an associated encoding tag.
// Fragments write into whichever buffer is current on their Context; no
// operation loses previously appended text except an explicit Drain.
type Buffer struct {
	sb       strings.Builder
	encoding string
}

// NewBuffer creates an empty buffer with the given encoding tag.
// An empty encoding falls back to DefaultEncoding.
func NewBuffer(encoding string) *Buffer {
	if encoding == "" {
		encoding = DefaultEncoding
	}
	return &Buffer{encoding: encoding}
}

// Append adds text to the end of the buffer.
func (b *Buffer) Append(s string) {
	b.sb.WriteString(s)
}

// Write implements io.Writer so formatted output can target a buffer
// directly.
func (b *Buffer) Write(p []byte) (int, error) {
	return b.sb.Write(p)
}

// Empty reports whether the buffer holds no text.
func (b *Buffer) Empty() bool {
	return b.sb.Len() == 0
}

// Len returns the number of accumulated bytes.
func (b *Buffer) Len() int {
	return b.sb.Len()
}

// String returns all accumulated text without clearing it.
func (b *Buffer) String() string {
	return b.sb.String()
}

// Drain returns all accumulated text and resets the buffer to empty.
func (b *Buffer) Drain() string {
	s := b.sb.String()
	b.sb.Reset()
	return s
}

// Encoding returns the buffer's encoding tag.
func (b *Buffer) Encoding() string {
	return b.encoding
}
