package render

import "strings"

// ContentStore accumulates named text fragments during one render pass.
// Fragments appended under the same name concatenate in invocation order,
// never reordered, never deduplicated. Entries are never merged across
// passes: each Context owns its own store.
type ContentStore struct {
	fragments map[string][]string
}

// NewContentStore creates an empty store.
func NewContentStore() *ContentStore {
	return &ContentStore{fragments: make(map[string][]string)}
}

// Append records content under name, after any fragments already recorded
// for it. Empty content is ignored.
func (s *ContentStore) Append(name, content string) {
	if content == "" {
		return
	}
	s.fragments[name] = append(s.fragments[name], content)
}

// Read returns the concatenation, in append order, of all fragments
// recorded for name so far, or "" when none have been recorded.
//
// A read reflects only fragments appended before it; fragments appended
// afterwards are not retroactively visible in the returned text. Callers
// (typically layouts) must read a slot after every fragment that
// contributes to it has rendered.
func (s *ContentStore) Read(name string) string {
	return strings.Join(s.fragments[name], "")
}

// Has reports whether at least one non-empty fragment has been recorded
// for name.
func (s *ContentStore) Has(name string) bool {
	return len(s.fragments[name]) > 0
}

// AppendContent records content under name on the pass's content store.
func (c *Context) AppendContent(name, content string) {
	c.content.Append(name, content)
}

// AppendContentFrom captures block's output and records it under name.
// An error from the block propagates unchanged and records nothing.
func (c *Context) AppendContentFrom(name string, block Fragment) error {
	text, err := c.Capture(block)
	if err != nil {
		return err
	}
	c.content.Append(name, text)
	return nil
}

// Content returns the accumulated text for name, or "" when none.
func (c *Context) Content(name string) string {
	return c.content.Read(name)
}

// HasContent reports whether any non-empty fragment was recorded for name.
func (c *Context) HasContent(name string) bool {
	return c.content.Has(name)
}
