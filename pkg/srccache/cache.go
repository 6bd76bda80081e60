// Package srccache caches the most recently read original source file
// together with its position index. Callers that resolve many positions
// against the same original file in a row pay for one read and one
// index build; switching files evicts the previous entry.
//
// The cache is an explicit collaborator passed around by callers, not
// process-wide state, so tests can run against multiple files without
// leakage.
package srccache

import (
	"fmt"
	"os"

	"github.com/yaklabco/mapstitch/pkg/textpos"
)

// Cache holds at most one (path, text, index) entry.
type Cache struct {
	num   textpos.Numbering
	path  string
	text  string
	index *textpos.Index
}

// New creates an empty cache whose indexes report in num.
func New(num textpos.Numbering) *Cache {
	return &Cache{num: num}
}

// Get returns the text and index for path, reading and indexing the
// file only when it is not the cached entry. The previous entry, if
// any, is replaced.
func (c *Cache) Get(path string) (string, *textpos.Index, error) {
	if c.index != nil && c.path == path {
		return c.text, c.index, nil
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return "", nil, fmt.Errorf("read original source %s: %w", path, err)
	}

	c.path = path
	c.text = string(content)
	c.index = textpos.NewIndex(c.text, c.num)
	return c.text, c.index, nil
}

// Lookup resolves line/column in path (in the cache's numbering) to a
// linear offset.
func (c *Cache) Lookup(path string, line, column int) (int, error) {
	_, ix, err := c.Get(path)
	if err != nil {
		return 0, err
	}
	return ix.OffsetFor(line, column), nil
}

// Path returns the path of the cached entry, or "" when empty.
func (c *Cache) Path() string {
	return c.path
}
