package cache

import "github.com/textbuf/piecetree/internal/engine/rbtree"

// DefaultLimit is the bound used by the offset/position cache
// consulted on every query; small on purpose, since most access
// patterns are sequential and a single recent hit already avoids the
// O(log n) descent for the common case.
const DefaultLimit = 4

// Entry remembers a node's location so a later query near it can skip
// the tree descent. A negative NodeStartLineNumber marks an entry
// whose line number is unknown; Get2 skips such entries.
type Entry struct {
	Node                *rbtree.Node
	NodeStartOffset     int
	NodeStartLineNumber int
}

// Cache is a small ring of recently resolved Entries.
type Cache struct {
	limit   int
	entries []Entry
}

// New returns an empty cache bounded to limit entries. A non-positive
// limit falls back to DefaultLimit.
func New(limit int) *Cache {
	if limit < 1 {
		limit = DefaultLimit
	}
	return &Cache{limit: limit}
}

// Get returns the most recently set entry whose piece spans offset,
// if any.
func (c *Cache) Get(offset int) (Entry, bool) {
	for i := len(c.entries) - 1; i >= 0; i-- {
		e := c.entries[i]
		if e.NodeStartOffset <= offset && offset <= e.NodeStartOffset+e.Node.Piece.Length {
			return e, true
		}
	}
	return Entry{}, false
}

// Get2 returns the most recently set entry whose piece spans the
// 0-based line number, if any. Entries with an unknown line start
// (NodeStartLineNumber < 0) are skipped.
func (c *Cache) Get2(line int) (Entry, bool) {
	for i := len(c.entries) - 1; i >= 0; i-- {
		e := c.entries[i]
		if e.NodeStartLineNumber < 0 {
			continue
		}
		if e.NodeStartLineNumber <= line && line <= e.NodeStartLineNumber+e.Node.Piece.LineFeedCnt {
			return e, true
		}
	}
	return Entry{}, false
}

// Set records e, evicting the oldest entry first if the cache is
// already at its limit.
func (c *Cache) Set(e Entry) {
	if len(c.entries) >= c.limit {
		c.entries = append(c.entries[:0], c.entries[1:]...)
	}
	c.entries = append(c.entries, e)
}

// Validate drops every entry whose recorded start offset is at or
// past editOffset: an edit at editOffset can only have restructured
// or relocated nodes from that point onward, so entries entirely
// before it remain trustworthy.
func (c *Cache) Validate(editOffset int) {
	kept := c.entries[:0]
	for _, e := range c.entries {
		if e.NodeStartOffset < editOffset {
			kept = append(kept, e)
		}
	}
	c.entries = kept
}

// Clear empties the cache unconditionally, used after structural
// operations (e.g. a delete spanning multiple pieces) where computing
// a precise invalidation offset isn't worth the bookkeeping.
func (c *Cache) Clear() {
	c.entries = c.entries[:0]
}

// Len reports the number of entries currently cached, for tests.
func (c *Cache) Len() int {
	return len(c.entries)
}
