package cache

import (
	"testing"

	"github.com/textbuf/piecetree/internal/engine/piece"
	"github.com/textbuf/piecetree/internal/engine/rbtree"
)

func mkEntry(start, length, lineStart, lf int) Entry {
	return Entry{
		Node: &rbtree.Node{
			Piece: piece.Piece{Length: length, LineFeedCnt: lf},
		},
		NodeStartOffset:     start,
		NodeStartLineNumber: lineStart,
	}
}

func TestGetFindsContainingEntry(t *testing.T) {
	c := New(4)
	c.Set(mkEntry(0, 10, 0, 2))
	c.Set(mkEntry(10, 5, 2, 0))

	if _, ok := c.Get(3); !ok {
		t.Fatalf("Get(3) should hit the first entry")
	}
	e, ok := c.Get(12)
	if !ok || e.NodeStartOffset != 10 {
		t.Fatalf("Get(12) = %+v, %v; want offset 10 entry", e, ok)
	}
	if _, ok := c.Get(999); ok {
		t.Fatalf("Get(999) should miss")
	}
}

func TestGet2SkipsUnknownLineEntries(t *testing.T) {
	c := New(4)
	c.Set(mkEntry(0, 10, -1, 2)) // offset-only entry, no line info
	c.Set(mkEntry(10, 5, 2, 1))

	if _, ok := c.Get2(0); ok {
		t.Fatalf("Get2(0) should miss: only entry with line info starts at 2")
	}
	e, ok := c.Get2(2)
	if !ok || e.NodeStartOffset != 10 {
		t.Fatalf("Get2(2) = %+v, %v; want offset 10 entry", e, ok)
	}
}

func TestSetEvictsOldestBeyondLimit(t *testing.T) {
	c := New(2)
	c.Set(mkEntry(0, 5, 0, 0))
	c.Set(mkEntry(5, 5, 0, 0))
	c.Set(mkEntry(10, 5, 0, 0))

	if c.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", c.Len())
	}
	if _, ok := c.Get(2); ok {
		t.Fatalf("oldest entry [0,5) should have been evicted")
	}
	if _, ok := c.Get(12); !ok {
		t.Fatalf("newest entry [10,15) should still be present")
	}
}

func TestValidateDropsEntriesAtOrAfterEditOffset(t *testing.T) {
	c := New(4)
	c.Set(mkEntry(0, 5, 0, 0))
	c.Set(mkEntry(5, 5, 0, 0))
	c.Set(mkEntry(10, 5, 0, 0))

	c.Validate(5)

	if c.Len() != 1 {
		t.Fatalf("Len() after Validate(5) = %d, want 1", c.Len())
	}
	if _, ok := c.Get(2); !ok {
		t.Fatalf("entry starting before the edit offset should survive")
	}
	if _, ok := c.Get(7); ok {
		t.Fatalf("entry starting at or after the edit offset should be dropped")
	}
}

func TestClearEmptiesCache(t *testing.T) {
	c := New(4)
	c.Set(mkEntry(0, 5, 0, 0))
	c.Clear()
	if c.Len() != 0 {
		t.Fatalf("Len() after Clear() = %d, want 0", c.Len())
	}
}
