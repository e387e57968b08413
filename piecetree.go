package piecetree

import (
	"github.com/textbuf/piecetree/builder"
	"github.com/textbuf/piecetree/internal/engine/core"
	"github.com/textbuf/piecetree/internal/engine/snapshot"
)

// Range identifies a span of the document by 1-based line/column
// endpoints, aliased from the core so callers never need to import an
// internal package to name it.
type Range = core.Range

// Snapshot is a frozen, read-only view of a PieceTree's content taken
// at a moment in time (spec.md §4.9), aliased from the internal
// snapshot package for the same reason as Range.
type Snapshot = snapshot.Snapshot

// PieceTree is the public facade over the piece-tree core (spec.md
// §4.10). It carries no logic of its own beyond construction: every
// method below delegates one-to-one to the core.
type PieceTree struct {
	core *core.PieceTree
	bom  string
}

// New constructs an empty PieceTree.
func New(opts ...Option) *PieceTree {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	f := builder.New().Finish(cfg.normalizeEOL)
	return &PieceTree{core: f.Create(cfg.defaultEOL)}
}

// NewFromString constructs a PieceTree from initial content, forwarded
// through the builder exactly as spec.md §4.10 describes.
func NewFromString(s string, opts ...Option) *PieceTree {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	b := builder.New()
	b.AcceptChunk([]byte(s))
	f := b.Finish(cfg.normalizeEOL)
	return &PieceTree{core: f.Create(cfg.defaultEOL), bom: f.BOM()}
}

// NewFromFactory constructs a PieceTree from a builder.Factory a
// caller has already fed chunk by chunk (spec.md §6's streaming
// acceptChunk/finish path, for input too large to hold as one string).
func NewFromFactory(f *builder.Factory, opts ...Option) *PieceTree {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &PieceTree{core: f.Create(cfg.defaultEOL), bom: f.BOM()}
}

// Length returns the total byte length of the document.
func (t *PieceTree) Length() int { return t.core.Length() }

// LineCount returns the number of lines (always ≥ 1).
func (t *PieceTree) LineCount() int { return t.core.LineCount() }

// EOL returns the currently active end-of-line string.
func (t *PieceTree) EOL() string { return t.core.EOL() }

// EOLNormalized reports whether every line terminator in the document
// is known to match EOL().
func (t *PieceTree) EOLNormalized() bool { return t.core.EOLNormalized() }

// PositionAt converts an absolute byte offset to a 1-based (line,
// column) pair.
func (t *PieceTree) PositionAt(offset int) (line, column int) {
	return t.core.PositionAt(offset)
}

// OffsetAt converts a 1-based (line, column) pair to an absolute byte
// offset.
func (t *PieceTree) OffsetAt(line, column int) int {
	return t.core.OffsetAt(line, column)
}

// LineContent returns 1-based lineNumber's bytes, excluding its
// trailing terminator.
func (t *PieceTree) LineContent(lineNumber int) ([]byte, error) {
	b, err := t.core.LineContent(lineNumber)
	return b, convertErr(err)
}

// LineContentRaw returns 1-based lineNumber's bytes including its
// trailing terminator (SPEC_FULL.md §9).
func (t *PieceTree) LineContentRaw(lineNumber int) ([]byte, error) {
	b, err := t.core.LineContentRaw(lineNumber)
	return b, convertErr(err)
}

// LineLength returns the byte length of 1-based lineNumber, excluding
// its trailing terminator.
func (t *PieceTree) LineLength(lineNumber int) (int, error) {
	n, err := t.core.LineLength(lineNumber)
	return n, convertErr(err)
}

// ValueInRange returns the bytes covering r. Reversed endpoints are
// normalized by swapping (spec.md §7). If requestedEOL is non-empty,
// every terminator in the result is rewritten to it when needed.
func (t *PieceTree) ValueInRange(r Range, requestedEOL string) []byte {
	return t.core.ValueInRange(r, requestedEOL)
}

// Value returns the entire document.
func (t *PieceTree) Value() []byte { return t.core.Value() }

// LinesContent returns every line's bytes, each without its trailing
// terminator, in document order.
func (t *PieceTree) LinesContent() [][]byte { return t.core.LinesContent() }

// ByteAt returns the byte at absolute offset, and whether offset was
// in range (SPEC_FULL.md §9).
func (t *PieceTree) ByteAt(offset int) (byte, bool) { return t.core.ByteAt(offset) }

// Equal reports whether t and other currently hold identical document
// bytes (SPEC_FULL.md §9).
func (t *PieceTree) Equal(other *PieceTree) bool {
	if other == nil {
		return false
	}
	return t.core.Equal(other.core)
}

// Insert applies prefix(offset) + text + suffix(offset) to the
// document. eolNormalized lets the caller assert text contains only
// the active EOL's terminator.
func (t *PieceTree) Insert(offset int, text []byte, eolNormalized bool) {
	t.core.Insert(offset, text, eolNormalized)
}

// Delete applies prefix(offset) + suffix(offset+count) to the
// document.
func (t *PieceTree) Delete(offset, count int) { t.core.Delete(offset, count) }

// SetEOL rewrites every line terminator in the document to newEOL and
// marks the document normalized.
func (t *PieceTree) SetEOL(newEOL string) { t.core.SetEOL(newEOL) }

// CreateSnapshot captures the document's current content into a
// read-only Snapshot, reattaching whatever byte-order mark was
// stripped from the original input at construction.
func (t *PieceTree) CreateSnapshot() *Snapshot {
	return t.core.Snapshot(t.bom)
}

// BOM returns the byte-order mark stripped from the input at
// construction, or the empty string if none was present.
func (t *PieceTree) BOM() string { return t.bom }
