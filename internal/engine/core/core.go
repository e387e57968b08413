package core

import (
	"github.com/textbuf/piecetree/internal/engine/cache"
	"github.com/textbuf/piecetree/internal/engine/piece"
	"github.com/textbuf/piecetree/internal/engine/rbtree"
	"github.com/textbuf/piecetree/internal/engine/strbuffer"
)

// AverageBufferSize is the chunking threshold of spec.md §4.2/§4.6/§9:
// inserted text at or below this size is appended to the change
// buffer as a single Piece; larger text is cut into chunks of at most
// this many bytes, each backed by its own fresh buffer.
const AverageBufferSize = 65535

// lineMemo remembers the most recently rendered line, so that
// repeated LineContent calls for the same line (a very common access
// pattern for a display that redraws one line at a time) skip the
// descent and byte-gathering work entirely.
type lineMemo struct {
	valid   bool
	line    int
	content []byte
}

// PieceTree owns the buffer list, the tree, the search cache, the
// active EOL, and the cached totals (spec.md §3's "PieceTree state").
type PieceTree struct {
	buffers *strbuffer.List
	tree    *rbtree.Tree
	cache   *cache.Cache

	eol           string
	eolNormalized bool

	lastChangeBufferPos piece.Cursor

	totalBytes int
	totalLines int

	memo lineMemo
}

// New constructs a PieceTree from the builder's original buffers
// (index 0 of the resulting list is always a fresh, empty change
// buffer prepended here), per spec.md §6's construction contract.
func New(originals []*strbuffer.Buffer, eol string, eolNormalized bool) *PieceTree {
	t := &PieceTree{
		buffers:       strbuffer.NewListFromBuffers(originals),
		tree:          rbtree.New(),
		cache:         cache.New(cache.DefaultLimit),
		eol:           eol,
		eolNormalized: eolNormalized,
	}
	for i := 1; i < t.buffers.Len(); i++ {
		b := t.buffers.Get(i)
		if b.Len() == 0 {
			continue
		}
		t.appendPieceNode(pieceForWholeBuffer(i, b))
	}
	t.recomputeTotals()
	return t
}

func pieceForWholeBuffer(bufIndex int, b *strbuffer.Buffer) piece.Piece {
	end := b.EndCursor()
	return piece.Piece{
		BufferIndex: bufIndex,
		Start:       piece.Cursor{Line: 0, Column: 0},
		End:         end,
		Length:      b.Len(),
		LineFeedCnt: end.Line,
	}
}

// appendPieceNode plants p as the new right-most node of the tree.
func (t *PieceTree) appendPieceNode(p piece.Piece) *rbtree.Node {
	if t.tree.IsEmpty() {
		return t.tree.InsertRight(t.tree.NIL, p)
	}
	return t.tree.InsertRight(t.tree.Maximum(t.tree.Root), p)
}

func (t *PieceTree) recomputeTotals() {
	t.totalBytes = t.tree.TotalSize()
	t.totalLines = t.tree.TotalLineFeeds() + 1
}

func (t *PieceTree) invalidateMemo() {
	t.memo.valid = false
}

// Length returns the total byte length of the document.
func (t *PieceTree) Length() int { return t.totalBytes }

// LineCount returns the number of lines (always ≥ 1).
func (t *PieceTree) LineCount() int { return t.totalLines }

// EOL returns the currently active end-of-line string.
func (t *PieceTree) EOL() string { return t.eol }

// EOLNormalized reports whether every line terminator in the document
// is known to match EOL().
func (t *PieceTree) EOLNormalized() bool { return t.eolNormalized }

// nodeAt resolves absolute offset o to a NodePosition, consulting and
// then refreshing the search cache (spec.md §4.4).
func (t *PieceTree) nodeAt(o int) rbtree.NodePosition {
	if e, ok := t.cache.Get(o); ok {
		return rbtree.NodePosition{
			Node:                e.Node,
			Remainder:           o - e.NodeStartOffset,
			NodeStartOffset:     e.NodeStartOffset,
			NodeStartLineNumber: e.NodeStartLineNumber,
		}
	}
	np := t.tree.NodeAt(o)
	if np.Node != t.tree.NIL {
		t.cache.Set(cache.Entry{
			Node:                np.Node,
			NodeStartOffset:     np.NodeStartOffset,
			NodeStartLineNumber: np.NodeStartLineNumber,
		})
	}
	return np
}

// nodeAt2 resolves 0-based document line l0 to a LinePosition, via
// the same cache.
func (t *PieceTree) nodeAt2(l0 int) rbtree.LinePosition {
	if e, ok := t.cache.Get2(l0); ok && e.NodeStartLineNumber >= 0 && e.NodeStartLineNumber < l0 {
		return rbtree.LinePosition{
			Node:            e.Node,
			Remainder:       l0 - e.NodeStartLineNumber,
			NodeStartOffset: e.NodeStartOffset,
			NodeStartLine:   e.NodeStartLineNumber,
		}
	}
	lp := t.tree.NodeAt2(l0)
	if lp.Node != t.tree.NIL {
		t.cache.Set(cache.Entry{
			Node:                lp.Node,
			NodeStartOffset:     lp.NodeStartOffset,
			NodeStartLineNumber: lp.NodeStartLine,
		})
	}
	return lp
}

// bufferCursorAt maps byteOffsetInPiece (0 ≤ byteOffsetInPiece ≤
// p.Length) to a BufferCursor, binary-searching buf's line-start
// table restricted to [p.Start.Line, p.End.Line] (spec.md §4.5).
func bufferCursorAt(buf *strbuffer.Buffer, p piece.Piece, byteOffsetInPiece int) piece.Cursor {
	startOffset := buf.LineStarts[p.Start.Line] + p.Start.Column
	target := startOffset + byteOffsetInPiece
	lo, hi := p.Start.Line, p.End.Line
	for lo < hi {
		mid := (lo + hi + 1) / 2
		if buf.LineStarts[mid] <= target {
			lo = mid
		} else {
			hi = mid - 1
		}
	}
	return piece.Cursor{Line: lo, Column: target - buf.LineStarts[lo]}
}

// cursorAtBufferOffset maps an absolute byte offset anywhere in buf to
// a BufferCursor, with no restriction to a particular piece's line
// range. Used for edit-time arithmetic (shrinking a piece by a fixed
// byte count, locating a split point) where the offset may not fall
// within any single piece's own [start.line, end.line] window.
func cursorAtBufferOffset(buf *strbuffer.Buffer, absOffset int) piece.Cursor {
	lo, hi := 0, len(buf.LineStarts)-1
	for lo < hi {
		mid := (lo + hi + 1) / 2
		if buf.LineStarts[mid] <= absOffset {
			lo = mid
		} else {
			hi = mid - 1
		}
	}
	return piece.Cursor{Line: lo, Column: absOffset - buf.LineStarts[lo]}
}

// bufferOffsetOf returns c's absolute byte offset within buf.
func bufferOffsetOf(buf *strbuffer.Buffer, c piece.Cursor) int {
	return buf.LineStarts[c.Line] + c.Column
}

// makePiece builds a Piece from a buffer index and cursor span,
// deriving Length and LineFeedCnt rather than taking them on faith:
// LineFeedCnt is exactly end.Line - start.Line, since the line-start
// table records precisely one entry per terminator (spec.md §3).
func makePiece(bufIdx int, buf *strbuffer.Buffer, start, end piece.Cursor) piece.Piece {
	return piece.Piece{
		BufferIndex: bufIdx,
		Start:       start,
		End:         end,
		Length:      bufferOffsetOf(buf, end) - bufferOffsetOf(buf, start),
		LineFeedCnt: end.Line - start.Line,
	}
}

// shrinkTailPiece removes n bytes from the end of p, reporting empty
// == true when doing so leaves nothing behind (caller must then
// delete the owning node rather than replace its Piece).
func shrinkTailPiece(p piece.Piece, buf *strbuffer.Buffer, n int) (np piece.Piece, empty bool) {
	if p.Length-n <= 0 {
		return piece.Piece{}, true
	}
	newEnd := cursorAtBufferOffset(buf, bufferOffsetOf(buf, p.End)-n)
	return makePiece(p.BufferIndex, buf, p.Start, newEnd), false
}

// shrinkHeadPiece removes n bytes from the start of p, symmetric to
// shrinkTailPiece.
func shrinkHeadPiece(p piece.Piece, buf *strbuffer.Buffer, n int) (np piece.Piece, empty bool) {
	if p.Length-n <= 0 {
		return piece.Piece{}, true
	}
	newStart := cursorAtBufferOffset(buf, bufferOffsetOf(buf, p.Start)+n)
	return makePiece(p.BufferIndex, buf, newStart, p.End), false
}

// replacePieceInPlace swaps in newPiece for n's current Piece and
// propagates the resulting size/lf delta to the root (spec.md §4.3).
// It never restructures the tree.
func (t *PieceTree) replacePieceInPlace(n *rbtree.Node, newPiece piece.Piece) {
	old := n.Piece
	n.Piece = newPiece
	t.tree.ApplyDelta(n, newPiece.Length-old.Length, newPiece.LineFeedCnt-old.LineFeedCnt)
}

// replaceNodeWithSequence replaces node with an ordered run of pieces:
// the first reuses node's own slot (a cheap in-place swap), and the
// rest chain off it to the right, which places them, in order,
// exactly where node used to sit.
func (t *PieceTree) replaceNodeWithSequence(node *rbtree.Node, pieces []piece.Piece) {
	if len(pieces) == 0 {
		t.tree.Delete(node)
		return
	}
	t.replacePieceInPlace(node, pieces[0])
	prev := node
	for _, p := range pieces[1:] {
		prev = t.tree.InsertRight(prev, p)
	}
}

// accumulatedValue returns the byte offset within p of the first byte
// after the i-th line terminator inside p (or p.Length if i is beyond
// p's own line-feed count), per spec.md §4.5's getAccumulatedValue.
func (t *PieceTree) accumulatedValue(p piece.Piece, i int) int {
	if i < 0 {
		return 0
	}
	buf := t.buffers.Get(p.BufferIndex)
	startOffset := buf.LineStarts[p.Start.Line] + p.Start.Column
	if p.LineFeedCnt <= i {
		endOffset := buf.LineStarts[p.End.Line] + p.End.Column
		return endOffset - startOffset
	}
	lineStartOffset := buf.LineStarts[p.Start.Line+i+1]
	return lineStartOffset - startOffset
}

// startOffsetOfLine returns the absolute document byte offset of the
// first byte of 0-based line l0.
func (t *PieceTree) startOffsetOfLine(l0 int) int {
	if l0 <= 0 {
		return 0
	}
	lp := t.nodeAt2(l0)
	if lp.Node == t.tree.NIL {
		return t.totalBytes
	}
	within := t.accumulatedValue(lp.Node.Piece, lp.Remainder-1)
	return lp.NodeStartOffset + within
}

// bytesInRange gathers the document bytes covering [start, end).
func (t *PieceTree) bytesInRange(start, end int) []byte {
	if end <= start {
		return nil
	}
	out := make([]byte, 0, end-start)
	offset := 0
	t.tree.Iterate(func(n *rbtree.Node) bool {
		pieceStart := offset
		pieceEnd := offset + n.Piece.Length
		offset = pieceEnd
		if pieceEnd <= start {
			return true
		}
		if pieceStart >= end {
			return false
		}
		lo := start - pieceStart
		if lo < 0 {
			lo = 0
		}
		hi := end - pieceStart
		if hi > n.Piece.Length {
			hi = n.Piece.Length
		}
		buf := t.buffers.Get(n.Piece.BufferIndex)
		startCur := bufferCursorAt(buf, n.Piece, lo)
		endCur := bufferCursorAt(buf, n.Piece, hi)
		out = append(out, buf.Slice(startCur, endCur)...)
		return true
	})
	return out
}
