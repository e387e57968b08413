package core

import (
	"github.com/textbuf/piecetree/internal/engine/piece"
	"github.com/textbuf/piecetree/internal/engine/rbtree"
	"github.com/textbuf/piecetree/internal/engine/strbuffer"
)

// Insert applies prefix(offset) + text + suffix(offset) to the
// document (spec.md §4.6). Empty text is a no-op; offset is clamped
// to [0, Length()]. eolNormalizedAssert lets the caller claim text
// contains only the active EOL's terminator; otherwise eolNormalized
// is cleared.
func (t *PieceTree) Insert(offset int, text []byte, eolNormalizedAssert bool) {
	if len(text) == 0 {
		return
	}
	offset = clampInt(offset, 0, t.totalBytes)

	if t.tree.IsEmpty() {
		t.attachPiecesAsRoot(t.createNewPieces(text))
		t.finishInsert(eolNormalizedAssert)
		return
	}

	np := t.nodeAt(offset)
	if t.tryFastAppend(np, offset, text) {
		t.finishInsert(eolNormalizedAssert)
		return
	}

	node := np.Node
	switch {
	case np.NodeStartOffset == offset:
		t.insertAtLeftBoundary(node, text)
	case offset < np.NodeStartOffset+node.Piece.Length:
		t.insertInterior(node, np, offset, text)
	default:
		t.insertAtRightBoundary(node, text)
	}
	t.finishInsert(eolNormalizedAssert)
}

func (t *PieceTree) finishInsert(eolNormalizedAssert bool) {
	t.recomputeTotals()
	t.invalidateMemo()
	if !eolNormalizedAssert {
		t.eolNormalized = false
	}
}

func (t *PieceTree) attachPiecesAsRoot(pieces []piece.Piece) {
	for i, p := range pieces {
		if i == 0 {
			t.tree.InsertLeft(t.tree.NIL, p)
		} else {
			t.appendPieceNode(p)
		}
	}
}

// tryFastAppend implements the common-case typing path of spec.md
// §4.6: growing the tail piece of the change buffer in place instead
// of allocating a new Piece and node. It refuses whenever growing in
// place would require the CRLF padding byte, since that byte must
// never be covered by an existing piece's range.
func (t *PieceTree) tryFastAppend(np rbtree.NodePosition, offset int, text []byte) bool {
	node := np.Node
	if node == t.tree.NIL {
		return false
	}
	p := node.Piece
	if p.BufferIndex != 0 {
		return false
	}
	if p.End != t.lastChangeBufferPos {
		return false
	}
	if np.NodeStartOffset+p.Length != offset {
		return false
	}
	if len(text) >= AverageBufferSize {
		return false
	}
	buf := t.buffers.Change()
	if buf.NeedsCRLFPad(text) {
		return false
	}
	buf.Append(text)
	endCur := buf.EndCursor()
	t.lastChangeBufferPos = endCur
	t.replacePieceInPlace(node, makePiece(0, buf, p.Start, endCur))
	t.cache.Validate(offset)
	return true
}

// plantPiecesLeftOf inserts pieces, in order, as the new immediate
// predecessors of node.
func (t *PieceTree) plantPiecesLeftOf(node *rbtree.Node, pieces []piece.Piece) {
	if len(pieces) == 0 {
		return
	}
	prev := t.tree.InsertLeft(node, pieces[0])
	for _, p := range pieces[1:] {
		prev = t.tree.InsertRight(prev, p)
	}
}

// plantPiecesRightOf inserts pieces, in order, as the new immediate
// successors of node.
func (t *PieceTree) plantPiecesRightOf(node *rbtree.Node, pieces []piece.Piece) {
	prev := node
	for _, p := range pieces {
		prev = t.tree.InsertRight(prev, p)
	}
}

// insertAtLeftBoundary handles offset == np.NodeStartOffset: the new
// text lands immediately before node.
func (t *PieceTree) insertAtLeftBoundary(node *rbtree.Node, text []byte) {
	buf := t.buffers.Get(node.Piece.BufferIndex)
	startsWithLF := node.Piece.Length > 0 && buf.ByteAt(bufferOffsetOf(buf, node.Piece.Start)) == '\n'

	if len(text) > 0 && text[len(text)-1] == '\r' && startsWithLF {
		newNodePiece, empty := shrinkHeadPiece(node.Piece, buf, 1)
		fused := append(append([]byte(nil), text...), '\n')
		t.plantPiecesLeftOf(node, t.createNewPieces(fused))
		if empty {
			t.tree.Delete(node)
		} else {
			t.replacePieceInPlace(node, newNodePiece)
		}
	} else {
		t.plantPiecesLeftOf(node, t.createNewPieces(text))
	}
	t.cache.Clear()
}

// insertAtRightBoundary handles offset == np.NodeStartOffset +
// node.Piece.Length: the new text lands immediately after node.
func (t *PieceTree) insertAtRightBoundary(node *rbtree.Node, text []byte) {
	buf := t.buffers.Get(node.Piece.BufferIndex)
	endsWithCR := node.Piece.Length > 0 && buf.ByteAt(bufferOffsetOf(buf, node.Piece.End)-1) == '\r'

	textToInsert := append([]byte(nil), text...)
	if endsWithCR {
		if succ := t.tree.Next(node); succ != t.tree.NIL {
			succBuf := t.buffers.Get(succ.Piece.BufferIndex)
			if succ.Piece.Length > 0 && succBuf.ByteAt(bufferOffsetOf(succBuf, succ.Piece.Start)) == '\n' {
				textToInsert = append(textToInsert, '\n')
				newSucc, empty := shrinkHeadPiece(succ.Piece, succBuf, 1)
				if empty {
					t.tree.Delete(succ)
				} else {
					t.replacePieceInPlace(succ, newSucc)
				}
			}
		}
	}

	t.plantPiecesRightOf(node, t.createNewPieces(textToInsert))
	t.cache.Clear()
}

// insertInterior handles np.NodeStartOffset < offset <
// np.NodeStartOffset+node.Piece.Length: node splits around the
// insertion point, with the two CRLF-fusion cases of spec.md §4.6
// folded into where the split cursors and inserted text land.
func (t *PieceTree) insertInterior(node *rbtree.Node, np rbtree.NodePosition, offset int, text []byte) {
	p := node.Piece
	buf := t.buffers.Get(p.BufferIndex)
	splitCur := bufferCursorAt(buf, p, offset-np.NodeStartOffset)

	leftEnd := splitCur
	rightStart := splitCur
	textToInsert := append([]byte(nil), text...)

	if len(textToInsert) > 0 && textToInsert[len(textToInsert)-1] == '\r' &&
		bufferOffsetOf(buf, rightStart) < bufferOffsetOf(buf, p.End) &&
		buf.ByteAt(bufferOffsetOf(buf, rightStart)) == '\n' {
		rightStart = cursorAtBufferOffset(buf, bufferOffsetOf(buf, rightStart)+1)
		textToInsert = append(textToInsert, '\n')
	}

	if len(textToInsert) > 0 && textToInsert[0] == '\n' &&
		bufferOffsetOf(buf, leftEnd) > bufferOffsetOf(buf, p.Start) &&
		buf.ByteAt(bufferOffsetOf(buf, leftEnd)-1) == '\r' {
		leftEnd = cursorAtBufferOffset(buf, bufferOffsetOf(buf, leftEnd)-1)
		textToInsert = append([]byte{'\r'}, textToInsert...)
	}

	leftPiece := makePiece(p.BufferIndex, buf, p.Start, leftEnd)
	rightPiece := makePiece(p.BufferIndex, buf, rightStart, p.End)
	newPieces := t.createNewPieces(textToInsert)

	seq := make([]piece.Piece, 0, 2+len(newPieces))
	if leftPiece.Length > 0 {
		seq = append(seq, leftPiece)
	}
	seq = append(seq, newPieces...)
	if rightPiece.Length > 0 {
		seq = append(seq, rightPiece)
	}
	t.replaceNodeWithSequence(node, seq)
	t.cache.Clear()
}

// appendNewPieceToChangeBuffer appends text to the change buffer,
// applying the CRLF padding rule of spec.md §4.2, and returns the
// single Piece describing it.
func (t *PieceTree) appendNewPieceToChangeBuffer(text []byte) piece.Piece {
	buf := t.buffers.Change()
	if buf.NeedsCRLFPad(text) {
		buf.Pad()
	}
	startCur := buf.EndCursor()
	buf.Append(text)
	endCur := buf.EndCursor()
	t.lastChangeBufferPos = endCur
	return makePiece(0, buf, startCur, endCur)
}

// safeChunkBoundary backs n off, if necessary, so that byte n does
// not fall between a CR and its following LF, nor inside a multi-byte
// UTF-8 code point (spec.md §4.6/§9).
func safeChunkBoundary(v []byte, n int) int {
	if n <= 0 || n >= len(v) {
		return n
	}
	if v[n-1] == '\r' && v[n] == '\n' {
		n--
	}
	for n > 0 && v[n]&0xC0 == 0x80 {
		n--
	}
	if n <= 0 {
		n = 1
	}
	return n
}

// createNewPieces implements spec.md §4.6's chunking rule: text at or
// below AverageBufferSize becomes one Piece appended to the change
// buffer; larger text is cut into AverageBufferSize-ish chunks, each
// backed by its own fresh immutable buffer.
func (t *PieceTree) createNewPieces(v []byte) []piece.Piece {
	if len(v) == 0 {
		return nil
	}
	if len(v) <= AverageBufferSize {
		return []piece.Piece{t.appendNewPieceToChangeBuffer(v)}
	}
	var pieces []piece.Piece
	for len(v) > 0 {
		chunkLen := AverageBufferSize
		if chunkLen > len(v) {
			chunkLen = len(v)
		}
		chunkLen = safeChunkBoundary(v, chunkLen)
		chunk := append([]byte(nil), v[:chunkLen]...)
		buf := strbuffer.FromBytes(chunk)
		idx := t.buffers.Add(buf)
		pieces = append(pieces, pieceForWholeBuffer(idx, buf))
		v = v[chunkLen:]
	}
	return pieces
}
