package core

import "github.com/textbuf/piecetree/internal/engine/rbtree"

// fixCRLF repairs the join left by a deletion (it is called only from
// repairJoinCRLF; insert.go fuses its own cases inline): when left
// ends in '\r' immediately adjacent to right beginning with '\n', it
// shortens each side by one byte and
// splices a fresh two-byte "\r\n" Piece between them, rather than
// leaving the pair split across two Pieces.
func (t *PieceTree) fixCRLF(left, right *rbtree.Node) {
	if left == t.tree.NIL || right == t.tree.NIL {
		return
	}
	if left.Piece.Length == 0 || right.Piece.Length == 0 {
		return
	}
	leftBuf := t.buffers.Get(left.Piece.BufferIndex)
	if leftBuf.ByteAt(bufferOffsetOf(leftBuf, left.Piece.End)-1) != '\r' {
		return
	}
	rightBuf := t.buffers.Get(right.Piece.BufferIndex)
	if rightBuf.ByteAt(bufferOffsetOf(rightBuf, right.Piece.Start)) != '\n' {
		return
	}

	newLeft, deleteLeft := shrinkTailPiece(left.Piece, leftBuf, 1)
	newRight, deleteRight := shrinkHeadPiece(right.Piece, rightBuf, 1)
	glue := t.appendNewPieceToChangeBuffer([]byte("\r\n"))

	if deleteLeft {
		t.tree.Delete(left)
	} else {
		t.replacePieceInPlace(left, newLeft)
	}
	t.tree.InsertLeft(right, glue)
	if deleteRight {
		t.tree.Delete(right)
	} else {
		t.replacePieceInPlace(right, newRight)
	}
	t.cache.Clear()
}

// repairJoinCRLF checks whether the surviving byte boundary at offset
// (after a deletion) newly exposes a split CRLF pair, and fuses it if
// so (spec.md §4.7's "CRLF repair at the join").
func (t *PieceTree) repairJoinCRLF(offset int) {
	if t.tree.IsEmpty() || offset <= 0 || offset >= t.tree.TotalSize() {
		return
	}
	pos := t.nodeAt(offset)
	if pos.Node == t.tree.NIL {
		return
	}
	var prev, next *rbtree.Node
	switch pos.Remainder {
	case pos.Node.Piece.Length:
		prev, next = pos.Node, t.tree.Next(pos.Node)
	case 0:
		prev, next = t.tree.Prev(pos.Node), pos.Node
	default:
		return
	}
	t.fixCRLF(prev, next)
}
