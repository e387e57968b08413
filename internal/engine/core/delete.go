package core

import (
	"github.com/textbuf/piecetree/internal/engine/piece"
	"github.com/textbuf/piecetree/internal/engine/rbtree"
)

// Delete applies prefix(offset) + suffix(offset+count) to the
// document (spec.md §4.7). A non-positive count, or deletion against
// an empty tree, is a no-op; offset+count is clamped to Length().
func (t *PieceTree) Delete(offset, count int) {
	if count <= 0 || t.tree.IsEmpty() {
		return
	}
	offset = clampInt(offset, 0, t.totalBytes)
	end := clampInt(offset+count, 0, t.totalBytes)
	if end <= offset {
		return
	}

	startPos := t.nodeAt(offset)
	endPos := t.nodeAt(end)

	if startPos.Node == endPos.Node {
		t.deleteWithinSingleNode(startPos, end)
	} else {
		t.deleteAcrossNodes(startPos, endPos, end)
	}

	t.cache.Clear()
	t.repairJoinCRLF(offset)
	t.recomputeTotals()
	t.invalidateMemo()
}

// deleteWithinSingleNode covers spec.md §4.7's "single-piece
// deletion": both endpoints fall inside one node.
func (t *PieceTree) deleteWithinSingleNode(np rbtree.NodePosition, end int) {
	node := np.Node
	p := node.Piece
	buf := t.buffers.Get(p.BufferIndex)
	delStart := np.Remainder
	delEnd := end - np.NodeStartOffset

	switch {
	case delStart == 0 && delEnd == p.Length:
		t.tree.Delete(node)
	case delStart == 0:
		newP, empty := shrinkHeadPiece(p, buf, delEnd)
		if empty {
			t.tree.Delete(node)
		} else {
			t.replacePieceInPlace(node, newP)
		}
	case delEnd == p.Length:
		newP, empty := shrinkTailPiece(p, buf, p.Length-delStart)
		if empty {
			t.tree.Delete(node)
		} else {
			t.replacePieceInPlace(node, newP)
		}
	default:
		leftEnd := bufferCursorAt(buf, p, delStart)
		rightStart := bufferCursorAt(buf, p, delEnd)
		leftPiece := makePiece(p.BufferIndex, buf, p.Start, leftEnd)
		rightPiece := makePiece(p.BufferIndex, buf, rightStart, p.End)
		t.replaceNodeWithSequence(node, []piece.Piece{leftPiece, rightPiece})
	}
}

// deleteAcrossNodes covers spec.md §4.7's "cross-piece deletion":
// shrink the boundary nodes' surviving edges, and remove every node
// (boundary or interior) that ends up fully covered by the deletion.
func (t *PieceTree) deleteAcrossNodes(startPos, endPos rbtree.NodePosition, end int) {
	startNode := startPos.Node
	endNode := endPos.Node

	var toDelete []*rbtree.Node
	for n := t.tree.Next(startNode); n != endNode && n != t.tree.NIL; n = t.tree.Next(n) {
		toDelete = append(toDelete, n)
	}

	sp := startNode.Piece
	sBuf := t.buffers.Get(sp.BufferIndex)
	if startPos.Remainder == 0 {
		toDelete = append([]*rbtree.Node{startNode}, toDelete...)
	} else {
		newStart, empty := shrinkTailPiece(sp, sBuf, sp.Length-startPos.Remainder)
		if empty {
			toDelete = append([]*rbtree.Node{startNode}, toDelete...)
		} else {
			t.replacePieceInPlace(startNode, newStart)
		}
	}

	ep := endNode.Piece
	eBuf := t.buffers.Get(ep.BufferIndex)
	endRemainder := end - endPos.NodeStartOffset
	if endRemainder == ep.Length {
		toDelete = append(toDelete, endNode)
	} else {
		newEnd, empty := shrinkHeadPiece(ep, eBuf, endRemainder)
		if empty {
			toDelete = append(toDelete, endNode)
		} else {
			t.replacePieceInPlace(endNode, newEnd)
		}
	}

	for _, n := range toDelete {
		t.tree.Delete(n)
	}
}
