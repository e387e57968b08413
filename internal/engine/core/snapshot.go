package core

import (
	"github.com/textbuf/piecetree/internal/engine/piece"
	"github.com/textbuf/piecetree/internal/engine/rbtree"
	"github.com/textbuf/piecetree/internal/engine/snapshot"
)

// Snapshot captures the document's current Pieces, in order, into a
// read-only Snapshot carrying bom as its byte-order-mark prefix
// (spec.md §4.9). The capture is O(n) in the current piece count but
// touches no buffer bytes; those are only sliced lazily as the
// snapshot is read.
func (t *PieceTree) Snapshot(bom string) *snapshot.Snapshot {
	var pieces []piece.Piece
	t.tree.Iterate(func(n *rbtree.Node) bool {
		pieces = append(pieces, n.Piece)
		return true
	})
	return snapshot.New(t.buffers, pieces, bom)
}
