package core

import (
	"github.com/textbuf/piecetree/internal/engine/piece"
	"github.com/textbuf/piecetree/internal/engine/rbtree"
	"github.com/textbuf/piecetree/internal/engine/strbuffer"
)

// SetEOL rewrites every line terminator in the document to newEOL and
// marks the document normalized (spec.md §4.8). It works by
// re-chunking the whole document content and rebuilding the tree and
// buffer list from scratch, since a uniform, once-per-document
// substitution is simpler and no less correct than trying to patch
// terminators piece by piece across arbitrary split boundaries.
func (t *PieceTree) SetEOL(newEOL string) {
	const chunkTarget = 2 * AverageBufferSize

	var chunks [][]byte
	var cur []byte
	t.tree.Iterate(func(n *rbtree.Node) bool {
		buf := t.buffers.Get(n.Piece.BufferIndex)
		cur = append(cur, buf.Slice(n.Piece.Start, n.Piece.End)...)
		if len(cur) >= chunkTarget {
			chunks = append(chunks, cur)
			cur = nil
		}
		return true
	})
	if len(cur) > 0 || len(chunks) == 0 {
		chunks = append(chunks, cur)
	}
	for i, c := range chunks {
		chunks[i] = rewriteEOL(c, newEOL)
	}

	t.buffers = strbuffer.NewList()
	t.tree = rbtree.New()
	t.cache.Clear()

	for _, c := range chunks {
		if len(c) == 0 {
			continue
		}
		buf := strbuffer.FromBytes(c)
		idx := t.buffers.Add(buf)
		t.appendPieceNode(pieceForWholeBuffer(idx, buf))
	}

	t.eol = newEOL
	t.eolNormalized = true
	t.lastChangeBufferPos = piece.Cursor{}
	t.recomputeTotals()
	t.invalidateMemo()
}
