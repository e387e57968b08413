package rbtree

// NodePosition locates an absolute byte offset inside a specific
// node's Piece (spec.md §4.5).
type NodePosition struct {
	Node *Node
	// Remainder is the byte offset within Node.Piece.
	Remainder int
	// NodeStartOffset is the absolute byte offset of Node.Piece's
	// first byte.
	NodeStartOffset int
	// NodeStartLineNumber is the 0-based document line number at
	// which Node.Piece begins.
	NodeStartLineNumber int
}

// LinePosition locates a 0-based line-start index inside a specific
// node's Piece.
type LinePosition struct {
	Node *Node
	// Remainder is the count of line terminators consumed within
	// Node.Piece to reach the target line start.
	Remainder int
	// NodeStartOffset is the absolute byte offset of Node.Piece's
	// first byte.
	NodeStartOffset int
	// NodeStartLine is the 0-based line number at which Node.Piece
	// begins.
	NodeStartLine int
}

// NodeAt descends the tree by cumulative byte size to find the node
// containing absolute offset o. When o lands exactly on a piece
// boundary, the descent stops at whichever of the two adjacent nodes
// it meets first: the tail of the preceding piece (Remainder == that
// piece's length) when the preceding node is the higher of the two,
// or the head of the next piece (Remainder == 0) when the next node
// is an ancestor of the preceding one.
func (t *Tree) NodeAt(o int) NodePosition {
	x := t.Root
	remaining := o
	accOffset := 0
	accLine := 0
	for x != t.NIL {
		switch {
		case x.SizeLeft > remaining:
			x = x.Left
		case x.SizeLeft+x.Piece.Length >= remaining:
			return NodePosition{
				Node:                x,
				Remainder:           remaining - x.SizeLeft,
				NodeStartOffset:     accOffset + x.SizeLeft,
				NodeStartLineNumber: accLine + x.LFLeft,
			}
		default:
			remaining -= x.SizeLeft + x.Piece.Length
			accOffset += x.SizeLeft + x.Piece.Length
			accLine += x.LFLeft + x.Piece.LineFeedCnt
			x = x.Right
		}
	}
	return NodePosition{Node: t.NIL}
}

// NodeAt2 descends the tree by cumulative line-feed count to find the
// node whose Piece contains the start of 0-based line index line.
func (t *Tree) NodeAt2(line int) LinePosition {
	x := t.Root
	remaining := line
	accOffset := 0
	accLine := 0
	for x != t.NIL {
		switch {
		case x.Left != t.NIL && x.LFLeft >= remaining:
			x = x.Left
		case x.LFLeft+x.Piece.LineFeedCnt >= remaining:
			return LinePosition{
				Node:            x,
				Remainder:       remaining - x.LFLeft,
				NodeStartOffset: accOffset + x.SizeLeft,
				NodeStartLine:   accLine + x.LFLeft,
			}
		default:
			remaining -= x.LFLeft + x.Piece.LineFeedCnt
			accOffset += x.SizeLeft + x.Piece.Length
			accLine += x.LFLeft + x.Piece.LineFeedCnt
			x = x.Right
		}
	}
	return LinePosition{Node: t.NIL}
}
