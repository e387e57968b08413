package rbtree

import "github.com/textbuf/piecetree/internal/engine/piece"

// Color is a red-black tree node color. The zero value is Black,
// which is what the shared sentinel needs.
type Color bool

const (
	Black Color = false
	Red   Color = true
)

// Node is a red-black tree node carrying a Piece and the augmented
// sums size_left and lf_left over its left subtree.
type Node struct {
	Parent, Left, Right *Node
	Color               Color
	Piece               piece.Piece

	// SizeLeft is the total Piece.Length of every node in the
	// in-order traversal of Left.
	SizeLeft int
	// LFLeft is the total Piece.LineFeedCnt of the same nodes.
	LFLeft int
}
