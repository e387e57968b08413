package rbtree

// Tree is an augmented red-black tree of Pieces, addressed through a
// single shared sentinel (NIL) that stands in for every leaf.
type Tree struct {
	Root *Node
	NIL  *Node
}

// New returns an empty tree.
func New() *Tree {
	sentinel := &Node{Color: Black}
	sentinel.Parent = sentinel
	sentinel.Left = sentinel
	sentinel.Right = sentinel
	return &Tree{Root: sentinel, NIL: sentinel}
}

// IsEmpty reports whether the tree holds no nodes.
func (t *Tree) IsEmpty() bool {
	return t.Root == t.NIL
}

// Minimum returns the leftmost node of the subtree rooted at x.
func (t *Tree) Minimum(x *Node) *Node {
	for x.Left != t.NIL {
		x = x.Left
	}
	return x
}

// Maximum returns the rightmost node of the subtree rooted at x.
func (t *Tree) Maximum(x *Node) *Node {
	for x.Right != t.NIL {
		x = x.Right
	}
	return x
}

// Next returns the in-order successor of x, or NIL if x is the last
// node.
func (t *Tree) Next(x *Node) *Node {
	if x.Right != t.NIL {
		return t.Minimum(x.Right)
	}
	y := x.Parent
	for y != t.NIL && x == y.Right {
		x = y
		y = y.Parent
	}
	return y
}

// Prev returns the in-order predecessor of x, or NIL if x is the
// first node.
func (t *Tree) Prev(x *Node) *Node {
	if x.Left != t.NIL {
		return t.Maximum(x.Left)
	}
	y := x.Parent
	for y != t.NIL && x == y.Left {
		x = y
		y = y.Parent
	}
	return y
}

// Iterate walks every node in order, stopping early if fn returns
// false.
func (t *Tree) Iterate(fn func(*Node) bool) {
	t.iterate(t.Root, fn)
}

func (t *Tree) iterate(x *Node, fn func(*Node) bool) bool {
	if x == t.NIL {
		return true
	}
	if !t.iterate(x.Left, fn) {
		return false
	}
	if !fn(x) {
		return false
	}
	return t.iterate(x.Right, fn)
}

// OffsetOfNode returns the absolute byte offset of the start of x's
// Piece.
func (t *Tree) OffsetOfNode(x *Node) int {
	if x == t.NIL {
		return 0
	}
	offset := x.SizeLeft
	for x != t.Root {
		if x.Parent.Right == x {
			offset += x.Parent.SizeLeft + x.Parent.Piece.Length
		}
		x = x.Parent
	}
	return offset
}

// TotalSize returns the total byte length of the whole tree:
// root.size_left + root.piece.length + size(root.right_subtree),
// per spec.md §4.3.
func (t *Tree) TotalSize() int {
	return t.subtreeSize(t.Root)
}

// TotalLineFeeds returns the total line-feed count of the whole tree.
func (t *Tree) TotalLineFeeds() int {
	return t.subtreeLineFeeds(t.Root)
}

func (t *Tree) subtreeSize(x *Node) int {
	if x == t.NIL {
		return 0
	}
	return x.SizeLeft + x.Piece.Length + t.subtreeSize(x.Right)
}

func (t *Tree) subtreeLineFeeds(x *Node) int {
	if x == t.NIL {
		return 0
	}
	return x.LFLeft + x.Piece.LineFeedCnt + t.subtreeLineFeeds(x.Right)
}
