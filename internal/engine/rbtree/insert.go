package rbtree

import "github.com/textbuf/piecetree/internal/engine/piece"

func (t *Tree) newNode(p piece.Piece) *Node {
	return &Node{
		Parent: t.NIL,
		Left:   t.NIL,
		Right:  t.NIL,
		Color:  Red,
		Piece:  p,
	}
}

// InsertLeft plants a new node holding p as the in-order predecessor
// of node, or as the tree's sole root if node is t.NIL (an empty
// tree). It returns the freshly inserted node.
func (t *Tree) InsertLeft(node *Node, p piece.Piece) *Node {
	z := t.newNode(p)
	if node == t.NIL {
		t.Root = z
		z.Color = Black
		return z
	}
	if node.Left == t.NIL {
		node.Left = z
		z.Parent = node
	} else {
		prev := t.Maximum(node.Left)
		prev.Right = z
		z.Parent = prev
	}
	t.propagateToRoot(z, p.Length, p.LineFeedCnt)
	t.fixInsert(z)
	return z
}

// InsertRight plants a new node holding p as the in-order successor
// of node, or as the tree's sole root if node is t.NIL.
func (t *Tree) InsertRight(node *Node, p piece.Piece) *Node {
	z := t.newNode(p)
	if node == t.NIL {
		t.Root = z
		z.Color = Black
		return z
	}
	if node.Right == t.NIL {
		node.Right = z
		z.Parent = node
	} else {
		next := t.Minimum(node.Right)
		next.Left = z
		z.Parent = next
	}
	t.propagateToRoot(z, p.Length, p.LineFeedCnt)
	t.fixInsert(z)
	return z
}

func (t *Tree) fixInsert(z *Node) {
	for z.Parent.Color == Red {
		if z.Parent == z.Parent.Parent.Left {
			y := z.Parent.Parent.Right
			if y.Color == Red {
				z.Parent.Color = Black
				y.Color = Black
				z.Parent.Parent.Color = Red
				z = z.Parent.Parent
			} else {
				if z == z.Parent.Right {
					z = z.Parent
					t.leftRotate(z)
				}
				z.Parent.Color = Black
				z.Parent.Parent.Color = Red
				t.rightRotate(z.Parent.Parent)
			}
		} else {
			y := z.Parent.Parent.Left
			if y.Color == Red {
				z.Parent.Color = Black
				y.Color = Black
				z.Parent.Parent.Color = Red
				z = z.Parent.Parent
			} else {
				if z == z.Parent.Left {
					z = z.Parent
					t.rightRotate(z)
				}
				z.Parent.Color = Black
				z.Parent.Parent.Color = Red
				t.leftRotate(z.Parent.Parent)
			}
		}
	}
	t.Root.Color = Black
}
