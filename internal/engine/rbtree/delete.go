package rbtree

// ApplyDelta propagates a Piece length/line-feed change up from x to
// the root, per the rule of spec.md §4.3: an ancestor absorbs the
// delta into its own size_left/lf_left only when the path from x
// reaches it through that ancestor's left child. Callers use this
// after replacing x.Piece in place (no structural change).
func (t *Tree) ApplyDelta(x *Node, sizeDelta, lfDelta int) {
	t.propagateToRoot(x, sizeDelta, lfDelta)
}

// propagateToRoot walks from up to the root crediting sizeDelta/
// lfDelta into every ancestor's SizeLeft/LFLeft reached via a
// left-child hop from the walk. Used both after InsertLeft/InsertRight
// plant a brand-new node (from == the new node itself) and after
// ApplyDelta replaces an existing node's Piece in place — in both
// cases the caller runs this before any rotation, so the rotation's
// own O(1) bookkeeping (rotate.go) starts from correct values.
func (t *Tree) propagateToRoot(from *Node, sizeDelta, lfDelta int) {
	if sizeDelta == 0 && lfDelta == 0 {
		return
	}
	// from must be a real node still linked at its position: the
	// shared sentinel is every leaf's child, so the left-child test
	// below cannot tell which side of its parent it stands on.
	for n := from; n != t.Root && n.Parent != t.NIL; n = n.Parent {
		if n.Parent.Left == n {
			n.Parent.SizeLeft += sizeDelta
			n.Parent.LFLeft += lfDelta
		}
	}
}

// propagateUntil is propagateToRoot bounded to stop before reaching
// stop, used while relocating a successor node within z's own right
// subtree during Delete: the ancestors between the successor's old
// position and z (exclusive) lose the successor's own contribution,
// but z itself must not be touched, since z is about to be removed
// and its size_left/lf_left are about to be handed, unmodified, to
// the successor that replaces it.
func (t *Tree) propagateUntil(from, stop *Node, sizeDelta, lfDelta int) {
	if sizeDelta == 0 && lfDelta == 0 {
		return
	}
	for n := from; n.Parent != stop; n = n.Parent {
		if n.Parent.Left == n {
			n.Parent.SizeLeft += sizeDelta
			n.Parent.LFLeft += lfDelta
		}
	}
}

// Delete removes z from the tree, per the classical CLRS
// transplant-based deletion, updating augmented sums along the way.
func (t *Tree) Delete(z *Node) {
	if z == t.NIL {
		panic("rbtree: Delete called on the NIL sentinel")
	}
	y := z
	yOriginalColor := y.Color
	var x *Node

	switch {
	case z.Left == t.NIL:
		x = z.Right
		t.propagateToRoot(z, -z.Piece.Length, -z.Piece.LineFeedCnt)
		t.transplant(z, x)
	case z.Right == t.NIL:
		x = z.Left
		t.propagateToRoot(z, -z.Piece.Length, -z.Piece.LineFeedCnt)
		t.transplant(z, x)
	default:
		y = t.Minimum(z.Right)
		yOriginalColor = y.Color
		x = y.Right
		if y.Parent == z {
			x.Parent = y
		} else {
			// Before x takes y's old (left-child) slot under y's old
			// parent, remove y's own contribution from every ancestor
			// between that slot and z, exclusive of z.
			t.propagateUntil(y, z, -y.Piece.Length, -y.Piece.LineFeedCnt)
			t.transplant(y, x)
			y.Right = z.Right
			y.Right.Parent = y
		}
		t.transplant(z, y)
		y.Left = z.Left
		y.Left.Parent = y
		y.Color = z.Color
		y.SizeLeft = z.SizeLeft
		y.LFLeft = z.LFLeft
		t.propagateToRoot(y, -z.Piece.Length, -z.Piece.LineFeedCnt)
	}

	if yOriginalColor == Black {
		t.fixDelete(x)
	}

	t.NIL.Parent = t.NIL
	t.NIL.Left = t.NIL
	t.NIL.Right = t.NIL
	z.Left, z.Right, z.Parent = nil, nil, nil
}

func (t *Tree) fixDelete(x *Node) {
	for x != t.Root && x.Color == Black {
		if x == x.Parent.Left {
			w := x.Parent.Right
			if w.Color == Red {
				w.Color = Black
				x.Parent.Color = Red
				t.leftRotate(x.Parent)
				w = x.Parent.Right
			}
			if w.Left.Color == Black && w.Right.Color == Black {
				w.Color = Red
				x = x.Parent
			} else {
				if w.Right.Color == Black {
					w.Left.Color = Black
					w.Color = Red
					t.rightRotate(w)
					w = x.Parent.Right
				}
				w.Color = x.Parent.Color
				x.Parent.Color = Black
				w.Right.Color = Black
				t.leftRotate(x.Parent)
				x = t.Root
			}
		} else {
			w := x.Parent.Left
			if w.Color == Red {
				w.Color = Black
				x.Parent.Color = Red
				t.rightRotate(x.Parent)
				w = x.Parent.Left
			}
			if w.Right.Color == Black && w.Left.Color == Black {
				w.Color = Red
				x = x.Parent
			} else {
				if w.Left.Color == Black {
					w.Right.Color = Black
					w.Color = Red
					t.leftRotate(w)
					w = x.Parent.Left
				}
				w.Color = x.Parent.Color
				x.Parent.Color = Black
				w.Left.Color = Black
				t.rightRotate(x.Parent)
				x = t.Root
			}
		}
	}
	x.Color = Black
}
