// Package rbtree implements the augmented red-black tree at the heart
// of the piece-tree: a classical CLRS tree (single shared sentinel,
// standard rotations and insert/delete fixups) where every node also
// carries size_left and lf_left, the total byte length and line-feed
// count of its left subtree (spec.md §4.3).
//
// Rotations and deletions maintain these sums in O(1) per affected
// node by exploiting the invariant directly (a node's size_left
// already equals the total of its left subtree, so a rotation only
// has to recompute the one node whose left-subtree membership
// changed) rather than by re-walking subtrees. This package does not
// literally port any single reference implementation's update code;
// see DESIGN.md for why the naive "propagate to every ancestor"
// approach double-counts and was rejected.
package rbtree
