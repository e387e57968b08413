// Package piecetree is the thin public facade over a piece-tree text
// buffer (spec.md §4.10): a mutable text document represented as a
// balanced tree of immutable references into append-only character
// buffers, suited to editor-like hosts that need efficient localized
// insert/delete, fast line/offset queries, and cheap consistent
// snapshots on documents from a few bytes to hundreds of megabytes.
//
// A PieceTree is constructed either empty or from an initial string:
//
//	pt := piecetree.NewFromString("package main\n", piecetree.WithDefaultEOL("\n"))
//	pt.Insert(pt.Length(), []byte("\nfunc main() {}\n"), false)
//	line, _ := pt.LineContent(1)
//
// Every operation delegates one-to-one to the internal core; the
// facade exists only to hide the builder-and-factory construction
// ceremony described in spec.md §6. It carries no synchronization of
// its own — see spec.md §5 — and is not safe for concurrent mutation.
package piecetree
