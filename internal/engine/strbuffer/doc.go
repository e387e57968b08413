// Package strbuffer implements the piece-tree's StringBuffer and the
// append-only list that holds them.
//
// Buffer 0 in a List is always the mutable "change buffer": new text
// typed into the document is appended to it, and its line-start table
// grows in lockstep. Every other buffer is an immutable "original
// buffer" handed over by the builder at construction time. Because
// buffers are only ever appended to or read, never rewritten, and a
// List only ever grows, indices and previously observed byte slices
// stay valid for the life of the owning tree — the property a
// Snapshot depends on to read safely while the live tree keeps
// editing (spec.md §5, §9).
package strbuffer
