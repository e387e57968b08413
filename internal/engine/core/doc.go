// Package core implements the piece tree itself (spec.md §4.5-4.8):
// the owner of the buffer list, the augmented red-black tree, the
// search cache, the active end-of-line convention, and the cached
// document totals. Every edit and query operation the rest of the
// module exposes is a thin wrapper over this package.
package core
