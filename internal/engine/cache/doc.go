// Package cache implements the piece tree's small bounded search
// cache (spec.md §4.4): a handful of recently resolved node positions,
// consulted before falling back to a full NodeAt/NodeAt2 descent, and
// invalidated whenever an edit could have moved the nodes it
// remembers.
package cache
