// Package snapshot captures a point-in-time, read-only view of a
// PieceTree's content (spec.md §4.9). A Snapshot holds its own private
// copy of the ordered Piece list at the moment of creation; because
// Pieces are immutable and buffers only ever grow by append, that
// captured list stays valid — and its bytes keep meaning exactly what
// they meant at capture time — no matter what edits run on the live
// tree afterward.
package snapshot
