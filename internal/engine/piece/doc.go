// Package piece defines the value types describing a contiguous slice
// of exactly one buffer inside a piece-tree: Cursor, a (line, column)
// coordinate into a buffer's line-start table, and Piece itself.
//
// Every Piece is immutable once published into a tree node; an edit
// that would change any field allocates a replacement instead.
package piece
