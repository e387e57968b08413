package snapshot

import (
	"github.com/textbuf/piecetree/internal/engine/piece"
	"github.com/textbuf/piecetree/internal/engine/strbuffer"
)

// Snapshot is an ordered, private copy of a PieceTree's Pieces plus a
// reference to the (append-only, stable-storage) buffer list they
// point into. It never sees edits made to the live tree after its
// creation.
type Snapshot struct {
	buffers *strbuffer.List
	pieces  []piece.Piece
	bom     string

	index   int
	bomSent bool
}

// New captures pieces (which the caller must hand over in document
// order and not mutate afterward) alongside buffers and bom.
func New(buffers *strbuffer.List, pieces []piece.Piece, bom string) *Snapshot {
	cp := make([]piece.Piece, len(pieces))
	copy(cp, pieces)
	return &Snapshot{buffers: buffers, pieces: cp, bom: bom}
}

// Read returns the next chunk of the snapshot's content: the byte-
// order-mark string prepended to the first piece's bytes on the first
// call, each remaining piece's bytes one at a time on subsequent
// calls, and an empty result once every piece has been returned
// (spec.md §4.9).
func (s *Snapshot) Read() []byte {
	if !s.bomSent {
		s.bomSent = true
		if s.index < len(s.pieces) {
			b := s.pieceBytes(s.index)
			s.index++
			out := make([]byte, 0, len(s.bom)+len(b))
			out = append(out, s.bom...)
			out = append(out, b...)
			return out
		}
		if s.bom != "" {
			return []byte(s.bom)
		}
		return nil
	}
	if s.index >= len(s.pieces) {
		return nil
	}
	b := s.pieceBytes(s.index)
	s.index++
	return b
}

func (s *Snapshot) pieceBytes(i int) []byte {
	p := s.pieces[i]
	buf := s.buffers.Get(p.BufferIndex)
	src := buf.Slice(p.Start, p.End)
	out := make([]byte, len(src))
	copy(out, src)
	return out
}
